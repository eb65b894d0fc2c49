package repository

import (
	"encontrapsi/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PsychologistRepository interface {
	Create(db *gorm.DB, profile *entity.PsychologistProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PsychologistProfile, error)
	FindByCRP(db *gorm.DB, crp string) (*entity.PsychologistProfile, error)
	FindAllActive(db *gorm.DB) ([]entity.PsychologistProfile, error)
	Update(db *gorm.DB, profile *entity.PsychologistProfile) error
	UpdateSubscriptionStatus(db *gorm.DB, userID uuid.UUID, status entity.SubscriptionStatus) error
}
