package repository

import (
	"encontrapsi/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	Create(db *gorm.DB, subscription *entity.Subscription) error
	FindByPaymentID(db *gorm.DB, paymentID string) (*entity.Subscription, error)
	FindLatestByPsychologistID(db *gorm.DB, psychologistID uuid.UUID) (*entity.Subscription, error)
}
