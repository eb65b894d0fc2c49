package repository

import (
	"errors"

	"encontrapsi/internal/domain/entity"
	domainRepo "encontrapsi/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type psychologistRepository struct{}

func NewPsychologistRepository() domainRepo.PsychologistRepository {
	return &psychologistRepository{}
}

func (r *psychologistRepository) Create(db *gorm.DB, profile *entity.PsychologistProfile) error {
	return db.Create(profile).Error
}

func (r *psychologistRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PsychologistProfile, error) {
	var profile entity.PsychologistProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *psychologistRepository) FindByCRP(db *gorm.DB, crp string) (*entity.PsychologistProfile, error) {
	var profile entity.PsychologistProfile
	err := db.Preload("User").Where("crp = ?", crp).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// FindAllActive returns discoverable profiles only: active subscription
// and an active user account. Ordered by creation for a stable listing.
func (r *psychologistRepository) FindAllActive(db *gorm.DB) ([]entity.PsychologistProfile, error) {
	var profiles []entity.PsychologistProfile
	err := db.
		Joins("JOIN users ON users.id = psychologist_profiles.user_id").
		Where("psychologist_profiles.subscription_status = ?", entity.SubscriptionActive).
		Where("users.is_active = ?", true).
		Preload("User").
		Order("psychologist_profiles.created_at ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *psychologistRepository) Update(db *gorm.DB, profile *entity.PsychologistProfile) error {
	return db.Omit("User").Save(profile).Error
}

func (r *psychologistRepository) UpdateSubscriptionStatus(db *gorm.DB, userID uuid.UUID, status entity.SubscriptionStatus) error {
	return db.Model(&entity.PsychologistProfile{}).
		Where("user_id = ?", userID).
		Update("subscription_status", status).Error
}
