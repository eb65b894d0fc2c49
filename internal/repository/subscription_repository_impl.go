package repository

import (
	"errors"

	"encontrapsi/internal/domain/entity"
	domainRepo "encontrapsi/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type subscriptionRepository struct{}

func NewSubscriptionRepository() domainRepo.SubscriptionRepository {
	return &subscriptionRepository{}
}

func (r *subscriptionRepository) Create(db *gorm.DB, subscription *entity.Subscription) error {
	return db.Create(subscription).Error
}

func (r *subscriptionRepository) FindByPaymentID(db *gorm.DB, paymentID string) (*entity.Subscription, error) {
	var subscription entity.Subscription
	err := db.Where("payment_id = ?", paymentID).First(&subscription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subscription, nil
}

func (r *subscriptionRepository) FindLatestByPsychologistID(db *gorm.DB, psychologistID uuid.UUID) (*entity.Subscription, error) {
	var subscription entity.Subscription
	err := db.Where("psychologist_id = ?", psychologistID).
		Order("created_at DESC").
		First(&subscription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subscription, nil
}
