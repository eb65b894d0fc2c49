package service

import (
	"context"

	"encontrapsi/internal/domain/entity"
	"encontrapsi/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NotificationService records user-facing events inside the caller's
// transaction. A failed notification is logged but never fails the
// business operation it accompanies.
type NotificationService interface {
	Notify(ctx context.Context, tx *gorm.DB, userID uuid.UUID, notifType entity.NotificationType, title, message, relatedID string) error
}

type notificationService struct {
	db               *gorm.DB
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(db *gorm.DB, log *logrus.Logger, notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{
		db:               db,
		log:              log,
		notificationRepo: notificationRepo,
	}
}

func (s *notificationService) Notify(ctx context.Context, tx *gorm.DB, userID uuid.UUID, notifType entity.NotificationType, title, message, relatedID string) error {
	notification := &entity.Notification{
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Message:   message,
		RelatedID: relatedID,
	}

	if err := s.notificationRepo.Create(tx, notification); err != nil {
		s.log.Warnf("Failed to create notification: %+v", err)
		return err
	}

	return nil
}
