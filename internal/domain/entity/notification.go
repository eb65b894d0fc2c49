package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies what a notification is about.
type NotificationType string

const (
	NotificationAppointmentRequest   NotificationType = "appointment_request"
	NotificationAppointmentConfirmed NotificationType = "appointment_confirmed"
	NotificationAppointmentRejected  NotificationType = "appointment_rejected"
	NotificationAppointmentCancelled NotificationType = "appointment_cancelled"
	NotificationSubscriptionActive   NotificationType = "subscription_active"
	NotificationSubscriptionExpiring NotificationType = "subscription_expiring"
)

// Notification is a user-facing event record.
type Notification struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      NotificationType `gorm:"type:varchar(50);not null" json:"type"`
	Title     string           `gorm:"type:varchar(255);not null" json:"title"`
	Message   string           `gorm:"type:text;not null" json:"message"`
	Read      bool             `gorm:"not null;default:false;index" json:"read"`
	RelatedID string           `gorm:"type:varchar(100)" json:"related_id,omitempty"`
	CreatedAt time.Time        `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
