package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubscriptionPlan identifies the billing plan. Only a monthly plan
// exists today.
type SubscriptionPlan string

const PlanMonthly SubscriptionPlan = "monthly"

// Subscription is one paid listing period for a psychologist, created
// when the payment gateway reports an approved payment.
type Subscription struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PsychologistID uuid.UUID          `gorm:"type:uuid;not null;index" json:"psychologist_id"`
	Plan           SubscriptionPlan   `gorm:"type:varchar(20);not null;default:'monthly'" json:"plan"`
	Status         SubscriptionStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	PaymentID      string             `gorm:"type:varchar(100);uniqueIndex;not null" json:"payment_id"`
	Amount         decimal.Decimal    `gorm:"type:decimal(10,2);not null" json:"amount"`
	StartDate      time.Time          `gorm:"type:date;not null" json:"start_date"`
	ExpiryDate     time.Time          `gorm:"type:date;not null" json:"expiry_date"`
	CreatedAt      time.Time          `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Psychologist PsychologistProfile `gorm:"foreignKey:PsychologistID" json:"psychologist,omitempty"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
