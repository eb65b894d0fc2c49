package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus gates a psychologist's visibility in the
// directory: only active profiles are discoverable.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionInactive SubscriptionStatus = "inactive"
	SubscriptionPending  SubscriptionStatus = "pending"
	SubscriptionExpired  SubscriptionStatus = "expired"
)

// Modality is how a session is held.
type Modality string

const (
	ModalityOnline     Modality = "online"
	ModalityPresencial Modality = "presencial"
)

// IsValid reports whether m is a known modality.
func (m Modality) IsValid() bool {
	return m == ModalityOnline || m == ModalityPresencial
}

// PsychologistProfile represents psychologist-specific profile data.
type PsychologistProfile struct {
	UserID             uuid.UUID          `gorm:"type:uuid;primaryKey" json:"user_id"`
	CRP                string             `gorm:"column:crp;type:varchar(50);uniqueIndex;not null" json:"crp"`
	Phone              string             `gorm:"type:varchar(20)" json:"phone,omitempty"`
	PhotoURL           string             `gorm:"type:text" json:"photo_url,omitempty"`
	Approaches         ApproachList       `gorm:"type:jsonb;not null" json:"approaches"`
	Specialties        StringList         `gorm:"type:jsonb" json:"specialties"`
	Bio                string             `gorm:"type:text;not null" json:"bio"`
	City               string             `gorm:"type:varchar(100);not null;index" json:"city"`
	State              string             `gorm:"type:char(2);not null;index" json:"state"`
	Neighborhood       string             `gorm:"type:varchar(100)" json:"neighborhood,omitempty"`
	Modalities         ModalityList       `gorm:"type:jsonb;not null" json:"modalities"`
	PriceRange         string             `gorm:"type:varchar(50);not null" json:"price_range"`
	Rating             float64            `gorm:"type:numeric(2,1);default:0" json:"rating"`
	ReviewCount        int                `gorm:"default:0" json:"review_count"`
	Availability       StringList         `gorm:"type:jsonb" json:"availability"`
	SubscriptionStatus SubscriptionStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"subscription_status"`
	CreatedAt          time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PsychologistID" json:"appointments,omitempty"`
}

func (PsychologistProfile) TableName() string {
	return "psychologist_profiles"
}

// IsDiscoverable reports whether the profile may appear in directory
// results. Visibility is a function of subscription status alone.
func (p *PsychologistProfile) IsDiscoverable() bool {
	return p.SubscriptionStatus == SubscriptionActive
}

// PsychologistRegistration carries the mandatory registration form
// fields. MissingFields backs the registration guard: a submission
// with any missing field stays on the form and reports all of them.
type PsychologistRegistration struct {
	FullName     string            `json:"full_name"`
	CRP          string            `json:"crp"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	Approaches   []TherapyApproach `json:"approaches"`
	Specialties  []string          `json:"specialties"`
	City         string            `json:"city"`
	State        string            `json:"state"`
	Neighborhood string            `json:"neighborhood"`
	Modalities   []Modality        `json:"modalities"`
	PriceRange   string            `json:"price_range"`
	Bio          string            `json:"bio"`
}

// MissingFields returns the names of mandatory fields that are empty.
func (r *PsychologistRegistration) MissingFields() []string {
	var missing []string
	if r.FullName == "" {
		missing = append(missing, "full_name")
	}
	if r.CRP == "" {
		missing = append(missing, "crp")
	}
	if r.Email == "" {
		missing = append(missing, "email")
	}
	if r.Phone == "" {
		missing = append(missing, "phone")
	}
	if r.State == "" {
		missing = append(missing, "state")
	}
	if r.City == "" {
		missing = append(missing, "city")
	}
	if r.Bio == "" {
		missing = append(missing, "bio")
	}
	if r.PriceRange == "" {
		missing = append(missing, "price_range")
	}
	if len(r.Approaches) == 0 {
		missing = append(missing, "approaches")
	}
	if len(r.Modalities) == 0 {
		missing = append(missing, "modalities")
	}
	return missing
}
