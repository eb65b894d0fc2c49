package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterPsychologistRequest struct {
	Email        string   `json:"email" validate:"required,email"`
	Password     string   `json:"password" validate:"required,min=6"`
	FullName     string   `json:"full_name" validate:"required,min=2"`
	CRP          string   `json:"crp" validate:"required"`
	Phone        string   `json:"phone" validate:"required,min=10,max=20"`
	Approaches   []string `json:"approaches" validate:"required,min=1,dive,oneof=psicanalise sistemica gestalt humanista tcc grupo"`
	Specialties  []string `json:"specialties" validate:"omitempty,dive,min=2"`
	City         string   `json:"city" validate:"required"`
	State        string   `json:"state" validate:"required,len=2"`
	Neighborhood string   `json:"neighborhood" validate:"omitempty"`
	Modalities   []string `json:"modalities" validate:"required,min=1,dive,oneof=online presencial"`
	PriceRange   string   `json:"price_range" validate:"required"`
	Bio          string   `json:"bio" validate:"required,min=10"`
}

type DirectoryFilterRequest struct {
	Term       string   `json:"term"`
	Approach   string   `json:"approach" validate:"omitempty,oneof=psicanalise sistemica gestalt humanista tcc grupo"`
	State      string   `json:"state" validate:"omitempty,len=2"`
	City       string   `json:"city"`
	Modalities []string `json:"modalities" validate:"omitempty,dive,oneof=online presencial"`
}

// Response DTOs

type PsychologistResponse struct {
	ID                 uuid.UUID `json:"id"`
	FullName           string    `json:"full_name"`
	CRP                string    `json:"crp"`
	PhotoURL           string    `json:"photo_url,omitempty"`
	Approaches         []string  `json:"approaches"`
	Specialties        []string  `json:"specialties"`
	Bio                string    `json:"bio"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Neighborhood       string    `json:"neighborhood,omitempty"`
	Modalities         []string  `json:"modalities"`
	PriceRange         string    `json:"price_range"`
	Rating             float64   `json:"rating"`
	ReviewCount        int       `json:"review_count"`
	Availability       []string  `json:"availability"`
	SubscriptionStatus string    `json:"subscription_status,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

type DirectoryResponse struct {
	Psychologists []PsychologistResponse `json:"psychologists"`
	Total         int                    `json:"total"`
}
