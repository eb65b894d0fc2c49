package converter

import (
	"encontrapsi/internal/delivery/dto"
	"encontrapsi/internal/domain/entity"
)

// PsychologistToResponse converts a PsychologistProfile entity to a
// public PsychologistResponse DTO. Subscription status is omitted for
// the public directory and filled by the owner-facing endpoints.
func PsychologistToResponse(profile *entity.PsychologistProfile) *dto.PsychologistResponse {
	if profile == nil {
		return nil
	}

	return &dto.PsychologistResponse{
		ID:           profile.UserID,
		FullName:     profile.User.FullName,
		CRP:          profile.CRP,
		PhotoURL:     profile.PhotoURL,
		Approaches:   approachesToStrings(profile.Approaches),
		Specialties:  profile.Specialties,
		Bio:          profile.Bio,
		City:         profile.City,
		State:        profile.State,
		Neighborhood: profile.Neighborhood,
		Modalities:   modalitiesToStrings(profile.Modalities),
		PriceRange:   profile.PriceRange,
		Rating:       profile.Rating,
		ReviewCount:  profile.ReviewCount,
		Availability: profile.Availability,
		CreatedAt:    profile.CreatedAt,
	}
}

// PsychologistToOwnerResponse includes the subscription status, for the
// dashboard view of one's own profile.
func PsychologistToOwnerResponse(profile *entity.PsychologistProfile) *dto.PsychologistResponse {
	resp := PsychologistToResponse(profile)
	if resp != nil {
		resp.SubscriptionStatus = string(profile.SubscriptionStatus)
	}
	return resp
}

// PsychologistsToResponses converts a slice of profiles to DTOs.
func PsychologistsToResponses(profiles []entity.PsychologistProfile) []dto.PsychologistResponse {
	responses := make([]dto.PsychologistResponse, len(profiles))
	for i := range profiles {
		responses[i] = *PsychologistToResponse(&profiles[i])
	}
	return responses
}

// RegistrationFromRequest converts the registration request DTO to the
// domain registration form.
func RegistrationFromRequest(req *dto.RegisterPsychologistRequest) *entity.PsychologistRegistration {
	if req == nil {
		return nil
	}

	return &entity.PsychologistRegistration{
		FullName:     req.FullName,
		CRP:          req.CRP,
		Email:        req.Email,
		Phone:        req.Phone,
		Approaches:   stringsToApproaches(req.Approaches),
		Specialties:  req.Specialties,
		City:         req.City,
		State:        req.State,
		Neighborhood: req.Neighborhood,
		Modalities:   stringsToModalities(req.Modalities),
		PriceRange:   req.PriceRange,
		Bio:          req.Bio,
	}
}

// DirectoryFilterFromRequest converts the filter request DTO to the
// domain filter.
func DirectoryFilterFromRequest(req *dto.DirectoryFilterRequest) entity.DirectoryFilter {
	if req == nil {
		return entity.DirectoryFilter{}
	}

	return entity.DirectoryFilter{
		Term:       req.Term,
		Approach:   entity.TherapyApproach(req.Approach),
		State:      req.State,
		City:       req.City,
		Modalities: stringsToModalities(req.Modalities),
	}
}

func approachesToStrings(approaches entity.ApproachList) []string {
	out := make([]string, len(approaches))
	for i, a := range approaches {
		out[i] = string(a)
	}
	return out
}

func stringsToApproaches(values []string) []entity.TherapyApproach {
	out := make([]entity.TherapyApproach, len(values))
	for i, v := range values {
		out[i] = entity.TherapyApproach(v)
	}
	return out
}

func modalitiesToStrings(modalities entity.ModalityList) []string {
	out := make([]string, len(modalities))
	for i, m := range modalities {
		out[i] = string(m)
	}
	return out
}

func stringsToModalities(values []string) []entity.Modality {
	out := make([]entity.Modality, len(values))
	for i, v := range values {
		out[i] = entity.Modality(v)
	}
	return out
}
