package converter

import (
	"encontrapsi/internal/delivery/dto"
	"encontrapsi/internal/domain/entity"
)

// UserToResponse converts a User entity to its DTO.
func UserToResponse(user *entity.User, roleName string) *dto.UserResponse {
	if user == nil {
		return nil
	}

	resp := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Phone:     user.Phone,
		Role:      roleName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.PsychologistProfile != nil {
		resp.PsychologistProfile = PsychologistToOwnerResponse(user.PsychologistProfile)
	}

	return resp
}
