package converter

import (
	"encontrapsi/internal/delivery/dto"
	"encontrapsi/internal/domain/entity"
)

// NotificationsToResponses converts notifications to DTOs.
func NotificationsToResponses(notifications []entity.Notification) []dto.NotificationResponse {
	responses := make([]dto.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = dto.NotificationResponse{
			ID:        n.ID,
			Type:      string(n.Type),
			Title:     n.Title,
			Message:   n.Message,
			Read:      n.Read,
			RelatedID: n.RelatedID,
			CreatedAt: n.CreatedAt,
		}
	}
	return responses
}
