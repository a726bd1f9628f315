package response

import (
	"time"

	"hustlehub/internal/data/entity"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type LoyaltyCardResponse struct {
	ID     string `json:"id"`
	Points int    `json:"points"`
	Tier   string `json:"tier"`
}

func NotificationToResponse(notification *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        notification.ID.String(),
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}

func LoyaltyCardToResponse(card *entity.LoyaltyCard) LoyaltyCardResponse {
	return LoyaltyCardResponse{
		ID:     card.ID.String(),
		Points: card.Points,
		Tier:   card.Tier,
	}
}
