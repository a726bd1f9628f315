package response

import (
	"time"

	"hustlehub/internal/data/entity"
)

type BookingCreatedResponse struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}

type BookingResponse struct {
	ID          string    `json:"id"`
	ServiceID   string    `json:"service_id"`
	BookingTime time.Time `json:"booking_time"`
	Status      string    `json:"status"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:          booking.ID.String(),
		ServiceID:   booking.ServiceID.String(),
		BookingTime: booking.BookingTime,
		Status:      string(booking.Status),
	}
}
