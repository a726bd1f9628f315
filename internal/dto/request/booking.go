package request

type CreateBookingRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid"`
	ServiceID string `json:"service_id" validate:"required,uuid"`
}
