package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"hustlehub/internal/dto/request"
	"hustlehub/internal/usecase"
	"hustlehub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /book
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id")
		return
	}
	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid service id")
		return
	}

	// The body carries user_id for wire compatibility, but bookings may only
	// be created for the authenticated principal.
	principal, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required", utils.CodeUnauthorized)
		return
	}
	if principal != userID {
		utils.ResponseForbidden(w, "Cannot create bookings for another user")
		return
	}

	resp, err := h.service.Create(r.Context(), userID, serviceID)
	if err != nil {
		if errors.Is(err, usecase.ErrServiceNotFound) {
			utils.ResponseNotFound(w, "Service not found")
			return
		}
		h.log.Error("Booking handler error", zap.Error(err), zap.String("op", "create booking"))
		utils.ResponseInternalError(w, "create booking")
		return
	}

	utils.ResponseSuccess(w, resp)
}
