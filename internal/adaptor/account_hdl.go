package adaptor

import (
	"errors"
	"net/http"

	"hustlehub/internal/usecase"
	"hustlehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccountHandler serves the per-user views under /user/{id}/.
type AccountHandler struct {
	account  usecase.AccountService
	bookings usecase.BookingService
	log      *zap.Logger
}

func NewAccountHandler(account usecase.AccountService, bookings usecase.BookingService, log *zap.Logger) *AccountHandler {
	return &AccountHandler{
		account:  account,
		bookings: bookings,
		log:      log,
	}
}

// ListBookings handles GET /user/{id}/bookings
func (h *AccountHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathUserID(w, r)
	if !ok {
		return
	}

	result, err := h.bookings.ListByUser(r.Context(), userID)
	if err != nil {
		h.log.Error("Account handler error", zap.Error(err), zap.String("op", "list bookings"))
		utils.ResponseInternalError(w, "list bookings")
		return
	}

	utils.ResponseSuccess(w, result)
}

// ListNotifications handles GET /user/{id}/notifications
func (h *AccountHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathUserID(w, r)
	if !ok {
		return
	}

	result, err := h.account.ListNotifications(r.Context(), userID)
	if err != nil {
		h.log.Error("Account handler error", zap.Error(err), zap.String("op", "list notifications"))
		utils.ResponseInternalError(w, "list notifications")
		return
	}

	utils.ResponseSuccess(w, result)
}

// GetLoyaltyCard handles GET /user/{id}/loyalty
func (h *AccountHandler) GetLoyaltyCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathUserID(w, r)
	if !ok {
		return
	}

	result, err := h.account.GetLoyaltyCard(r.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrLoyaltyNotFound) {
			utils.ResponseNotFound(w, "Loyalty card not found")
			return
		}
		h.log.Error("Account handler error", zap.Error(err), zap.String("op", "get loyalty card"))
		utils.ResponseInternalError(w, "get loyalty card")
		return
	}

	utils.ResponseSuccess(w, result)
}

func (h *AccountHandler) pathUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id")
		return uuid.Nil, false
	}
	return userID, true
}
