package wire

import (
	"hustlehub/internal/adaptor"
	"hustlehub/internal/data/repository"
	"hustlehub/pkg/middleware"
	"hustlehub/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	tokens *token.Service,
	log *zap.Logger,
) {
	r.With(middleware.Authenticate(tokens, repo.User, log)).Post("/book", bookingHandler.Create)
}
