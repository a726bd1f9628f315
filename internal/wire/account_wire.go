package wire

import (
	"hustlehub/internal/adaptor"
	"hustlehub/internal/data/repository"
	"hustlehub/pkg/middleware"
	"hustlehub/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAccount(
	r chi.Router,
	accountHandler *adaptor.AccountHandler,
	repo *repository.Repository,
	tokens *token.Service,
	log *zap.Logger,
) {
	r.Route("/user/{id}", func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, repo.User, log))
		r.Get("/bookings", accountHandler.ListBookings)
		r.Get("/notifications", accountHandler.ListNotifications)
		r.Get("/loyalty", accountHandler.GetLoyaltyCard)
	})
}
