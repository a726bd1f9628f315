package wire

import (
	"hustlehub/internal/adaptor"
	"hustlehub/internal/data/repository"
	"hustlehub/pkg/middleware"
	"hustlehub/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	tokens *token.Service,
	log *zap.Logger,
) {
	// Public routes
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// Protected routes
	r.With(middleware.Authenticate(tokens, repo.User, log)).Get("/profile", authHandler.Profile)
}
