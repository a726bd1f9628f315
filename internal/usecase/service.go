package usecase

import (
	"hustlehub/internal/data/repository"
	"hustlehub/pkg/token"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Catalog CatalogService
	Booking BookingService
	Account AccountService
}

func NewService(repo *repository.Repository, tokens *token.Service, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, tokens, log),
		Catalog: NewCatalogService(repo, log),
		Booking: NewBookingService(repo, log),
		Account: NewAccountService(repo, log),
	}
}
