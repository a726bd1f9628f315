package usecase

import (
	"context"
	"fmt"

	"hustlehub/internal/data/repository"
	"hustlehub/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccountService serves the per-user read views: bookings, notifications and
// the loyalty card.
type AccountService interface {
	ListNotifications(ctx context.Context, userID uuid.UUID) ([]response.NotificationResponse, error)
	GetLoyaltyCard(ctx context.Context, userID uuid.UUID) (*response.LoyaltyCardResponse, error)
}

type accountService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAccountService(repo *repository.Repository, log *zap.Logger) AccountService {
	return &accountService{
		repo: repo,
		log:  log,
	}
}

func (s *accountService) ListNotifications(ctx context.Context, userID uuid.UUID) ([]response.NotificationResponse, error) {
	notifications, err := s.repo.Notification.FindByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list notifications", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	result := make([]response.NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		result = append(result, response.NotificationToResponse(notification))
	}

	return result, nil
}

func (s *accountService) GetLoyaltyCard(ctx context.Context, userID uuid.UUID) (*response.LoyaltyCardResponse, error) {
	card, err := s.repo.LoyaltyCard.FindByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get loyalty card", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("get loyalty card: %w", err)
	}
	if card == nil {
		return nil, ErrLoyaltyNotFound
	}

	resp := response.LoyaltyCardToResponse(card)
	return &resp, nil
}
