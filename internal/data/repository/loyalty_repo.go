package repository

import (
	"context"
	"fmt"

	"hustlehub/internal/data/entity"
	"hustlehub/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type LoyaltyCardRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.LoyaltyCard, error)
}

type loyaltyCardRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLoyaltyCardRepository(db database.PgxIface, log *zap.Logger) LoyaltyCardRepository {
	return &loyaltyCardRepository{
		db:  db,
		log: log,
	}
}

func (lr *loyaltyCardRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.LoyaltyCard, error) {
	query := `
		SELECT id, user_id, points, tier, created_at
		FROM loyalty_cards
		WHERE user_id = $1
	`

	var card entity.LoyaltyCard
	err := lr.db.QueryRow(ctx, query, userID).Scan(
		&card.ID,
		&card.UserID,
		&card.Points,
		&card.Tier,
		&card.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		lr.log.Error("Failed to find loyalty card by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find loyalty card by user %s: %w", userID.String(), err)
	}

	return &card, nil
}
