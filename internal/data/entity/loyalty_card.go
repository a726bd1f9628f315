package entity

import (
	"github.com/google/uuid"
)

type LoyaltyCard struct {
	BaseSimple
	UserID uuid.UUID `db:"user_id"`
	Points int       `db:"points"`
	Tier   string    `db:"tier"`
}
