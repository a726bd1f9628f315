package entity

import (
	"github.com/google/uuid"
)

type Service struct {
	BaseSimple
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Price       float64    `db:"price"`
	BusinessID  *uuid.UUID `db:"business_id"`
}
