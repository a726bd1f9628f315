package repository

import (
	"hustlehub/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Service      ServiceRepository
	Category     CategoryRepository
	Booking      BookingRepository
	Notification NotificationRepository
	LoyaltyCard  LoyaltyCardRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Service:      NewServiceRepository(db, log),
		Category:     NewCategoryRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Notification: NewNotificationRepository(db, log),
		LoyaltyCard:  NewLoyaltyCardRepository(db, log),
	}
}
