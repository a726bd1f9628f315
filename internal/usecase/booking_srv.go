package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hustlehub/internal/data/entity"
	"hustlehub/internal/data/repository"
	"hustlehub/internal/dto/response"
	"hustlehub/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	Create(ctx context.Context, userID, serviceID uuid.UUID) (*response.BookingCreatedResponse, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log,
	}
}

func (s *bookingService) Create(ctx context.Context, userID, serviceID uuid.UUID) (*response.BookingCreatedResponse, error) {
	// 1. Service must exist before anything is written
	service, err := s.repo.Service.FindByID(ctx, serviceID)
	if err != nil {
		s.log.Error("Failed to check service", zap.Error(err), zap.String("service_id", serviceID.String()))
		return nil, fmt.Errorf("check service: %w", err)
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	// 2. Create booking
	now := time.Now()
	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:      userID,
		ServiceID:   serviceID,
		BookingTime: now,
		Status:      entity.BookingStatusCreated,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		// The service can vanish between check and insert; the FK violation
		// reports the same not-found outcome.
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("service_id", serviceID.String()))
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.BookingsCreatedTotal.Inc()

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("service_id", serviceID.String()))

	return &response.BookingCreatedResponse{
		BookingID: booking.ID.String(),
		Status:    string(booking.Status),
	}, nil
}

func (s *bookingService) ListByUser(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	result := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, response.BookingToResponse(booking))
	}

	return result, nil
}
