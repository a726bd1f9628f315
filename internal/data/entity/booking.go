package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

// The booking lifecycle stops at "created"; no further transitions are modeled.
const BookingStatusCreated BookingStatus = "created"

type Booking struct {
	BaseSimple
	UserID      uuid.UUID     `db:"user_id"`
	ServiceID   uuid.UUID     `db:"service_id"`
	BookingTime time.Time     `db:"booking_time"`
	Status      BookingStatus `db:"status"`
}
