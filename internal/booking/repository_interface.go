package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	CreateBooking(ctx context.Context, b *Booking) (*Booking, error)
	GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	ListForFacilityDate(ctx context.Context, facilityID uuid.UUID, date time.Time) ([]Booking, error)
	ListActiveForUser(ctx context.Context, userID, facilityID uuid.UUID) ([]Booking, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status, reason string) (*Booking, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, from, to PaymentStatus) (*Booking, error)
	GetBookingStatsByDay(ctx context.Context, facilityID *uuid.UUID, from, to time.Time) ([]DayStats, error)
}
