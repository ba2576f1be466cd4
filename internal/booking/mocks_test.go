package booking

import (
	"context"
	"time"

	"commonhub/internal/events"
	"commonhub/internal/facility"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepo struct{ mock.Mock }
type MockFacilityRepo struct{ mock.Mock }
type MockQueue struct{ mock.Mock }

func (m *MockBookingRepo) CreateBooking(ctx context.Context, b *Booking) (*Booking, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockBookingRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockBookingRepo) ListForFacilityDate(ctx context.Context, facilityID uuid.UUID, date time.Time) ([]Booking, error) {
	args := m.Called(ctx, facilityID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func (m *MockBookingRepo) ListActiveForUser(ctx context.Context, userID, facilityID uuid.UUID) ([]Booking, error) {
	args := m.Called(ctx, userID, facilityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func (m *MockBookingRepo) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status, reason string) (*Booking, error) {
	args := m.Called(ctx, id, from, to, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockBookingRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, from, to PaymentStatus) (*Booking, error) {
	args := m.Called(ctx, id, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockBookingRepo) GetBookingStatsByDay(ctx context.Context, facilityID *uuid.UUID, from, to time.Time) ([]DayStats, error) {
	args := m.Called(ctx, facilityID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]DayStats), args.Error(1)
}

func (m *MockFacilityRepo) CreateFacility(ctx context.Context, f *facility.Facility) (*facility.Facility, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*facility.Facility), args.Error(1)
}

func (m *MockFacilityRepo) GetFacilityByID(ctx context.Context, id uuid.UUID) (*facility.Facility, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*facility.Facility), args.Error(1)
}

func (m *MockFacilityRepo) ListFacilities(ctx context.Context, communityID *uuid.UUID) ([]facility.Facility, error) {
	args := m.Called(ctx, communityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]facility.Facility), args.Error(1)
}

func (m *MockFacilityRepo) UpdateConfig(ctx context.Context, id uuid.UUID, cfg facility.Config) (*facility.Facility, error) {
	args := m.Called(ctx, id, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*facility.Facility), args.Error(1)
}

func (m *MockQueue) Enqueue(ctx context.Context, e events.Event) error {
	return m.Called(ctx, e).Error(0)
}

type MockService struct{ mock.Mock }

func (m *MockService) Availability(ctx context.Context, facilityID uuid.UUID, date time.Time) (*DayAvailability, error) {
	args := m.Called(ctx, facilityID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*DayAvailability), args.Error(1)
}

func (m *MockService) Calendar(ctx context.Context, facilityID uuid.UUID, from, to time.Time) (*CalendarView, error) {
	args := m.Called(ctx, facilityID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CalendarView), args.Error(1)
}

func (m *MockService) AttemptBooking(ctx context.Context, userID, facilityID uuid.UUID, date time.Time, start facility.ClockTime, notes string) (*AdmissionResult, error) {
	args := m.Called(ctx, userID, facilityID, date, start, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*AdmissionResult), args.Error(1)
}

func (m *MockService) CancelBooking(ctx context.Context, actor Actor, bookingID uuid.UUID, reason string) (*CancelResult, error) {
	args := m.Called(ctx, actor, bookingID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CancelResult), args.Error(1)
}

func (m *MockService) ApproveBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockService) RejectBooking(ctx context.Context, bookingID uuid.UUID, reason string) (*Booking, error) {
	args := m.Called(ctx, bookingID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockService) UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, to PaymentStatus) (*Booking, error) {
	args := m.Called(ctx, bookingID, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockService) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func (m *MockService) ListFacilityBookings(ctx context.Context, facilityID uuid.UUID, date time.Time) ([]Booking, error) {
	args := m.Called(ctx, facilityID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func (m *MockService) BookingStats(ctx context.Context, facilityID *uuid.UUID, from, to time.Time) ([]DayStats, error) {
	args := m.Called(ctx, facilityID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]DayStats), args.Error(1)
}

func (m *MockService) Today() time.Time {
	return m.Called().Get(0).(time.Time)
}

func (m *MockService) Location() *time.Location {
	return time.UTC
}
