package integration_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"commonhub/internal/booking"
	"commonhub/internal/facility"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentAdmissionNeverExceedsCapacity(t *testing.T) {
	database := setupTestDB(t)

	facilityRepo := facility.NewRepository(database)
	f := createFacility(t, facilityRepo, everyDay(2, 1))
	svc := booking.NewService(booking.NewRepository(database), facilityRepo, nil, time.UTC)

	const residents = 8
	date := tomorrow()
	start := facility.MustParseClock("10:00")

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		admitted int
		full     int
	)
	for i := 0; i < residents; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AttemptBooking(context.Background(), uuid.New(), f.ID, date, start, "")

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				admitted++
			case errors.Is(err, booking.ErrSlotFull):
				full++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	// Seat conflicts are re-admitted, so the slot fills exactly.
	assert.Equal(t, 2, admitted)
	assert.Equal(t, residents, admitted+full)

	day, err := svc.Availability(context.Background(), f.ID, date)
	require.NoError(t, err)
	require.NotEmpty(t, day.Slots)
	assert.Equal(t, start, day.Slots[2].Start)
	assert.Equal(t, admitted, day.Slots[2].Booked)
}

func TestCancelFreesSeat(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	facilityRepo := facility.NewRepository(database)
	f := createFacility(t, facilityRepo, everyDay(1, 1))
	svc := booking.NewService(booking.NewRepository(database), facilityRepo, nil, time.UTC)

	date := tomorrow()
	start := facility.MustParseClock("09:00")
	alice, bob := uuid.New(), uuid.New()

	first, err := svc.AttemptBooking(ctx, alice, f.ID, date, start, "")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusApproved, first.Booking.Status)
	assert.Equal(t, "Booking confirmed", first.Message)

	_, err = svc.AttemptBooking(ctx, bob, f.ID, date, start, "")
	assert.ErrorIs(t, err, booking.ErrSlotFull)

	_, err = svc.AttemptBooking(ctx, alice, f.ID, date, facility.MustParseClock("11:00"), "")
	var tooMany *booking.TooManyActiveBookingsError
	assert.ErrorAs(t, err, &tooMany)

	cancelled, err := svc.CancelBooking(ctx, booking.Actor{UserID: alice}, first.Booking.ID, "")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCancelled, cancelled.Booking.Status)

	second, err := svc.AttemptBooking(ctx, bob, f.ID, date, start, "")
	require.NoError(t, err)
	assert.Equal(t, bob, second.Booking.UserID)

	mine, err := svc.ListUserBookings(ctx, alice)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, booking.StatusCancelled, mine[0].Status)
}

func TestApprovalAndPaymentLifecycle(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	cfg := everyDay(1, 2)
	cfg.RequiresApproval = true
	cfg.Fee = &facility.Fee{AmountCents: 1500, Currency: "EUR"}

	facilityRepo := facility.NewRepository(database)
	f := createFacility(t, facilityRepo, cfg)
	svc := booking.NewService(booking.NewRepository(database), facilityRepo, nil, time.UTC)

	res, err := svc.AttemptBooking(ctx, uuid.New(), f.ID, tomorrow(), facility.MustParseClock("14:00"), "birthday")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusPending, res.Booking.Status)
	assert.Equal(t, booking.PaymentUnpaid, res.Booking.PaymentStatus)
	assert.Equal(t, "Booking submitted, awaiting approval. A fee of 15.00 EUR applies", res.Message)

	approved, err := svc.ApproveBooking(ctx, res.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusApproved, approved.Status)

	_, err = svc.ApproveBooking(ctx, res.Booking.ID)
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)

	_, err = svc.UpdatePaymentStatus(ctx, res.Booking.ID, booking.PaymentRefunded)
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)

	paid, err := svc.UpdatePaymentStatus(ctx, res.Booking.ID, booking.PaymentPaid)
	require.NoError(t, err)
	assert.Equal(t, booking.PaymentPaid, paid.PaymentStatus)

	stats, err := svc.BookingStats(ctx, &f.ID, tomorrow(), tomorrow())
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].Approved)
	assert.Equal(t, 1, stats[0].Total)
}
