package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"commonhub/internal/db"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrBookingChanged means a conditional update matched no row: the booking
// is gone or no longer in the expected state.
var ErrBookingChanged = errors.New("booking not found or changed concurrently")

const activeSeatIndex = "bookings_active_seat_idx"

const bookingColumns = `id, facility_id, user_id, booking_date, start_time, end_time, seat,
	status, payment_status, notes, cancellation_reason, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// CreateBooking inserts b into its seat. A concurrent booking that took the
// same seat first trips the partial unique index and is reported as ErrSlotFull.
func (r *repository) CreateBooking(ctx context.Context, b *Booking) (*Booking, error) {
	query := `
		INSERT INTO bookings (id, facility_id, user_id, booking_date, start_time, end_time,
			seat, status, payment_status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + bookingColumns

	var created Booking
	err := r.db.GetContext(ctx, &created, query,
		b.ID, b.FacilityID, b.UserID, b.BookingDate.Format(DateLayout), b.StartTime, b.EndTime,
		b.Seat, b.Status, b.PaymentStatus, b.Notes,
	)
	if err != nil {
		if db.IsUniqueViolation(err, activeSeatIndex) {
			return nil, ErrSlotFull
		}
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return &b, nil
}

func (r *repository) ListForFacilityDate(ctx context.Context, facilityID uuid.UUID, date time.Time) ([]Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE facility_id = $1 AND booking_date = $2
		ORDER BY start_time ASC, seat ASC`

	bookings := []Booking{}
	err := r.db.SelectContext(ctx, &bookings, query, facilityID, date.Format(DateLayout))
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

// ListActiveForUser returns the user's pending and approved bookings on the
// facility. Whether they have already ended is left to the caller's clock.
func (r *repository) ListActiveForUser(ctx context.Context, userID, facilityID uuid.UUID) ([]Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1 AND facility_id = $2 AND status IN ('pending', 'approved')
		ORDER BY booking_date ASC, start_time ASC`

	bookings := []Booking{}
	err := r.db.SelectContext(ctx, &bookings, query, userID, facilityID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY booking_date DESC, start_time DESC`

	bookings := []Booking{}
	err := r.db.SelectContext(ctx, &bookings, query, userID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status, reason string) (*Booking, error) {
	query := `
		UPDATE bookings
		SET status = $3, cancellation_reason = $4, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + bookingColumns

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id, from, to, reason)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingChanged
		}
		return nil, err
	}

	return &b, nil
}

func (r *repository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, from, to PaymentStatus) (*Booking, error) {
	query := `
		UPDATE bookings
		SET payment_status = $3, updated_at = NOW()
		WHERE id = $1 AND payment_status = $2
		RETURNING ` + bookingColumns

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id, from, to)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingChanged
		}
		return nil, err
	}

	return &b, nil
}

// GetBookingStatsByDay buckets bookings by their booking date.
func (r *repository) GetBookingStatsByDay(ctx context.Context, facilityID *uuid.UUID, from, to time.Time) ([]DayStats, error) {
	query := `
SELECT
  TO_CHAR(booking_date, 'YYYY-MM-DD')             AS day,
  COUNT(*) FILTER (WHERE status = 'pending')   AS pending,
  COUNT(*) FILTER (WHERE status = 'approved')  AS approved,
  COUNT(*) FILTER (WHERE status = 'rejected')  AS rejected,
  COUNT(*) FILTER (WHERE status = 'cancelled') AS cancelled,
  COUNT(*)                                     AS total
FROM bookings
WHERE booking_date BETWEEN $1 AND $2
  AND ($3::uuid IS NULL OR facility_id = $3)
GROUP BY booking_date
ORDER BY booking_date;
`
	var fid interface{}
	if facilityID != nil {
		fid = *facilityID
	}

	stats := []DayStats{}
	err := r.db.SelectContext(ctx, &stats, query, from.Format(DateLayout), to.Format(DateLayout), fid)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
