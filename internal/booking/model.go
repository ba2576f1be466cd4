package booking

import (
	"time"

	"commonhub/internal/facility"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// IsActive reports whether a booking in this status occupies a seat.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusApproved
}

type PaymentStatus string

const (
	PaymentNotRequired PaymentStatus = "not_required"
	PaymentUnpaid      PaymentStatus = "unpaid"
	PaymentPaid        PaymentStatus = "paid"
	PaymentRefunded    PaymentStatus = "refunded"
)

type Booking struct {
	ID                 uuid.UUID          `db:"id" json:"id"`
	FacilityID         uuid.UUID          `db:"facility_id" json:"facility_id"`
	UserID             uuid.UUID          `db:"user_id" json:"user_id"`
	BookingDate        time.Time          `db:"booking_date" json:"booking_date"`
	StartTime          facility.ClockTime `db:"start_time" json:"start_time"`
	EndTime            facility.ClockTime `db:"end_time" json:"end_time"`
	Seat               int                `db:"seat" json:"-"`
	Status             Status             `db:"status" json:"status"`
	PaymentStatus      PaymentStatus      `db:"payment_status" json:"payment_status"`
	Notes              string             `db:"notes" json:"notes,omitempty"`
	CancellationReason string             `db:"cancellation_reason" json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time          `db:"updated_at" json:"updated_at"`
}

// StartsAt places the booking on the wall clock of loc.
func (b Booking) StartsAt(loc *time.Location) time.Time {
	return onDate(b.BookingDate, b.StartTime, loc)
}

func (b Booking) EndsAt(loc *time.Location) time.Time {
	return onDate(b.BookingDate, b.EndTime, loc)
}

func (b Booking) HasEnded(now time.Time) bool {
	return !now.Before(b.EndsAt(now.Location()))
}

// IsActiveAt reports whether the booking still counts against the user's cap.
func (b Booking) IsActiveAt(now time.Time) bool {
	return b.Status.IsActive() && !b.HasEnded(now)
}

// WithDerivedStatus returns a copy whose status reads completed once an
// approved booking is over. Completed is never stored.
func (b Booking) WithDerivedStatus(now time.Time) Booking {
	if b.Status == StatusApproved && b.HasEnded(now) {
		b.Status = StatusCompleted
	}
	return b
}

func (b Booking) Slot() TimeSlot {
	return TimeSlot{Start: b.StartTime, End: b.EndTime}
}

type TimeSlot struct {
	Start facility.ClockTime `json:"start" yaml:"start"`
	End   facility.ClockTime `json:"end" yaml:"end"`
}

func (s TimeSlot) String() string {
	return s.Start.String() + "-" + s.End.String()
}

type Availability struct {
	Booked    int  `json:"booked"`
	Capacity  int  `json:"capacity"`
	Available int  `json:"available"`
	IsFull    bool `json:"is_full"`
}

type SlotAvailability struct {
	TimeSlot
	Availability
}

type DayAvailability struct {
	FacilityID uuid.UUID          `json:"facility_id"`
	Date       string             `json:"date" example:"2026-10-19"`
	Slots      []SlotAvailability `json:"slots"`
	Message    string             `json:"message,omitempty"`
}

type CalendarView struct {
	FacilityID uuid.UUID `json:"facility_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Dates      []string  `json:"dates"`
}

type CreateBookingRequest struct {
	Date      string `json:"date" binding:"required,datetime=2006-01-02" example:"2026-10-19"`
	StartTime string `json:"start_time" binding:"required" example:"09:00"`
	Notes     string `json:"notes" binding:"max=500"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type RejectBookingRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type UpdatePaymentRequest struct {
	PaymentStatus PaymentStatus `json:"payment_status" binding:"required,oneof=paid refunded"`
}

type AdmissionResult struct {
	Booking      *Booking         `json:"booking"`
	Message      string           `json:"message" example:"Booking confirmed"`
	Availability *DayAvailability `json:"availability,omitempty"`
}

type CancelResult struct {
	Booking *Booking `json:"booking"`
	Message string   `json:"message" example:"Booking cancelled successfully"`
	Warning string   `json:"warning,omitempty"`
}

// Actor is the caller a lifecycle change is performed on behalf of.
type Actor struct {
	UserID  uuid.UUID
	IsAdmin bool
}

type DayStats struct {
	Day       string `db:"day" json:"day"`
	Pending   int    `db:"pending" json:"pending"`
	Approved  int    `db:"approved" json:"approved"`
	Rejected  int    `db:"rejected" json:"rejected"`
	Cancelled int    `db:"cancelled" json:"cancelled"`
	Total     int    `db:"total" json:"total"`
}

func onDate(date time.Time, c facility.ClockTime, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, c.Hour(), c.Minute(), 0, 0, loc)
}

// civilDate drops the clock and location so calendar dates compare exactly.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDate(a, b time.Time) bool {
	return civilDate(a).Equal(civilDate(b))
}

// ParseDate reads a YYYY-MM-DD calendar date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}
