package booking

import (
	"time"

	"commonhub/internal/facility"

	"github.com/google/uuid"
)

// AdmissionRequest is one booking attempt together with the snapshot it is
// judged against. Bookings holds the facility's bookings for Date and
// UserBookings the user's bookings on the same facility, both freshly loaded.
type AdmissionRequest struct {
	FacilityID   uuid.UUID
	UserID       uuid.UUID
	Config       facility.Config
	Date         time.Time
	Start        facility.ClockTime
	Notes        string
	Bookings     []Booking
	UserBookings []Booking
	Now          time.Time
}

// Admit runs the admission checks in order and returns the booking to
// persist. The first failing check decides the error.
func Admit(req AdmissionRequest) (*Booking, error) {
	cfg := req.Config
	if !cfg.IsBookable() {
		return nil, ErrWalkInFacility
	}

	today := civilDate(req.Now)
	if !IsDateSelectable(cfg, req.Date, today) {
		return nil, ErrOutsideBookingWindow
	}

	slot, ok := FindSlot(cfg, req.Date, req.Start)
	if !ok {
		return nil, ErrSlotNotOffered
	}

	if !req.Now.Before(onDate(req.Date, slot.Start, req.Now.Location())) {
		return nil, ErrSlotInPast
	}

	active := 0
	for _, b := range req.UserBookings {
		if b.UserID == req.UserID && b.FacilityID == req.FacilityID && b.IsActiveAt(req.Now) {
			active++
		}
	}
	if active >= cfg.MaxActiveBookings {
		return nil, &TooManyActiveBookingsError{Limit: cfg.MaxActiveBookings}
	}

	if ResolveAvailability(cfg, req.Bookings, req.Date, slot).IsFull {
		return nil, ErrSlotFull
	}

	for _, b := range req.Bookings {
		if b.UserID == req.UserID && b.Status.IsActive() && b.StartTime == slot.Start && sameDate(b.BookingDate, req.Date) {
			return nil, ErrAlreadyBooked
		}
	}

	seat, ok := freeSeat(cfg, req.Bookings, req.Date, slot)
	if !ok {
		return nil, ErrSlotFull
	}

	status := StatusApproved
	if cfg.RequiresApproval {
		status = StatusPending
	}
	payment := PaymentNotRequired
	if cfg.Fee != nil {
		payment = PaymentUnpaid
	}

	y, m, d := req.Date.Date()
	return &Booking{
		ID:            uuid.New(),
		FacilityID:    req.FacilityID,
		UserID:        req.UserID,
		BookingDate:   time.Date(y, m, d, 0, 0, 0, 0, req.Now.Location()),
		StartTime:     slot.Start,
		EndTime:       slot.End,
		Seat:          seat,
		Status:        status,
		PaymentStatus: payment,
		Notes:         req.Notes,
	}, nil
}

// ConfirmationMessage is shown to the resident after a successful admission.
func ConfirmationMessage(b *Booking, cfg facility.Config) string {
	msg := "Booking confirmed"
	if b.Status == StatusPending {
		msg = "Booking submitted, awaiting approval"
	}

	if cfg.Fee != nil {
		msg += ". A fee of " + cfg.Fee.String() + " applies"
		if deposit := cfg.Fee.DepositString(); deposit != "" {
			msg += " plus a refundable deposit of " + deposit
		}
	}
	return msg
}
