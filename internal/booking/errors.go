package booking

import (
	"errors"
	"fmt"
)

// NoSlotsMessage is the empty-state message of a date without generable
// slots. A day without slots is not an error.
const NoSlotsMessage = "No slots available for this date"

var (
	ErrWalkInFacility       = errors.New("facility is walk-in and does not take bookings")
	ErrOutsideBookingWindow = errors.New("date is outside the booking window")
	ErrSlotNotOffered       = errors.New("requested time is not an offered slot on this date")
	ErrSlotInPast           = errors.New("cannot book a slot in the past")
	ErrSlotFull             = errors.New("this slot is full, please choose another slot")
	ErrAlreadyBooked        = errors.New("you already have a booking for this slot")

	ErrBookingNotFound   = errors.New("booking not found")
	ErrForbidden         = errors.New("you can only manage your own bookings")
	ErrInvalidTransition = errors.New("booking cannot move to the requested state")
	ErrBookingEnded      = errors.New("booking has already ended")
)

// TooManyActiveBookingsError is returned when a user already holds the
// facility's cap of pending and approved bookings.
type TooManyActiveBookingsError struct {
	Limit int
}

func (e *TooManyActiveBookingsError) Error() string {
	return fmt.Sprintf("you already have the maximum of %d active bookings for this facility", e.Limit)
}

// PersistenceFailure wraps a storage error raised while saving a booking.
// Its message is the underlying error's, unchanged.
type PersistenceFailure struct {
	Err error
}

func (e *PersistenceFailure) Error() string {
	return e.Err.Error()
}

func (e *PersistenceFailure) Unwrap() error {
	return e.Err
}
