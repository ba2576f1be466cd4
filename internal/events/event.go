package events

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	BookingCreated        Type = "booking.created"
	BookingApproved       Type = "booking.approved"
	BookingRejected       Type = "booking.rejected"
	BookingCancelled      Type = "booking.cancelled"
	BookingPaymentUpdated Type = "booking.payment_updated"
)

// Event is a booking lifecycle change as published to downstream consumers.
type Event struct {
	ID            uuid.UUID `json:"id"`
	Type          Type      `json:"type"`
	BookingID     uuid.UUID `json:"booking_id"`
	FacilityID    uuid.UUID `json:"facility_id"`
	UserID        uuid.UUID `json:"user_id"`
	BookingDate   string    `json:"booking_date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	Reason        string    `json:"reason,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
