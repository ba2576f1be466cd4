package facility

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Mode string

const (
	ModeWalkIn      Mode = "walk_in"
	ModeSlotBooking Mode = "slot_booking"
)

type Fee struct {
	AmountCents  int64  `json:"amount_cents" yaml:"amount_cents" validate:"gte=0"`
	Currency     string `json:"currency" yaml:"currency" validate:"required,len=3"`
	DepositCents *int64 `json:"deposit_cents,omitempty" yaml:"deposit_cents,omitempty" validate:"omitempty,gte=0"`
}

func (f Fee) String() string {
	return formatMoney(f.AmountCents, f.Currency)
}

func formatMoney(cents int64, currency string) string {
	return fmt.Sprintf("%d.%02d %s", cents/100, cents%100, currency)
}

// DepositString is empty when the fee carries no refundable deposit.
func (f Fee) DepositString() string {
	if f.DepositCents == nil || *f.DepositCents == 0 {
		return ""
	}
	return formatMoney(*f.DepositCents, f.Currency)
}

// Config is the booking policy of one facility. Slot fields are ignored
// entirely for walk-in facilities.
type Config struct {
	Mode                    Mode        `json:"mode" yaml:"mode" validate:"required,oneof=walk_in slot_booking"`
	OpeningHours            WeeklyHours `json:"opening_hours" yaml:"opening_hours"`
	SlotDurationMinutes     int         `json:"slot_duration_minutes" yaml:"slot_duration_minutes" validate:"required_if=Mode slot_booking,gte=0,lte=1440"`
	CapacityPerSlot         int         `json:"capacity_per_slot" yaml:"capacity_per_slot" validate:"gte=0"`
	BufferMinutes           int         `json:"buffer_minutes" yaml:"buffer_minutes" validate:"gte=0,lte=1440"`
	MaxAdvanceDays          int         `json:"max_advance_days" yaml:"max_advance_days" validate:"required_if=Mode slot_booking,gte=0"`
	MaxActiveBookings       int         `json:"max_active_bookings" yaml:"max_active_bookings" validate:"required_if=Mode slot_booking,gte=0"`
	RequiresApproval        bool        `json:"requires_approval" yaml:"requires_approval"`
	Fee                     *Fee        `json:"fee,omitempty" yaml:"fee,omitempty" validate:"omitempty"`
	CancellationNoticeHours int         `json:"cancellation_notice_hours" yaml:"cancellation_notice_hours" validate:"gte=0"`
}

func (c Config) IsBookable() bool {
	return c.Mode == ModeSlotBooking
}

// Capacity defaults to a single booking per slot when unset.
func (c Config) Capacity() int {
	if c.CapacityPerSlot <= 0 {
		return 1
	}
	return c.CapacityPerSlot
}

type Facility struct {
	ID          uuid.UUID `json:"id"`
	CommunityID uuid.UUID `json:"community_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Config      Config    `json:"config"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateFacilityRequest struct {
	CommunityID string `json:"community_id" binding:"required,uuid"`
	Name        string `json:"name" binding:"required,min=2,max=200"`
	Description string `json:"description" binding:"max=2000"`
	Config      Config `json:"config"`
}

type UpdateConfigRequest struct {
	Config Config `json:"config"`
}
