package booking

import (
	"time"

	"commonhub/internal/facility"
)

// ResolveAvailability counts the active bookings held on slot for date.
// bookings must all belong to the facility cfg describes; other dates,
// other start times and inactive statuses are ignored.
func ResolveAvailability(cfg facility.Config, bookings []Booking, date time.Time, slot TimeSlot) Availability {
	booked := 0
	for _, b := range bookings {
		if b.Status.IsActive() && b.StartTime == slot.Start && sameDate(b.BookingDate, date) {
			booked++
		}
	}

	capacity := cfg.Capacity()
	return Availability{
		Booked:    booked,
		Capacity:  capacity,
		Available: max(capacity-booked, 0),
		IsFull:    booked >= capacity,
	}
}

// ResolveDay resolves every generated slot of date against one booking snapshot.
func ResolveDay(cfg facility.Config, bookings []Booking, date time.Time) []SlotAvailability {
	slots := GenerateSlots(cfg, date)
	out := make([]SlotAvailability, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotAvailability{
			TimeSlot:     s,
			Availability: ResolveAvailability(cfg, bookings, date, s),
		})
	}
	return out
}

// freeSeat picks the lowest seat number in 1..capacity no active booking holds.
func freeSeat(cfg facility.Config, bookings []Booking, date time.Time, slot TimeSlot) (int, bool) {
	taken := make(map[int]bool)
	for _, b := range bookings {
		if b.Status.IsActive() && b.StartTime == slot.Start && sameDate(b.BookingDate, date) {
			taken[b.Seat] = true
		}
	}
	for seat := 1; seat <= cfg.Capacity(); seat++ {
		if !taken[seat] {
			return seat, true
		}
	}
	return 0, false
}
