package booking

import (
	"time"

	"commonhub/internal/facility"
)

// GenerateSlots lays fixed-length slots over the opening window of date's
// weekday: a slot starts at open, the next one duration+buffer later, and no
// slot runs past close. Walk-in facilities and closed days yield nothing.
func GenerateSlots(cfg facility.Config, date time.Time) []TimeSlot {
	if !cfg.IsBookable() || cfg.SlotDurationMinutes <= 0 {
		return nil
	}

	window := cfg.OpeningHours.For(date.Weekday())
	if window == nil {
		return nil
	}

	step := cfg.SlotDurationMinutes + max(cfg.BufferMinutes, 0)

	var slots []TimeSlot
	for cursor := window.Open; cursor.Add(cfg.SlotDurationMinutes) <= window.Close; cursor = cursor.Add(step) {
		slots = append(slots, TimeSlot{
			Start: cursor,
			End:   cursor.Add(cfg.SlotDurationMinutes),
		})
	}
	return slots
}

// FindSlot returns the generated slot starting at start.
func FindSlot(cfg facility.Config, date time.Time, start facility.ClockTime) (TimeSlot, bool) {
	for _, s := range GenerateSlots(cfg, date) {
		if s.Start == start {
			return s, true
		}
	}
	return TimeSlot{}, false
}
