package booking

import (
	"time"

	"commonhub/internal/facility"
)

// IsDateSelectable gates the booking calendar: date must not be before today,
// must fall on an open weekday and must be at most max_advance_days ahead.
func IsDateSelectable(cfg facility.Config, date, today time.Time) bool {
	if !cfg.IsBookable() {
		return false
	}

	days := daysBetween(today, date)
	if days < 0 || days > cfg.MaxAdvanceDays {
		return false
	}

	return cfg.OpeningHours.OpenOn(date.Weekday())
}

// SelectableDates lists every date in [from, to] that passes the gate.
func SelectableDates(cfg facility.Config, from, to, today time.Time) []time.Time {
	var dates []time.Time
	start, end := civilDate(from), civilDate(to)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsDateSelectable(cfg, d, today) {
			dates = append(dates, d)
		}
	}
	return dates
}

func daysBetween(from, to time.Time) int {
	return int(civilDate(to).Sub(civilDate(from)).Hours() / 24)
}
