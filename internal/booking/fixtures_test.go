package booking

import (
	"time"

	"commonhub/internal/facility"

	"github.com/google/uuid"
)

var (
	// Sunday noon; the Monday below is the next day.
	testNow    = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)
	testMonday = time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)
	testSunday = time.Date(2026, time.October, 25, 0, 0, 0, 0, time.UTC)
)

func clock(s string) facility.ClockTime {
	return facility.MustParseClock(s)
}

func slot(start, end string) TimeSlot {
	return TimeSlot{Start: clock(start), End: clock(end)}
}

// mondayConfig is the reference facility: Mondays 09:00-11:00, hourly slots
// for two people, one active booking per resident, no approval, no fee.
func mondayConfig() facility.Config {
	return facility.Config{
		Mode: facility.ModeSlotBooking,
		OpeningHours: facility.WeeklyHours{
			"mon": {Open: clock("09:00"), Close: clock("11:00")},
			"sun": nil,
		},
		SlotDurationMinutes: 60,
		CapacityPerSlot:     2,
		BufferMinutes:       0,
		MaxAdvanceDays:      14,
		MaxActiveBookings:   1,
	}
}

func newBooking(facilityID, userID uuid.UUID, date time.Time, start string, status Status) Booking {
	s := clock(start)
	return Booking{
		ID:            uuid.New(),
		FacilityID:    facilityID,
		UserID:        userID,
		BookingDate:   date,
		StartTime:     s,
		EndTime:       s.Add(60),
		Status:        status,
		PaymentStatus: PaymentNotRequired,
	}
}
