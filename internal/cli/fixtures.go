package cli

import (
	"fmt"
	"os"
	"time"

	"commonhub/internal/booking"
	"commonhub/internal/facility"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads and validates a facility config from a YAML file.
func LoadConfig(path string) (facility.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return facility.Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg facility.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return facility.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := facility.ValidateConfig(cfg); err != nil {
		return facility.Config{}, err
	}
	return cfg, nil
}

type bookingFixture struct {
	Date   string             `yaml:"date"`
	Start  facility.ClockTime `yaml:"start"`
	Status booking.Status     `yaml:"status"`
	Seat   int                `yaml:"seat"`
}

type bookingFile struct {
	Bookings []bookingFixture `yaml:"bookings"`
}

// LoadBookings reads existing bookings from a YAML file. Each booking lasts
// one slot of cfg; status defaults to approved.
func LoadBookings(path string, cfg facility.Config, loc *time.Location) ([]booking.Booking, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bookings: %w", err)
	}

	var file bookingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse bookings %s: %w", path, err)
	}

	out := make([]booking.Booking, 0, len(file.Bookings))
	for i, fx := range file.Bookings {
		date, err := booking.ParseDate(fx.Date, loc)
		if err != nil {
			return nil, fmt.Errorf("booking %d: invalid date %q", i+1, fx.Date)
		}
		status := fx.Status
		if status == "" {
			status = booking.StatusApproved
		}
		out = append(out, booking.Booking{
			ID:          uuid.New(),
			BookingDate: date,
			StartTime:   fx.Start,
			EndTime:     fx.Start.Add(cfg.SlotDurationMinutes),
			Seat:        fx.Seat,
			Status:      status,
		})
	}
	return out, nil
}
