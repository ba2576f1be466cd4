package facility

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const minutesPerDay = 24 * 60

var ErrInvalidClock = errors.New("invalid clock time, expected HH:MM")

// ClockTime is a wall-clock time of day in minutes since midnight.
// 24:00 is allowed so a window can close at midnight.
type ClockTime int

func NewClockTime(hour, minute int) ClockTime {
	return ClockTime(hour*60 + minute)
}

// ParseClock accepts "HH:MM" and the "HH:MM:SS" form postgres returns for TIME columns.
func ParseClock(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, ErrInvalidClock
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) != 2 {
		return 0, ErrInvalidClock
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 {
		return 0, ErrInvalidClock
	}
	if len(parts) == 3 {
		sec, err := strconv.Atoi(parts[2])
		if err != nil || sec != 0 {
			return 0, ErrInvalidClock
		}
	}

	if hour < 0 || hour > 24 || minute < 0 || minute > 59 {
		return 0, ErrInvalidClock
	}
	if hour == 24 && minute != 0 {
		return 0, ErrInvalidClock
	}

	return NewClockTime(hour, minute), nil
}

func MustParseClock(s string) ClockTime {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c ClockTime) Hour() int   { return int(c) / 60 }
func (c ClockTime) Minute() int { return int(c) % 60 }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c ClockTime) Add(minutes int) ClockTime {
	return c + ClockTime(minutes)
}

func (c ClockTime) Valid() bool {
	return c >= 0 && c <= minutesPerDay
}

// On returns the instant this clock time falls on for the given calendar date.
func (c ClockTime) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, c.Hour(), c.Minute(), 0, 0, date.Location())
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ErrInvalidClock
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c ClockTime) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

func (c *ClockTime) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseClock(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c ClockTime) Value() (driver.Value, error) {
	return c.String(), nil
}

func (c *ClockTime) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case time.Time:
		*c = NewClockTime(v.Hour(), v.Minute())
		return nil
	default:
		return fmt.Errorf("cannot scan %T into ClockTime", src)
	}

	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
