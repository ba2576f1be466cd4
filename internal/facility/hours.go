package facility

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var weekdayKeys = [...]string{
	time.Sunday:    "sun",
	time.Monday:    "mon",
	time.Tuesday:   "tue",
	time.Wednesday: "wed",
	time.Thursday:  "thu",
	time.Friday:    "fri",
	time.Saturday:  "sat",
}

func WeekdayKey(d time.Weekday) string {
	return weekdayKeys[d]
}

func isWeekdayKey(key string) bool {
	for _, k := range weekdayKeys {
		if k == key {
			return true
		}
	}
	return false
}

// OpeningWindow is the [Open, Close) span a facility is open on one weekday.
type OpeningWindow struct {
	Open  ClockTime `json:"open" yaml:"open"`
	Close ClockTime `json:"close" yaml:"close"`
}

func (w OpeningWindow) Minutes() int {
	return int(w.Close - w.Open)
}

func (w OpeningWindow) String() string {
	return w.Open.String() + "-" + w.Close.String()
}

func (w OpeningWindow) validate() error {
	if !w.Open.Valid() || !w.Close.Valid() {
		return ErrInvalidClock
	}
	if w.Close <= w.Open {
		return fmt.Errorf("close %s must be after open %s", w.Close, w.Open)
	}
	return nil
}

// parseWindow reads the compact "09:00-11:00" form.
func parseWindow(s string) (OpeningWindow, error) {
	open, closing, ok := strings.Cut(s, "-")
	if !ok {
		return OpeningWindow{}, fmt.Errorf("invalid opening window %q, expected HH:MM-HH:MM", s)
	}
	o, err := ParseClock(open)
	if err != nil {
		return OpeningWindow{}, err
	}
	c, err := ParseClock(closing)
	if err != nil {
		return OpeningWindow{}, err
	}
	return OpeningWindow{Open: o, Close: c}, nil
}

func (w *OpeningWindow) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := parseWindow(s)
		if err != nil {
			return err
		}
		*w = parsed
		return nil
	}

	type plain OpeningWindow
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*w = OpeningWindow(p)
	return nil
}

func (w *OpeningWindow) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		parsed, err := parseWindow(value.Value)
		if err != nil {
			return err
		}
		*w = parsed
		return nil
	}

	type plain OpeningWindow
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*w = OpeningWindow(p)
	return nil
}

// WeeklyHours maps weekday keys ("mon".."sun") to opening windows.
// A missing key or a nil window means the facility is closed that day.
type WeeklyHours map[string]*OpeningWindow

func (h WeeklyHours) For(d time.Weekday) *OpeningWindow {
	if h == nil {
		return nil
	}
	return h[WeekdayKey(d)]
}

func (h WeeklyHours) OpenOn(d time.Weekday) bool {
	return h.For(d) != nil
}

func (h WeeklyHours) Validate() error {
	for key, w := range h {
		if !isWeekdayKey(key) {
			return fmt.Errorf("unknown weekday %q", key)
		}
		if w == nil {
			continue
		}
		if err := w.validate(); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func (h WeeklyHours) Value() (driver.Value, error) {
	if h == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(h)
}

func (h *WeeklyHours) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		*h = WeeklyHours{}
		return nil
	default:
		return errors.New("opening_hours: unsupported column type")
	}
	out := WeeklyHours{}
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*h = out
	return nil
}
