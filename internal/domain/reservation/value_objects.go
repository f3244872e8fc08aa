package reservation

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate  = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidStay  = errors.New("end date must be after start date")
	ErrMissingDates = errors.New("start and end dates are required")
)

// Stay is a [start, end) range of calendar days. Times are normalized to UTC midnight.
type Stay struct {
	start time.Time
	end   time.Time
}

func NewStay(start, end time.Time) (Stay, error) {
	if start.IsZero() || end.IsZero() {
		return Stay{}, ErrMissingDates
	}
	start, end = DateOf(start), DateOf(end)
	if !end.After(start) {
		return Stay{}, ErrInvalidStay
	}
	return Stay{start: start, end: end}, nil
}

// ParseStay parses two YYYY-MM-DD strings.
func ParseStay(start, end string) (Stay, error) {
	s, err := ParseDate(start)
	if err != nil {
		return Stay{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return Stay{}, err
	}
	return NewStay(s, e)
}

// ReconstructStay skips validation for rows already in the store.
func ReconstructStay(start, end time.Time) Stay {
	return Stay{start: DateOf(start), end: DateOf(end)}
}

func (s Stay) Start() time.Time { return s.start }
func (s Stay) End() time.Time   { return s.end }

func (s Stay) Nights() int {
	return int(s.end.Sub(s.start).Hours() / 24)
}

func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, ErrMissingDates
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
