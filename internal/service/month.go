package service

import (
	"time"
)

// Month identifies one budget period as "YYYY-MM". Every operation takes the
// month explicitly instead of reading the wall clock, so the engine stays
// deterministic; only the HTTP edge resolves "current".
type Month struct {
	year  int
	month time.Month
}

const monthLayout = "2006-01"

func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, NewValidationError("invalid month %q, expected YYYY-MM", s)
	}
	return Month{year: t.Year(), month: t.Month()}, nil
}

// MonthOf returns the Month containing t.
func MonthOf(t time.Time) Month {
	return Month{year: t.Year(), month: t.Month()}
}

func (m Month) String() string {
	return time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC).Format(monthLayout)
}

func (m Month) IsZero() bool {
	return m.year == 0
}

// Next returns the successor month.
func (m Month) Next() Month {
	t := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return Month{year: t.Year(), month: t.Month()}
}

// Bounds returns the half-open UTC interval [start, end) covering the month.
func (m Month) Bounds() (time.Time, time.Time) {
	start := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// Contains reports whether t falls inside the month.
func (m Month) Contains(t time.Time) bool {
	start, end := m.Bounds()
	return !t.Before(start) && t.Before(end)
}
