package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseMonth_Valid(t *testing.T) {
	m, err := ParseMonth("2025-07")
	assert.NoError(t, err)
	assert.Equal(t, "2025-07", m.String())
}

func TestParseMonth_Invalid(t *testing.T) {
	for _, input := range []string{"", "2025", "2025-13", "2025-7", "July 2025", "2025-07-01"} {
		_, err := ParseMonth(input)
		assert.Error(t, err, "input %q", input)
		assert.True(t, IsValidationError(err), "input %q", input)
	}
}

func TestMonth_NextAcrossYearBoundary(t *testing.T) {
	m, _ := ParseMonth("2025-12")
	assert.Equal(t, "2026-01", m.Next().String())
}

func TestMonth_BoundsHalfOpen(t *testing.T) {
	m, _ := ParseMonth("2025-02")
	from, to := m.Bounds()

	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), to)

	// The last instant of February is in; the first instant of March is out.
	assert.True(t, m.Contains(to.Add(-time.Nanosecond)))
	assert.False(t, m.Contains(to))
	assert.True(t, m.Contains(from))
}

func TestMonthOf(t *testing.T) {
	m := MonthOf(time.Date(2025, time.July, 31, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "2025-07", m.String())
	assert.False(t, m.IsZero())
	assert.True(t, Month{}.IsZero())
}
