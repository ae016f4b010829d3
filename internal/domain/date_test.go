package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonthsPreservesDay(t *testing.T) {
	got := AddMonths(date(2025, time.July, 1), 5)
	if want := date(2025, time.December, 1); !got.Equal(want) {
		t.Errorf("AddMonths = %v, want %v", got, want)
	}
}

func TestAddMonthsYearRollover(t *testing.T) {
	got := AddMonths(date(2025, time.November, 15), 3)
	if want := date(2026, time.February, 15); !got.Equal(want) {
		t.Errorf("AddMonths = %v, want %v", got, want)
	}
}

func TestAddMonthsClampsDayOverflow(t *testing.T) {
	cases := []struct {
		start time.Time
		n     int
		want  time.Time
	}{
		{date(2025, time.January, 31), 1, date(2025, time.February, 28)},
		{date(2024, time.January, 31), 1, date(2024, time.February, 29)}, // leap year
		{date(2025, time.March, 31), 1, date(2025, time.April, 30)},
		{date(2025, time.October, 31), 4, date(2026, time.February, 28)},
	}
	for _, c := range cases {
		if got := AddMonths(c.start, c.n); !got.Equal(c.want) {
			t.Errorf("AddMonths(%v, %d) = %v, want %v", c.start, c.n, got, c.want)
		}
	}
}

func TestAddMonthsNegative(t *testing.T) {
	got := AddMonths(date(2025, time.January, 15), -2)
	if want := date(2024, time.November, 15); !got.Equal(want) {
		t.Errorf("AddMonths = %v, want %v", got, want)
	}
}

func TestUTCDateDropsTimeOfDay(t *testing.T) {
	in := time.Date(2025, time.July, 1, 13, 45, 12, 999, time.FixedZone("X", 3600))
	if got := UTCDate(in); !got.Equal(date(2025, time.July, 1)) {
		t.Errorf("UTCDate = %v, want 2025-07-01T00:00:00Z", got)
	}
}
