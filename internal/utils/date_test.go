package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-03-14")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}

	want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "not-a-date", "14-03-2026", "2026/03/14", "2026-13-40"} {
		if _, err := ParseDate(input); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}

func TestFormatDate_RoundTrip(t *testing.T) {
	const date = "2026-03-14"
	parsed, err := ParseDate(date)
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatDate(parsed); got != date {
		t.Errorf("got %q, want %q", got, date)
	}
}

func TestMidnight(t *testing.T) {
	in := time.Date(2026, 3, 14, 18, 45, 12, 999, time.Local)
	got := Midnight(in)
	want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 50, 0, 0, time.Local)

	cases := []struct {
		date time.Time
		want int
	}{
		{time.Date(2026, 3, 11, 0, 5, 0, 0, time.Local), 1},
		{time.Date(2026, 3, 10, 1, 0, 0, 0, time.Local), 0},
		{time.Date(2026, 3, 17, 12, 0, 0, 0, time.Local), 7},
		{time.Date(2026, 3, 9, 23, 59, 0, 0, time.Local), -1},
	}
	for _, tc := range cases {
		if got := DaysUntil(tc.date, now); got != tc.want {
			t.Errorf("DaysUntil(%v) = %d, want %d", tc.date, got, tc.want)
		}
	}
}
