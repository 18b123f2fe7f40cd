package controller

import (
	"testing"
	"time"
)

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)

	at := time.Date(2026, 8, 29, 23, 45, 0, 0, loc)
	start, end := dayBounds(at)

	if start.Hour() != 0 || start.Minute() != 0 {
		t.Errorf("start not at midnight: %v", start)
	}
	if start.Day() != 29 {
		t.Errorf("start day = %d, want 29", start.Day())
	}
	if !end.Equal(start.AddDate(0, 0, 1)) {
		t.Errorf("end = %v, want start+24h", end)
	}
	if !at.After(start) || !at.Before(end) {
		t.Error("timestamp should fall inside its own day bounds")
	}
}
