package helper

import (
	"testing"
	"time"
)

func TestSessionStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		schedule time.Time
		want     string
	}{
		{"future session", now.Add(2 * time.Hour), SessionStatusUpcoming},
		{"past session", now.Add(-2 * time.Hour), SessionStatusAttended},
		{"far future", now.AddDate(0, 1, 0), SessionStatusUpcoming},
		{"yesterday", now.AddDate(0, 0, -1), SessionStatusAttended},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SessionStatus(tc.schedule, now); got != tc.want {
				t.Errorf("SessionStatus(%v) = %q, want %q", tc.schedule, got, tc.want)
			}
		})
	}
}
