package controller

import (
	"errors"
	"testing"
)

func TestOpenSpots(t *testing.T) {
	cases := []struct {
		capacity int
		booked   int64
		want     int
	}{
		{10, 3, 7},
		{10, 10, 0},
		{10, 12, 0}, // over capacity rows never go negative
		{1, 0, 1},
	}
	for _, tc := range cases {
		if got := OpenSpots(tc.capacity, tc.booked); got != tc.want {
			t.Errorf("OpenSpots(%d, %d) = %d, want %d", tc.capacity, tc.booked, got, tc.want)
		}
	}
}

func TestBookingConflict(t *testing.T) {
	if msg := bookingConflict(true, 0, 10); msg != "You have already booked this session" {
		t.Errorf("already booked: %q", msg)
	}
	if msg := bookingConflict(false, 10, 10); msg != "Session is already full" {
		t.Errorf("full session: %q", msg)
	}
	if msg := bookingConflict(false, 11, 10); msg == "" {
		t.Error("over-full session should conflict")
	}
	if msg := bookingConflict(false, 9, 10); msg != "" {
		t.Errorf("last spot should be bookable, got %q", msg)
	}
	// the duplicate check wins over the full check
	if msg := bookingConflict(true, 10, 10); msg != "You have already booked this session" {
		t.Errorf("duplicate before full: %q", msg)
	}
}

func TestIsDuplicateKey(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New(`ERROR: duplicate key value violates unique constraint "uq_registrations_member_session" (SQLSTATE 23505)`), true},
		{errors.New("ERROR: 23505"), true},
		{errors.New("connection refused"), false},
	}
	for _, tc := range cases {
		if got := isDuplicateKey(tc.err); got != tc.want {
			t.Errorf("isDuplicateKey(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}
