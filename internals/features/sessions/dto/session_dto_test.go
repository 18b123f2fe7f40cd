package dto

import (
	"testing"
	"time"
)

func TestCreateSessionRequestValidate(t *testing.T) {
	ok := CreateSessionRequest{
		Name:     "Morning Yoga",
		Schedule: "2026-09-01T07:00:00Z",
		Capacity: 15,
	}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	zeroCapacity := ok
	zeroCapacity.Capacity = 0
	if err := zeroCapacity.Validate(); err == nil {
		t.Error("capacity 0 should be rejected")
	}

	shortName := ok
	shortName.Name = "ab"
	if err := shortName.Validate(); err == nil {
		t.Error("2-char name should be rejected")
	}
}

func TestParseSchedule(t *testing.T) {
	withOffset := CreateSessionRequest{Schedule: "2026-09-01T07:00:00+05:30"}
	got, err := withOffset.ParseSchedule()
	if err != nil {
		t.Fatalf("RFC3339 with offset: %v", err)
	}
	if got.UTC().Hour() != 1 || got.UTC().Minute() != 30 {
		t.Errorf("offset not applied, got %v", got.UTC())
	}

	noOffset := CreateSessionRequest{Schedule: "2026-09-01T07:00:00"}
	got, err = noOffset.ParseSchedule()
	if err != nil {
		t.Fatalf("bare timestamp: %v", err)
	}
	if !got.Equal(time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC)) {
		t.Errorf("bare timestamp parsed as %v", got)
	}

	bad := CreateSessionRequest{Schedule: "tomorrow at 7"}
	if _, err := bad.ParseSchedule(); err == nil {
		t.Error("free-text schedule should fail")
	}
}

func TestAddFeedbackRequestValidate(t *testing.T) {
	if err := (&AddFeedbackRequest{Feedback: "Great session"}).Validate(); err != nil {
		t.Errorf("valid feedback rejected: %v", err)
	}
	if err := (&AddFeedbackRequest{}).Validate(); err == nil {
		t.Error("empty feedback should be rejected")
	}
}
