package dto

import "testing"

func TestRecordUsageRequestValidate(t *testing.T) {
	ok := RecordUsageRequest{
		EquipmentID: "7f6c1a1e-8f2d-4b6a-9c3e-2f1d0e9b8a7c",
		Date:        "2026-08-29",
		Time:        "18:30",
		Duration:    45,
	}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	badDate := ok
	badDate.Date = "29-08-2026"
	if err := badDate.Validate(); err == nil {
		t.Error("wrong date layout should be rejected")
	}

	badTime := ok
	badTime.Time = "6:30pm"
	if err := badTime.Validate(); err == nil {
		t.Error("wrong time layout should be rejected")
	}

	zeroDuration := ok
	zeroDuration.Duration = 0
	if err := zeroDuration.Validate(); err == nil {
		t.Error("zero duration should be rejected")
	}

	marathon := ok
	marathon.Duration = 601
	if err := marathon.Validate(); err == nil {
		t.Error("duration over 10 hours should be rejected")
	}
}

func TestUpdateEquipmentRequestValidate(t *testing.T) {
	status := "under_maintenance"
	ok := UpdateEquipmentRequest{Status: &status}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid status rejected: %v", err)
	}

	bad := "broken"
	if err := (&UpdateEquipmentRequest{Status: &bad}).Validate(); err == nil {
		t.Error("unknown status should be rejected")
	}
}
