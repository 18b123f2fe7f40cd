package dto

import "testing"

func TestUpdateAvailabilityRequestValidate(t *testing.T) {
	cases := []struct {
		name         string
		availability string
		wantErr      bool
	}{
		{"weekdays only", "1111100", false},
		{"all off", "0000000", false},
		{"all on", "1111111", false},
		{"too short", "11111", true},
		{"too long", "11111000", true},
		{"bad flag", "11x1100", true},
		{"digits out of range", "1121100", true},
		{"empty", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := UpdateAvailabilityRequest{Availability: tc.availability}
			err := req.Validate()
			if tc.wantErr && err == nil {
				t.Errorf("Validate(%q) = nil, want error", tc.availability)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Validate(%q) = %v, want nil", tc.availability, err)
			}
		})
	}
}

func TestRegisterTrainerRequestValidate(t *testing.T) {
	ok := RegisterTrainerRequest{
		Name:       "Alex Coach",
		Email:      "alex@example.com",
		Password:   "supersecret",
		Speciality: "Strength",
	}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	noSpeciality := ok
	noSpeciality.Speciality = ""
	if err := noSpeciality.Validate(); err == nil {
		t.Error("missing speciality should be rejected")
	}

	shortPassword := ok
	shortPassword.Password = "short"
	if err := shortPassword.Validate(); err == nil {
		t.Error("7-char password should be rejected")
	}
}
