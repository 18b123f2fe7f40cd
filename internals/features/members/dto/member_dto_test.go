package dto

import "testing"

func TestRegisterMemberRequestValidate(t *testing.T) {
	age := 25
	ok := RegisterMemberRequest{
		Name:     "Jamie Doe",
		Email:    "jamie@example.com",
		Password: "supersecret",
		Age:      &age,
	}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	badEmail := ok
	badEmail.Email = "not-an-email"
	if err := badEmail.Validate(); err == nil {
		t.Error("bad email should be rejected")
	}

	tooYoung := ok
	young := 5
	tooYoung.Age = &young
	if err := tooYoung.Validate(); err == nil {
		t.Error("age 5 should be rejected")
	}

	noAge := ok
	noAge.Age = nil
	if err := noAge.Validate(); err != nil {
		t.Errorf("age is optional: %v", err)
	}
}

func TestConfirmVerificationRequestValidate(t *testing.T) {
	ok := ConfirmVerificationRequest{Email: "jamie@example.com", Code: "123456"}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	short := ConfirmVerificationRequest{Email: "jamie@example.com", Code: "123"}
	if err := short.Validate(); err == nil {
		t.Error("short code should be rejected")
	}

	letters := ConfirmVerificationRequest{Email: "jamie@example.com", Code: "12a456"}
	if err := letters.Validate(); err == nil {
		t.Error("non-numeric code should be rejected")
	}
}
