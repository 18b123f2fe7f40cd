package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type CreateSessionRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=100"`
	Schedule    string `json:"schedule" validate:"required"`
	Capacity    int    `json:"capacity" validate:"required,gt=0"`
	Description string `json:"description" validate:"max=2000"`
}

func (r *CreateSessionRequest) Validate() error {
	return validate.Struct(r)
}

// ParseSchedule accepts RFC3339 (with or without offset).
func (r *CreateSessionRequest) ParseSchedule() (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, r.Schedule); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", r.Schedule)
}

type UpdateSessionRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=3,max=100"`
	Schedule    *string `json:"schedule"`
	Capacity    *int    `json:"capacity" validate:"omitempty,gt=0"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

func (r *UpdateSessionRequest) Validate() error {
	return validate.Struct(r)
}

type AddFeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required,max=2000"`
}

func (r *AddFeedbackRequest) Validate() error {
	return validate.Struct(r)
}

/* ===============================
   Responses
=================================*/

type TrainerIdentity struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Speciality string    `json:"speciality"`
}

type SessionResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Schedule    time.Time        `json:"schedule"`
	Capacity    int              `json:"capacity"`
	Description string           `json:"description"`
	Status      string           `json:"status"` // derived, never stored
	Trainer     *TrainerIdentity `json:"trainer,omitempty"`
}

type AvailableSessionResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Schedule       time.Time       `json:"schedule"`
	Description    string          `json:"description"`
	AvailableSpots int             `json:"available_spots"`
	Trainer        TrainerIdentity `json:"trainer"`
}

type RegistrationResponse struct {
	ID             uuid.UUID       `json:"id"`
	SessionDetails SessionResponse `json:"session_details"`
	Feedback       *string         `json:"feedback,omitempty"`
	BookingDate    time.Time       `json:"booking_date"`
}

type RegisteredMemberResponse struct {
	RegistrationID uuid.UUID `json:"registration_id"`
	MemberID       uuid.UUID `json:"member_id"`
	MemberName     string    `json:"member_name"`
	MemberEmail    string    `json:"member_email"`
	Feedback       *string   `json:"feedback,omitempty"`
}

// TrainerSessionResponse is the trainer dashboard shape: own session plus its
// registrations.
type TrainerSessionResponse struct {
	SessionResponse
	Registrations []RegisteredMemberResponse `json:"registrations"`
}
