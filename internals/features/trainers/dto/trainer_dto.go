package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type RegisterTrainerRequest struct {
	Name       string `json:"name" validate:"required,min=3,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Age        *int   `json:"age" validate:"omitempty,gte=16,lte=120"`
	Speciality string `json:"speciality" validate:"required,max=100"`
}

func (r *RegisterTrainerRequest) Validate() error {
	return validate.Struct(r)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateAvailabilityRequest struct {
	// one flag per weekday, monday first, e.g. "1101100"
	Availability string `json:"availability" validate:"required,len=7"`
}

func (r *UpdateAvailabilityRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	for _, ch := range r.Availability {
		if ch != '0' && ch != '1' {
			return errors.New("availability must contain only '0' or '1' flags")
		}
	}
	return nil
}

type UpdateProfileRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=3,max=100"`
	Age        *int    `json:"age" validate:"omitempty,gte=16,lte=120"`
	Speciality *string `json:"speciality" validate:"omitempty,max=100"`
}

func (r *UpdateProfileRequest) Validate() error {
	return validate.Struct(r)
}

// TrainerResponse is the private profile shape.
type TrainerResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Age          *int      `json:"age,omitempty"`
	Speciality   string    `json:"speciality"`
	Availability string    `json:"availability"`
}

// TrainerPublicResponse holds only fields safe for the public site.
type TrainerPublicResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Speciality string    `json:"speciality"`
}
