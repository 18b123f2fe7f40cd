package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type RegisterMemberRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Age      *int   `json:"age" validate:"omitempty,gte=10,lte=120"`
}

func (r *RegisterMemberRequest) Validate() error {
	return validate.Struct(r)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}

type SendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r *SendVerificationRequest) Validate() error {
	return validate.Struct(r)
}

type ConfirmVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

func (r *ConfirmVerificationRequest) Validate() error {
	return validate.Struct(r)
}

// MemberResponse is the public shape of a member (no password).
type MemberResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Age   *int      `json:"age,omitempty"`
}
