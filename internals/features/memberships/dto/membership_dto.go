package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type CreatePlanRequest struct {
	PlanName       string   `json:"plan_name" validate:"required,min=3,max=100"`
	DurationMonths int      `json:"duration_months" validate:"required,gt=0"`
	Cost           int      `json:"cost" validate:"gte=0"`
	Features       []string `json:"features" validate:"dive,max=200"`
}

func (r *CreatePlanRequest) Validate() error {
	return validate.Struct(r)
}

type UpdatePlanRequest struct {
	PlanName       *string   `json:"plan_name" validate:"omitempty,min=3,max=100"`
	DurationMonths *int      `json:"duration_months" validate:"omitempty,gt=0"`
	Cost           *int      `json:"cost" validate:"omitempty,gte=0"`
	Features       *[]string `json:"features" validate:"omitempty,dive,max=200"`
}

func (r *UpdatePlanRequest) Validate() error {
	return validate.Struct(r)
}

type PurchaseRequest struct {
	PaymentMode string `json:"payment_mode" validate:"required,oneof=card cash upi netbanking"`
}

func (r *PurchaseRequest) Validate() error {
	return validate.Struct(r)
}

type PlanResponse struct {
	ID             uuid.UUID `json:"id"`
	PlanName       string    `json:"plan_name"`
	DurationMonths int       `json:"duration_months"`
	Cost           int       `json:"cost"`
	Features       []string  `json:"features"`
}

// MyMembershipResponse is the member's active plan view.
type MyMembershipResponse struct {
	Plan          PlanResponse `json:"plan"`
	StartDate     time.Time    `json:"start_date"`
	EndDate       time.Time    `json:"end_date"`
	DaysRemaining int          `json:"days_remaining"`
	Active        bool         `json:"active"`
}

type PurchaseHistoryItem struct {
	PaymentID   uuid.UUID `json:"payment_id"`
	PlanName    string    `json:"plan_name"`
	Amount      int       `json:"amount"`
	PaymentMode string    `json:"payment_mode"`
	PaymentDate time.Time `json:"payment_date"`
}
