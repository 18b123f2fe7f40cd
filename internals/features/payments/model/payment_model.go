package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel represents the payments table. A row is written once per
// membership purchase and never updated.
type PaymentModel struct {
	PaymentID           uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentMemberID     uuid.UUID `gorm:"column:payment_member_id;type:uuid;not null" json:"payment_member_id"`
	PaymentMembershipID uuid.UUID `gorm:"column:payment_membership_id;type:uuid;not null" json:"payment_membership_id"`
	PaymentAmount       int       `gorm:"column:payment_amount;not null" json:"payment_amount"`
	PaymentMode         string    `gorm:"column:payment_mode;size:30;not null" json:"payment_mode"`
	PaymentDate         time.Time `gorm:"column:payment_date;autoCreateTime" json:"payment_date"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
