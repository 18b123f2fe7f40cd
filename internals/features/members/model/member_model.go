package model

import (
	"time"

	"github.com/google/uuid"
)

// MemberModel represents the members table
type MemberModel struct {
	MemberID       uuid.UUID `gorm:"column:member_id;type:uuid;default:gen_random_uuid();primaryKey" json:"member_id"`
	MemberName     string    `gorm:"column:member_name;size:100;not null" json:"member_name"`
	MemberEmail    string    `gorm:"column:member_email;size:255;unique;not null" json:"member_email"`
	MemberPassword string    `gorm:"column:member_password;not null" json:"-"`
	MemberAge      *int      `gorm:"column:member_age" json:"member_age,omitempty"`

	// active plan (separate from session bookings)
	MemberMembershipID  *uuid.UUID `gorm:"column:member_membership_id;type:uuid" json:"member_membership_id,omitempty"`
	MemberPlanStartDate *time.Time `gorm:"column:member_plan_start_date" json:"member_plan_start_date,omitempty"`
	MemberPlanEndDate   *time.Time `gorm:"column:member_plan_end_date" json:"member_plan_end_date,omitempty"`

	MemberCreatedAt time.Time `gorm:"column:member_created_at;autoCreateTime" json:"member_created_at"`
	MemberUpdatedAt time.Time `gorm:"column:member_updated_at;autoUpdateTime" json:"member_updated_at"`
}

func (MemberModel) TableName() string {
	return "members"
}
