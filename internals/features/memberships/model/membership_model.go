package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MembershipModel represents the memberships table: a purchasable plan.
type MembershipModel struct {
	MembershipID             uuid.UUID      `gorm:"column:membership_id;type:uuid;default:gen_random_uuid();primaryKey" json:"membership_id"`
	MembershipPlanName       string         `gorm:"column:membership_plan_name;size:100;not null" json:"membership_plan_name"`
	MembershipDurationMonths int            `gorm:"column:membership_duration_months;not null" json:"membership_duration_months"`
	MembershipCost           int            `gorm:"column:membership_cost;not null" json:"membership_cost"`
	MembershipFeatures       pq.StringArray `gorm:"column:membership_features;type:text[]" json:"membership_features"`

	MembershipCreatedAt time.Time `gorm:"column:membership_created_at;autoCreateTime" json:"membership_created_at"`
	MembershipUpdatedAt time.Time `gorm:"column:membership_updated_at;autoUpdateTime" json:"membership_updated_at"`
}

func (MembershipModel) TableName() string {
	return "memberships"
}
