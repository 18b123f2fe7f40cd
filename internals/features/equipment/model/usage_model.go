package model

import (
	"time"

	"github.com/google/uuid"
)

// UsageModel represents the usages table: one equipment workout entry
// recorded by a member.
type UsageModel struct {
	UsageID          uuid.UUID `gorm:"column:usage_id;type:uuid;default:gen_random_uuid();primaryKey" json:"usage_id"`
	UsageMemberID    uuid.UUID `gorm:"column:usage_member_id;type:uuid;not null" json:"usage_member_id"`
	UsageEquipmentID uuid.UUID `gorm:"column:usage_equipment_id;type:uuid;not null" json:"usage_equipment_id"`
	UsageDate        time.Time `gorm:"column:usage_date;not null" json:"usage_date"`
	// wall-clock slot like "18:30", kept as text
	UsageTime     string `gorm:"column:usage_time;size:10;not null" json:"usage_time"`
	UsageDuration int    `gorm:"column:usage_duration;not null;default:0" json:"usage_duration"`

	UsageCreatedAt time.Time `gorm:"column:usage_created_at;autoCreateTime" json:"usage_created_at"`
}

func (UsageModel) TableName() string {
	return "usages"
}
