package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceModel represents the attendances table: one gym visit. A visit
// is "open" until attendance_out_time is set.
type AttendanceModel struct {
	AttendanceID       uuid.UUID  `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`
	AttendanceMemberID uuid.UUID  `gorm:"column:attendance_member_id;type:uuid;not null" json:"attendance_member_id"`
	AttendanceDate     time.Time  `gorm:"column:attendance_date;autoCreateTime" json:"attendance_date"`
	AttendanceInTime   time.Time  `gorm:"column:attendance_in_time;autoCreateTime" json:"attendance_in_time"`
	AttendanceOutTime  *time.Time `gorm:"column:attendance_out_time" json:"attendance_out_time,omitempty"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}
