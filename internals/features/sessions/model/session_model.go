package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel represents the sessions table. A session is owned by exactly
// one trainer; registrations hang off it and are removed with it.
type SessionModel struct {
	SessionID          uuid.UUID `gorm:"column:session_id;type:uuid;default:gen_random_uuid();primaryKey" json:"session_id"`
	SessionName        string    `gorm:"column:session_name;size:100;not null" json:"session_name"`
	SessionTrainerID   uuid.UUID `gorm:"column:session_trainer_id;type:uuid;not null" json:"session_trainer_id"`
	SessionSchedule    time.Time `gorm:"column:session_schedule;not null" json:"session_schedule"`
	SessionCapacity    int       `gorm:"column:session_capacity;not null" json:"session_capacity"`
	SessionDescription string    `gorm:"column:session_description" json:"session_description"`

	SessionCreatedAt time.Time `gorm:"column:session_created_at;autoCreateTime" json:"session_created_at"`
	SessionUpdatedAt time.Time `gorm:"column:session_updated_at;autoUpdateTime" json:"session_updated_at"`
}

func (SessionModel) TableName() string {
	return "sessions"
}
