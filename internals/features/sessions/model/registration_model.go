package model

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationModel represents the registrations table: a member's booking
// into a session. It doubles as the attendance/feedback record. The
// (member, session) pair is unique at the database level.
type RegistrationModel struct {
	RegistrationID        uuid.UUID `gorm:"column:registration_id;type:uuid;default:gen_random_uuid();primaryKey" json:"registration_id"`
	RegistrationMemberID  uuid.UUID `gorm:"column:registration_member_id;type:uuid;not null" json:"registration_member_id"`
	RegistrationSessionID uuid.UUID `gorm:"column:registration_session_id;type:uuid;not null" json:"registration_session_id"`
	RegistrationFeedback  *string   `gorm:"column:registration_feedback" json:"registration_feedback,omitempty"`

	RegistrationCreatedAt time.Time `gorm:"column:registration_created_at;autoCreateTime" json:"registration_created_at"`
}

func (RegistrationModel) TableName() string {
	return "registrations"
}
