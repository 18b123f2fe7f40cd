package model

import (
	"time"

	"github.com/google/uuid"
)

// TrainerModel represents the trainers table
type TrainerModel struct {
	TrainerID         uuid.UUID `gorm:"column:trainer_id;type:uuid;default:gen_random_uuid();primaryKey" json:"trainer_id"`
	TrainerName       string    `gorm:"column:trainer_name;size:100;not null" json:"trainer_name"`
	TrainerEmail      string    `gorm:"column:trainer_email;size:255;unique;not null" json:"trainer_email"`
	TrainerPassword   string    `gorm:"column:trainer_password;not null" json:"-"`
	TrainerAge        *int      `gorm:"column:trainer_age" json:"trainer_age,omitempty"`
	TrainerSpeciality string    `gorm:"column:trainer_speciality;size:100" json:"trainer_speciality"`

	// weekly availability, one '0'/'1' flag per weekday, monday first
	TrainerAvailability string `gorm:"column:trainer_availability;type:char(7);not null;default:'0000000'" json:"trainer_availability"`

	TrainerCreatedAt time.Time `gorm:"column:trainer_created_at;autoCreateTime" json:"trainer_created_at"`
	TrainerUpdatedAt time.Time `gorm:"column:trainer_updated_at;autoUpdateTime" json:"trainer_updated_at"`
}

func (TrainerModel) TableName() string {
	return "trainers"
}
