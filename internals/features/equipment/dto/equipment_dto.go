package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type CreateEquipmentRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Category string `json:"category" validate:"max=100"`
	Quantity int    `json:"quantity" validate:"gte=0"`
	Status   string `json:"status" validate:"omitempty,oneof=operational under_maintenance out_of_order"`
}

func (r *CreateEquipmentRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateEquipmentRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	Category *string `json:"category" validate:"omitempty,max=100"`
	Quantity *int    `json:"quantity" validate:"omitempty,gte=0"`
	Status   *string `json:"status" validate:"omitempty,oneof=operational under_maintenance out_of_order"`
}

func (r *UpdateEquipmentRequest) Validate() error {
	return validate.Struct(r)
}

type RecordUsageRequest struct {
	EquipmentID string `json:"equipment_id" validate:"required,uuid4"`
	// calendar day of the workout
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	// wall-clock slot, e.g. "18:30"
	Time string `json:"time" validate:"required,datetime=15:04"`
	// minutes
	Duration int `json:"duration" validate:"required,gt=0,lte=600"`
}

func (r *RecordUsageRequest) Validate() error {
	return validate.Struct(r)
}

type EquipmentStatRow struct {
	EquipmentID   uuid.UUID `gorm:"column:equipment_id" json:"equipment_id"`
	EquipmentName string    `gorm:"column:equipment_name" json:"equipment_name"`
	TotalUsages   int64     `gorm:"column:total_usages" json:"total_usages"`
	TotalMinutes  int64     `gorm:"column:total_minutes" json:"total_minutes"`
	UniqueMembers int64     `gorm:"column:unique_members" json:"unique_members"`
}

type UsageHistoryItem struct {
	UsageID       uuid.UUID `gorm:"column:usage_id" json:"usage_id"`
	EquipmentName string    `gorm:"column:equipment_name" json:"equipment_name"`
	UsageDate     time.Time `gorm:"column:usage_date" json:"date"`
	UsageTime     string    `gorm:"column:usage_time" json:"time"`
	UsageDuration int       `gorm:"column:usage_duration" json:"duration"`
}
