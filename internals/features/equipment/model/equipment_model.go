package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusOperational      = "operational"
	StatusUnderMaintenance = "under_maintenance"
	StatusOutOfOrder       = "out_of_order"
)

// EquipmentModel represents the equipments table.
type EquipmentModel struct {
	EquipmentID       uuid.UUID `gorm:"column:equipment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"equipment_id"`
	EquipmentName     string    `gorm:"column:equipment_name;size:100;not null" json:"equipment_name"`
	EquipmentCategory string    `gorm:"column:equipment_category;size:100" json:"equipment_category"`
	EquipmentQuantity int       `gorm:"column:equipment_quantity;not null;default:1" json:"equipment_quantity"`
	EquipmentStatus   string    `gorm:"column:equipment_status;size:30;not null;default:'operational'" json:"equipment_status"`

	EquipmentCreatedAt time.Time `gorm:"column:equipment_created_at;autoCreateTime" json:"equipment_created_at"`
	EquipmentUpdatedAt time.Time `gorm:"column:equipment_updated_at;autoUpdateTime" json:"equipment_updated_at"`
}

func (EquipmentModel) TableName() string {
	return "equipments"
}
