package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymku_backend/internals/features/equipment/dto"
	"gymku_backend/internals/features/equipment/model"
	helper "gymku_backend/internals/helpers"
)

type recentUsageRow struct {
	UsageID       uuid.UUID `gorm:"column:usage_id" json:"usage_id"`
	EquipmentName string    `gorm:"column:equipment_name" json:"equipment_name"`
	MemberName    string    `gorm:"column:member_name" json:"member_name"`
	UsageDate     time.Time `gorm:"column:usage_date" json:"date"`
	UsageTime     string    `gorm:"column:usage_time" json:"time"`
	UsageDuration int       `gorm:"column:usage_duration" json:"duration"`
}

// GET /api/equipment/stats/overview (admin)
func (ctrl *EquipmentController) GetStatsOverview(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.Context())

	var perEquipment []dto.EquipmentStatRow
	if err := db.Table("equipments").
		Select(`equipments.equipment_id, equipments.equipment_name,
			COUNT(usages.usage_id) AS total_usages,
			COALESCE(SUM(usages.usage_duration), 0) AS total_minutes,
			COUNT(DISTINCT usages.usage_member_id) AS unique_members`).
		Joins("LEFT JOIN usages ON usages.usage_equipment_id = equipments.equipment_id").
		Group("equipments.equipment_id, equipments.equipment_name").
		Order("total_usages DESC").
		Scan(&perEquipment).Error; err != nil {
		log.Println("[ERROR] Failed to compute equipment stats:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute equipment stats")
	}

	var recent []recentUsageRow
	if err := db.Table("usages").
		Select(`usages.usage_id, equipments.equipment_name, members.member_name,
			usages.usage_date, usages.usage_time, usages.usage_duration`).
		Joins("JOIN equipments ON equipments.equipment_id = usages.usage_equipment_id").
		Joins("JOIN members ON members.member_id = usages.usage_member_id").
		Order("usages.usage_created_at DESC").
		Limit(20).
		Scan(&recent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load recent usages")
	}

	var totalMinutes int64
	for _, row := range perEquipment {
		totalMinutes += row.TotalMinutes
	}

	return helper.JsonOK(c, "Equipment stats retrieved successfully", fiber.Map{
		"per_equipment": perEquipment,
		"recent_usages": recent,
		"total_minutes": totalMinutes,
	})
}

type usageByDateRow struct {
	Day          time.Time `gorm:"column:day" json:"day"`
	TotalUsages  int64     `gorm:"column:total_usages" json:"total_usages"`
	TotalMinutes int64     `gorm:"column:total_minutes" json:"total_minutes"`
}

// GET /api/equipment/stats/usage-by-date?from=YYYY-MM-DD&to=YYYY-MM-DD (admin)
func (ctrl *EquipmentController) GetUsageByDate(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).
		Table("usages").
		Select(`date_trunc('day', usage_date) AS day,
			COUNT(*) AS total_usages,
			COALESCE(SUM(usage_duration), 0) AS total_minutes`)

	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "from must be YYYY-MM-DD")
		}
		q = q.Where("usage_date >= ?", t)
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "to must be YYYY-MM-DD")
		}
		q = q.Where("usage_date < ?", t.AddDate(0, 0, 1))
	}

	var rows []usageByDateRow
	if err := q.Group("day").Order("day ASC").Scan(&rows).Error; err != nil {
		log.Println("[ERROR] Failed to compute usage by date:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute usage by date")
	}

	return helper.JsonOK(c, "Usage by date retrieved successfully", rows)
}

// GET /api/equipment/stats/:id (admin)
func (ctrl *EquipmentController) GetStatsByID(c *fiber.Ctx) error {
	equipmentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid equipment id")
	}

	var equipment model.EquipmentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("equipment_id = ?", equipmentID).
		First(&equipment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Equipment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load equipment")
	}

	var stat dto.EquipmentStatRow
	if err := ctrl.DB.WithContext(c.Context()).
		Table("equipments").
		Select(`equipments.equipment_id, equipments.equipment_name,
			COUNT(usages.usage_id) AS total_usages,
			COALESCE(SUM(usages.usage_duration), 0) AS total_minutes,
			COUNT(DISTINCT usages.usage_member_id) AS unique_members`).
		Joins("LEFT JOIN usages ON usages.usage_equipment_id = equipments.equipment_id").
		Where("equipments.equipment_id = ?", equipmentID).
		Group("equipments.equipment_id, equipments.equipment_name").
		Scan(&stat).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute equipment stats")
	}

	return helper.JsonOK(c, "Equipment stats retrieved successfully", fiber.Map{
		"equipment": equipment,
		"stats":     stat,
	})
}
