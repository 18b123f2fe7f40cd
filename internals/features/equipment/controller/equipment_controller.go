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

type EquipmentController struct {
	DB *gorm.DB
}

func NewEquipmentController(db *gorm.DB) *EquipmentController {
	return &EquipmentController{DB: db}
}

// POST /api/equipment (admin)
func (ctrl *EquipmentController) CreateEquipment(c *fiber.Ctx) error {
	var body dto.CreateEquipmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	status := body.Status
	if status == "" {
		status = model.StatusOperational
	}
	quantity := body.Quantity
	if quantity == 0 {
		quantity = 1
	}

	equipment := model.EquipmentModel{
		EquipmentName:     body.Name,
		EquipmentCategory: body.Category,
		EquipmentQuantity: quantity,
		EquipmentStatus:   status,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&equipment).Error; err != nil {
		log.Println("[ERROR] Failed to create equipment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create equipment")
	}

	return helper.JsonCreated(c, "Equipment created successfully", equipment)
}

// PUT /api/equipment/:id (admin)
func (ctrl *EquipmentController) UpdateEquipment(c *fiber.Ctx) error {
	equipmentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid equipment id")
	}

	var body dto.UpdateEquipmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
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

	updates := map[string]interface{}{}
	if body.Name != nil {
		updates["equipment_name"] = *body.Name
	}
	if body.Category != nil {
		updates["equipment_category"] = *body.Category
	}
	if body.Quantity != nil {
		updates["equipment_quantity"] = *body.Quantity
	}
	if body.Status != nil {
		updates["equipment_status"] = *body.Status
	}
	if len(updates) > 0 {
		if err := ctrl.DB.WithContext(c.Context()).
			Model(&equipment).
			Updates(updates).Error; err != nil {
			log.Println("[ERROR] Failed to update equipment:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update equipment")
		}
	}

	return helper.JsonUpdated(c, "Equipment updated successfully", equipment)
}

// GET /api/equipment/getAll (admin)
func (ctrl *EquipmentController) GetAllEquipment(c *fiber.Ctx) error {
	var equipments []model.EquipmentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("equipment_name ASC").
		Find(&equipments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load equipment")
	}

	return helper.JsonOK(c, "Equipment retrieved successfully", equipments)
}

/*
	========================================================
	  Usage recording (member)

========================================================
*/

// POST /api/equipment/usage
func (ctrl *EquipmentController) RecordUsage(c *fiber.Ctx) error {
	var body dto.RecordUsageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	equipmentID, err := uuid.Parse(body.EquipmentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid equipment id")
	}
	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	memberID := helper.GetUserUUID(c)
	if memberID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
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
	if equipment.EquipmentStatus != model.StatusOperational {
		return helper.JsonError(c, fiber.StatusConflict, "Equipment is not operational")
	}

	usage := model.UsageModel{
		UsageMemberID:    memberID,
		UsageEquipmentID: equipmentID,
		UsageDate:        date,
		UsageTime:        body.Time,
		UsageDuration:    body.Duration,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&usage).Error; err != nil {
		log.Println("[ERROR] Failed to record usage:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record usage")
	}

	return helper.JsonCreated(c, "Usage recorded successfully", usage)
}

// GET /api/equipment/usage/history
func (ctrl *EquipmentController) GetMyUsageHistory(c *fiber.Ctx) error {
	memberID := helper.GetUserUUID(c)

	var rows []dto.UsageHistoryItem
	if err := ctrl.DB.WithContext(c.Context()).
		Table("usages").
		Select(`usages.usage_id, equipments.equipment_name,
			usages.usage_date, usages.usage_time, usages.usage_duration`).
		Joins("JOIN equipments ON equipments.equipment_id = usages.usage_equipment_id").
		Where("usages.usage_member_id = ?", memberID).
		Order("usages.usage_date DESC, usages.usage_time DESC").
		Scan(&rows).Error; err != nil {
		log.Println("[ERROR] Failed to load usage history:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load usage history")
	}

	return helper.JsonOK(c, "Usage history retrieved successfully", rows)
}
