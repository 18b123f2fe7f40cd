package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	"gymku_backend/internals/features/trainers/dto"
	"gymku_backend/internals/features/trainers/model"
	helper "gymku_backend/internals/helpers"
)

type TrainerController struct {
	DB *gorm.DB
}

func NewTrainerController(db *gorm.DB) *TrainerController {
	return &TrainerController{DB: db}
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}

func trainerResponse(t model.TrainerModel) dto.TrainerResponse {
	return dto.TrainerResponse{
		ID:           t.TrainerID,
		Name:         t.TrainerName,
		Email:        t.TrainerEmail,
		Age:          t.TrainerAge,
		Speciality:   t.TrainerSpeciality,
		Availability: t.TrainerAvailability,
	}
}

// POST /api/trainers/register
func (ctrl *TrainerController) Register(c *fiber.Ctx) error {
	var body dto.RegisterTrainerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	trainer := model.TrainerModel{
		TrainerName:       body.Name,
		TrainerEmail:      strings.ToLower(strings.TrimSpace(body.Email)),
		TrainerPassword:   string(hashed),
		TrainerAge:        body.Age,
		TrainerSpeciality: body.Speciality,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&trainer).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
		}
		log.Println("[ERROR] Failed to register trainer:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register trainer")
	}

	token, err := helper.SignAccessToken(trainer.TrainerID.String(), constants.RoleTrainer, trainer.TrainerEmail)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonCreated(c, "Trainer registered successfully", fiber.Map{
		"token":   token,
		"trainer": trainerResponse(trainer),
	})
}

// POST /api/trainers/login
func (ctrl *TrainerController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var trainer model.TrainerModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("trainer_email = ?", strings.ToLower(strings.TrimSpace(body.Email))).
		First(&trainer).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(trainer.TrainerPassword), []byte(body.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := helper.SignAccessToken(trainer.TrainerID.String(), constants.RoleTrainer, trainer.TrainerEmail)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"token":   token,
		"trainer": trainerResponse(trainer),
	})
}

// PUT /api/trainers/availability
func (ctrl *TrainerController) UpdateAvailability(c *fiber.Ctx) error {
	var body dto.UpdateAvailabilityRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	trainerID := helper.GetUserUUID(c)

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.TrainerModel{}).
		Where("trainer_id = ?", trainerID).
		Update("trainer_availability", body.Availability)
	if res.Error != nil {
		log.Println("[ERROR] Failed to update availability:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update availability")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Trainer not found")
	}

	return helper.JsonUpdated(c, "Availability updated successfully", fiber.Map{
		"availability": body.Availability,
	})
}

// PUT /api/trainers/edit-profile
func (ctrl *TrainerController) EditProfile(c *fiber.Ctx) error {
	var body dto.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	trainerID := helper.GetUserUUID(c)

	var trainer model.TrainerModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("trainer_id = ?", trainerID).
		First(&trainer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Trainer not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load trainer")
	}

	updates := map[string]interface{}{}
	if body.Name != nil {
		updates["trainer_name"] = *body.Name
	}
	if body.Age != nil {
		updates["trainer_age"] = *body.Age
	}
	if body.Speciality != nil {
		updates["trainer_speciality"] = *body.Speciality
	}
	if len(updates) > 0 {
		if err := ctrl.DB.WithContext(c.Context()).
			Model(&trainer).
			Updates(updates).Error; err != nil {
			log.Println("[ERROR] Failed to update trainer profile:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
		}
	}

	return helper.JsonUpdated(c, "Profile updated successfully", trainerResponse(trainer))
}

// GET /api/trainers/profile
func (ctrl *TrainerController) GetProfile(c *fiber.Ctx) error {
	trainerID := helper.GetUserUUID(c)

	var trainer model.TrainerModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("trainer_id = ?", trainerID).
		First(&trainer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Trainer not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}

	return helper.JsonOK(c, "Profile retrieved successfully", trainerResponse(trainer))
}

// GET /api/trainers/profile/:trainerId (public)
func (ctrl *TrainerController) GetPublicProfile(c *fiber.Ctx) error {
	trainerID, err := helper.ParseUUIDParam(c, "trainerId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid trainer id")
	}

	var trainer model.TrainerModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("trainer_id = ?", trainerID).
		First(&trainer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Trainer not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load trainer")
	}

	resp := dto.TrainerPublicResponse{
		ID:         trainer.TrainerID,
		Name:       trainer.TrainerName,
		Speciality: trainer.TrainerSpeciality,
	}
	return helper.JsonOK(c, "Trainer retrieved successfully", resp)
}
