package controller

import (
	"crypto/subtle"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/configs"
	"gymku_backend/internals/constants"
	attendanceModel "gymku_backend/internals/features/attendance/model"
	memberModel "gymku_backend/internals/features/members/model"
	sessionModel "gymku_backend/internals/features/sessions/model"
	trainerModel "gymku_backend/internals/features/trainers/model"
	helper "gymku_backend/internals/helpers"
)

var validate = validator.New()

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

type adminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /api/admin/login
//
// The admin account is env-configured, there is no admin table.
func (ctrl *AdminController) Login(c *fiber.Ctx) error {
	var body adminLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if configs.AdminEmail == "" || configs.AdminPassword == "" {
		log.Println("[ERROR] ADMIN_EMAIL / ADMIN_PASSWORD not configured")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Admin login is not configured")
	}

	emailOK := subtle.ConstantTimeCompare(
		[]byte(strings.ToLower(strings.TrimSpace(body.Email))),
		[]byte(strings.ToLower(configs.AdminEmail))) == 1
	passOK := subtle.ConstantTimeCompare([]byte(body.Password), []byte(configs.AdminPassword)) == 1
	if !emailOK || !passOK {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := helper.SignAccessToken("admin", constants.RoleAdmin, configs.AdminEmail)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"token": token,
		"role":  constants.RoleAdmin,
	})
}

// GET /api/admin/members
func (ctrl *AdminController) GetMembers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&memberModel.MemberModel{}).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count members")
	}

	var members []memberModel.MemberModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("member_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load members")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pagination.Count = len(members)

	return helper.JsonList(c, "Members retrieved successfully", members, pagination)
}

// GET /api/admin/trainers
func (ctrl *AdminController) GetTrainers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&trainerModel.TrainerModel{}).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count trainers")
	}

	var trainers []trainerModel.TrainerModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("trainer_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&trainers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load trainers")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pagination.Count = len(trainers)

	return helper.JsonList(c, "Trainers retrieved successfully", trainers, pagination)
}

// GET /api/admin/dashboard-stats
func (ctrl *AdminController) GetDashboardStats(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.Context())

	var memberCount, trainerCount, sessionCount int64
	if err := db.Model(&memberModel.MemberModel{}).Count(&memberCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute dashboard stats")
	}
	if err := db.Model(&trainerModel.TrainerModel{}).Count(&trainerCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute dashboard stats")
	}
	if err := db.Model(&sessionModel.SessionModel{}).Count(&sessionCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute dashboard stats")
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var todayAttendance int64
	if err := db.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_in_time >= ? AND attendance_in_time < ?", dayStart, dayStart.AddDate(0, 0, 1)).
		Count(&todayAttendance).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute dashboard stats")
	}

	return helper.JsonOK(c, "Dashboard stats retrieved successfully", fiber.Map{
		"total_members":    memberCount,
		"total_trainers":   trainerCount,
		"total_sessions":   sessionCount,
		"today_attendance": todayAttendance,
	})
}
