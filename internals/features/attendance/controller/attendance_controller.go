package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymku_backend/internals/features/attendance/model"
	helper "gymku_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// dayBounds returns [start, end) of the calendar day containing t.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// POST /api/attendance/check-in
func (ctrl *AttendanceController) CheckIn(c *fiber.Ctx) error {
	memberID := helper.GetUserUUID(c)
	if memberID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	start, end := dayBounds(time.Now())

	var open int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.AttendanceModel{}).
		Where("attendance_member_id = ? AND attendance_out_time IS NULL AND attendance_in_time >= ? AND attendance_in_time < ?",
			memberID, start, end).
		Count(&open).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check attendance")
	}
	if open > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "You are already checked in today")
	}

	attendance := model.AttendanceModel{AttendanceMemberID: memberID}
	if err := ctrl.DB.WithContext(c.Context()).Create(&attendance).Error; err != nil {
		log.Println("[ERROR] Failed to check in:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check in")
	}

	return helper.JsonCreated(c, "Checked in successfully", attendance)
}

// POST /api/attendance/check-out
func (ctrl *AttendanceController) CheckOut(c *fiber.Ctx) error {
	memberID := helper.GetUserUUID(c)

	var attendance model.AttendanceModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("attendance_member_id = ? AND attendance_out_time IS NULL", memberID).
		Order("attendance_in_time DESC").
		First(&attendance).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No open check-in found")
	}

	now := time.Now()
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&attendance).
		Update("attendance_out_time", now).Error; err != nil {
		log.Println("[ERROR] Failed to check out:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check out")
	}
	attendance.AttendanceOutTime = &now

	return helper.JsonUpdated(c, "Checked out successfully", attendance)
}

// GET /api/attendance/history?from=YYYY-MM-DD&to=YYYY-MM-DD
func (ctrl *AttendanceController) GetMyHistory(c *fiber.Ctx) error {
	memberID := helper.GetUserUUID(c)

	q := ctrl.DB.WithContext(c.Context()).
		Where("attendance_member_id = ?", memberID)

	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "from must be YYYY-MM-DD")
		}
		q = q.Where("attendance_date >= ?", t)
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "to must be YYYY-MM-DD")
		}
		q = q.Where("attendance_date < ?", t.AddDate(0, 0, 1))
	}

	var rows []model.AttendanceModel
	if err := q.Order("attendance_in_time DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attendance history")
	}

	return helper.JsonOK(c, "Attendance history retrieved successfully", rows)
}

type attendanceAdminRow struct {
	AttendanceID      uuid.UUID  `gorm:"column:attendance_id" json:"attendance_id"`
	MemberID          uuid.UUID  `gorm:"column:member_id" json:"member_id"`
	MemberName        string     `gorm:"column:member_name" json:"member_name"`
	AttendanceInTime  time.Time  `gorm:"column:attendance_in_time" json:"in_time"`
	AttendanceOutTime *time.Time `gorm:"column:attendance_out_time" json:"out_time,omitempty"`
}

// GET /api/attendance/all?date=YYYY-MM-DD (admin)
func (ctrl *AttendanceController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).
		Table("attendances").
		Select(`attendances.attendance_id, members.member_id, members.member_name,
			attendances.attendance_in_time, attendances.attendance_out_time`).
		Joins("JOIN members ON members.member_id = attendances.attendance_member_id")

	if date := c.Query("date"); date != "" {
		t, err := time.Parse("2006-01-02", date)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		start, end := dayBounds(t)
		q = q.Where("attendances.attendance_in_time >= ? AND attendances.attendance_in_time < ?", start, end)
	}

	var rows []attendanceAdminRow
	if err := q.Order("attendances.attendance_in_time DESC").Scan(&rows).Error; err != nil {
		log.Println("[ERROR] Failed to load attendances:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attendances")
	}

	return helper.JsonOK(c, "Attendances retrieved successfully", rows)
}

type memberVisitCount struct {
	MemberID   uuid.UUID `gorm:"column:member_id" json:"member_id"`
	MemberName string    `gorm:"column:member_name" json:"member_name"`
	Visits     int64     `gorm:"column:visits" json:"visits"`
}

type dailyVisitCount struct {
	Day    time.Time `gorm:"column:day" json:"day"`
	Visits int64     `gorm:"column:visits" json:"visits"`
}

// GET /api/attendance/stats (admin)
func (ctrl *AttendanceController) GetStats(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.Context())

	var totalVisits int64
	if err := db.Model(&model.AttendanceModel{}).Count(&totalVisits).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}

	var perMember []memberVisitCount
	if err := db.Table("attendances").
		Select("members.member_id, members.member_name, COUNT(*) AS visits").
		Joins("JOIN members ON members.member_id = attendances.attendance_member_id").
		Group("members.member_id, members.member_name").
		Order("visits DESC").
		Scan(&perMember).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}

	topN := 5
	if topN > len(perMember) {
		topN = len(perMember)
	}

	// last 30 days of traffic
	var daily []dailyVisitCount
	if err := db.Table("attendances").
		Select("date_trunc('day', attendance_in_time) AS day, COUNT(*) AS visits").
		Where("attendance_in_time >= ?", time.Now().AddDate(0, 0, -30)).
		Group("day").
		Order("day ASC").
		Scan(&daily).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}

	return helper.JsonOK(c, "Attendance stats retrieved successfully", fiber.Map{
		"total_visits": totalVisits,
		"per_member":   perMember,
		"top_members":  perMember[:topN],
		"daily_trend":  daily,
	})
}
