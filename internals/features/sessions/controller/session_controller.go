package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gymku_backend/internals/constants"
	"gymku_backend/internals/features/sessions/dto"
	"gymku_backend/internals/features/sessions/model"
	trainerModel "gymku_backend/internals/features/trainers/model"
	helper "gymku_backend/internals/helpers"
)

/*
	========================================================
	  Controller

========================================================
*/
type SessionController struct {
	DB *gorm.DB
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db}
}

// Unique violation check (SQLSTATE 23505)
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}

func sessionResponse(s model.SessionModel, t *trainerModel.TrainerModel) dto.SessionResponse {
	resp := dto.SessionResponse{
		ID:          s.SessionID,
		Name:        s.SessionName,
		Schedule:    s.SessionSchedule,
		Capacity:    s.SessionCapacity,
		Description: s.SessionDescription,
		Status:      helper.SessionStatus(s.SessionSchedule, time.Now()),
	}
	if t != nil {
		resp.Trainer = &dto.TrainerIdentity{
			ID:         t.TrainerID,
			Name:       t.TrainerName,
			Speciality: t.TrainerSpeciality,
		}
	}
	return resp
}

/*
	========================================================
	  Session lifecycle (trainer-owned)

========================================================
*/

// POST /api/sessions
func (ctrl *SessionController) CreateSession(c *fiber.Ctx) error {
	var body dto.CreateSessionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	schedule, err := body.ParseSchedule()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "schedule must be a valid timestamp")
	}

	trainerID := helper.GetUserUUID(c)
	if trainerID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	session := model.SessionModel{
		SessionName:        body.Name,
		SessionTrainerID:   trainerID,
		SessionSchedule:    schedule,
		SessionCapacity:    body.Capacity,
		SessionDescription: body.Description,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&session).Error; err != nil {
		log.Println("[ERROR] Failed to create session:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create session")
	}

	return helper.JsonCreated(c, "Session created successfully", sessionResponse(session, nil))
}

// PUT /api/sessions/update/:sessionId
func (ctrl *SessionController) UpdateSession(c *fiber.Ctx) error {
	sessionID, err := helper.ParseUUIDParam(c, "sessionId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var body dto.UpdateSessionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var session model.SessionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("session_id = ?", sessionID).
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load session")
	}

	// only the owning trainer (or an admin) may touch a session
	if helper.GetUserRole(c) != constants.RoleAdmin && session.SessionTrainerID != helper.GetUserUUID(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to update this session")
	}

	updates := map[string]interface{}{}
	if body.Name != nil {
		updates["session_name"] = *body.Name
	}
	if body.Schedule != nil {
		parsed, perr := (&dto.CreateSessionRequest{Schedule: *body.Schedule}).ParseSchedule()
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "schedule must be a valid timestamp")
		}
		updates["session_schedule"] = parsed
	}
	if body.Capacity != nil {
		updates["session_capacity"] = *body.Capacity
	}
	if body.Description != nil {
		updates["session_description"] = *body.Description
	}
	if len(updates) == 0 {
		return helper.JsonUpdated(c, "Session updated successfully", sessionResponse(session, nil))
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&session).
		Updates(updates).Error; err != nil {
		log.Println("[ERROR] Failed to update session:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update session")
	}

	return helper.JsonUpdated(c, "Session updated successfully", sessionResponse(session, nil))
}

// DELETE /api/sessions/delete/:sessionId
// Registrations and the session go in one transaction: no orphans either way.
func (ctrl *SessionController) DeleteSession(c *fiber.Ctx) error {
	sessionID, err := helper.ParseUUIDParam(c, "sessionId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	tx := ctrl.DB.WithContext(c.Context()).Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to start transaction")
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	var session model.SessionModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("session_id = ?", sessionID).
		First(&session).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load session")
	}

	if helper.GetUserRole(c) != constants.RoleAdmin && session.SessionTrainerID != helper.GetUserUUID(c) {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to delete this session")
	}

	if err := tx.Where("registration_session_id = ?", sessionID).
		Delete(&model.RegistrationModel{}).Error; err != nil {
		tx.Rollback()
		log.Println("[ERROR] Failed to delete registrations:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete registrations")
	}

	if err := tx.Delete(&session).Error; err != nil {
		tx.Rollback()
		log.Println("[ERROR] Failed to delete session:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete session")
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to commit delete")
	}

	return helper.JsonDeleted(c, "Session and related registrations deleted successfully", fiber.Map{
		"deleted_session_id": sessionID,
	})
}

// GET /api/sessions/my-sessions
func (ctrl *SessionController) GetMySessions(c *fiber.Ctx) error {
	trainerID := helper.GetUserUUID(c)

	var sessions []model.SessionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("session_trainer_id = ?", trainerID).
		Order("session_schedule ASC").
		Find(&sessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load sessions")
	}

	sessionIDs := make([]uuid.UUID, 0, len(sessions))
	for _, s := range sessions {
		sessionIDs = append(sessionIDs, s.SessionID)
	}

	registrants := map[uuid.UUID][]dto.RegisteredMemberResponse{}
	if len(sessionIDs) > 0 {
		rows, err := ctrl.loadRegistrants(c, sessionIDs)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load registrations")
		}
		registrants = rows
	}

	out := make([]dto.TrainerSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		regs := registrants[s.SessionID]
		if regs == nil {
			regs = []dto.RegisteredMemberResponse{}
		}
		out = append(out, dto.TrainerSessionResponse{
			SessionResponse: sessionResponse(s, nil),
			Registrations:   regs,
		})
	}

	return helper.JsonOK(c, "Sessions retrieved successfully", out)
}

type registrantRow struct {
	RegistrationID        uuid.UUID `gorm:"column:registration_id"`
	RegistrationSessionID uuid.UUID `gorm:"column:registration_session_id"`
	RegistrationFeedback  *string   `gorm:"column:registration_feedback"`
	MemberID              uuid.UUID `gorm:"column:member_id"`
	MemberName            string    `gorm:"column:member_name"`
	MemberEmail           string    `gorm:"column:member_email"`
}

func (ctrl *SessionController) loadRegistrants(c *fiber.Ctx, sessionIDs []uuid.UUID) (map[uuid.UUID][]dto.RegisteredMemberResponse, error) {
	var rows []registrantRow
	if err := ctrl.DB.WithContext(c.Context()).
		Table("registrations").
		Select("registrations.registration_id, registrations.registration_session_id, registrations.registration_feedback, members.member_id, members.member_name, members.member_email").
		Joins("JOIN members ON members.member_id = registrations.registration_member_id").
		Where("registrations.registration_session_id IN ?", sessionIDs).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := map[uuid.UUID][]dto.RegisteredMemberResponse{}
	for _, r := range rows {
		out[r.RegistrationSessionID] = append(out[r.RegistrationSessionID], dto.RegisteredMemberResponse{
			RegistrationID: r.RegistrationID,
			MemberID:       r.MemberID,
			MemberName:     r.MemberName,
			MemberEmail:    r.MemberEmail,
			Feedback:       r.RegistrationFeedback,
		})
	}
	return out, nil
}

type availableRow struct {
	SessionID          uuid.UUID `gorm:"column:session_id"`
	SessionName        string    `gorm:"column:session_name"`
	SessionSchedule    time.Time `gorm:"column:session_schedule"`
	SessionCapacity    int       `gorm:"column:session_capacity"`
	SessionDescription string    `gorm:"column:session_description"`
	BookedCount        int64     `gorm:"column:booked_count"`
	TrainerID          uuid.UUID `gorm:"column:trainer_id"`
	TrainerName        string    `gorm:"column:trainer_name"`
	TrainerSpeciality  string    `gorm:"column:trainer_speciality"`
}

// GET /api/sessions/available (public)
func (ctrl *SessionController) GetAvailableSessions(c *fiber.Ctx) error {
	var rows []availableRow
	if err := ctrl.DB.WithContext(c.Context()).
		Table("sessions").
		Select(`sessions.session_id, sessions.session_name, sessions.session_schedule,
			sessions.session_capacity, sessions.session_description,
			COUNT(registrations.registration_id) AS booked_count,
			trainers.trainer_id, trainers.trainer_name, trainers.trainer_speciality`).
		Joins("JOIN trainers ON trainers.trainer_id = sessions.session_trainer_id").
		Joins("LEFT JOIN registrations ON registrations.registration_session_id = sessions.session_id").
		Group("sessions.session_id, trainers.trainer_id").
		Having("COUNT(registrations.registration_id) < sessions.session_capacity").
		Order("sessions.session_schedule ASC").
		Scan(&rows).Error; err != nil {
		log.Println("[ERROR] Failed to load available sessions:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error retrieving available sessions")
	}

	out := make([]dto.AvailableSessionResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AvailableSessionResponse{
			ID:             r.SessionID,
			Name:           r.SessionName,
			Schedule:       r.SessionSchedule,
			Description:    r.SessionDescription,
			AvailableSpots: OpenSpots(r.SessionCapacity, r.BookedCount),
			Trainer: dto.TrainerIdentity{
				ID:         r.TrainerID,
				Name:       r.TrainerName,
				Speciality: r.TrainerSpeciality,
			},
		})
	}

	return helper.JsonOK(c, "Available sessions retrieved successfully", out)
}

// GET /api/sessions/:sessionId (public)
func (ctrl *SessionController) GetSessionByID(c *fiber.Ctx) error {
	sessionID, err := helper.ParseUUIDParam(c, "sessionId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var session model.SessionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("session_id = ?", sessionID).
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load session")
	}

	var trainer trainerModel.TrainerModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("trainer_id = ?", session.SessionTrainerID).
		First(&trainer).Error; err != nil {
		log.Println("[ERROR] Session trainer missing:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load session trainer")
	}

	return helper.JsonOK(c, "Session retrieved successfully", sessionResponse(session, &trainer))
}

// GET /api/sessions/:sessionId/members (owning trainer only)
func (ctrl *SessionController) GetRegisteredMembers(c *fiber.Ctx) error {
	sessionID, err := helper.ParseUUIDParam(c, "sessionId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var session model.SessionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("session_id = ?", sessionID).
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load session")
	}

	if helper.GetUserRole(c) != constants.RoleAdmin && session.SessionTrainerID != helper.GetUserUUID(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to view this session's registrations")
	}

	registrants, err := ctrl.loadRegistrants(c, []uuid.UUID{sessionID})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load registrations")
	}
	regs := registrants[sessionID]
	if regs == nil {
		regs = []dto.RegisteredMemberResponse{}
	}

	return helper.JsonOK(c, "Registered members retrieved successfully", regs)
}
