package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	memberModel "gymku_backend/internals/features/members/model"
	"gymku_backend/internals/features/sessions/dto"
	"gymku_backend/internals/features/sessions/model"
	trainerModel "gymku_backend/internals/features/trainers/model"
	helper "gymku_backend/internals/helpers"
	"gymku_backend/internals/mailer"
)

// OpenSpots reports the remaining bookable places, never negative.
func OpenSpots(capacity int, booked int64) int {
	spots := capacity - int(booked)
	if spots < 0 {
		return 0
	}
	return spots
}

// bookingConflict reports the conflict message for a booking attempt,
// empty when the session is bookable.
func bookingConflict(alreadyBooked bool, booked int64, capacity int) string {
	if alreadyBooked {
		return "You have already booked this session"
	}
	if booked >= int64(capacity) {
		return "Session is already full"
	}
	return ""
}

// POST /api/sessions/:sessionId/book
//
// The session row is locked for the duration of the transaction so two
// concurrent bookings for the last spot serialize. The unique
// (member, session) constraint is the final arbiter for double booking.
func (ctrl *SessionController) BookSession(c *fiber.Ctx) error {
	sessionID, err := helper.ParseUUIDParam(c, "sessionId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	memberID := helper.GetUserUUID(c)
	if memberID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
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

	var existing int64
	if err := tx.Model(&model.RegistrationModel{}).
		Where("registration_session_id = ? AND registration_member_id = ?", sessionID, memberID).
		Count(&existing).Error; err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing booking")
	}

	var booked int64
	if err := tx.Model(&model.RegistrationModel{}).
		Where("registration_session_id = ?", sessionID).
		Count(&booked).Error; err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count registrations")
	}

	if msg := bookingConflict(existing > 0, booked, session.SessionCapacity); msg != "" {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusConflict, msg)
	}

	registration := model.RegistrationModel{
		RegistrationMemberID:  memberID,
		RegistrationSessionID: sessionID,
	}
	if err := tx.Create(&registration).Error; err != nil {
		tx.Rollback()
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "You have already booked this session")
		}
		log.Println("[ERROR] Failed to create registration:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to book session")
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to commit booking")
	}

	var trainer trainerModel.TrainerModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("trainer_id = ?", session.SessionTrainerID).
		First(&trainer).Error; err != nil {
		log.Println("[WARN] Booking confirmed but trainer lookup failed:", err)
	}

	// confirmation mail must never block or fail the booking
	var member memberModel.MemberModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("member_id = ?", memberID).
		First(&member).Error; err == nil {
		mailer.SendSessionConfirmation(member.MemberEmail, member.MemberName,
			session.SessionName, session.SessionSchedule, trainer.TrainerName)
	}

	resp := dto.RegistrationResponse{
		ID:             registration.RegistrationID,
		SessionDetails: sessionResponse(session, &trainer),
		BookingDate:    registration.RegistrationCreatedAt,
	}
	return helper.JsonCreated(c, "Session booked successfully", resp)
}

// POST /api/sessions/:sessionId/feedback
func (ctrl *SessionController) AddFeedback(c *fiber.Ctx) error {
	sessionID, err := helper.ParseUUIDParam(c, "sessionId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var body dto.AddFeedbackRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	memberID := helper.GetUserUUID(c)

	var registration model.RegistrationModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("registration_session_id = ? AND registration_member_id = ?", sessionID, memberID).
		First(&registration).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "You are not registered for this session")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load registration")
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&registration).
		Update("registration_feedback", body.Feedback).Error; err != nil {
		log.Println("[ERROR] Failed to save feedback:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save feedback")
	}

	return helper.JsonUpdated(c, "Feedback saved successfully", fiber.Map{
		"registration_id": registration.RegistrationID,
		"feedback":        body.Feedback,
	})
}

// GET /api/sessions/:sessionId/feedback
func (ctrl *SessionController) GetFeedback(c *fiber.Ctx) error {
	sessionID, err := helper.ParseUUIDParam(c, "sessionId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	memberID := helper.GetUserUUID(c)

	var registration model.RegistrationModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("registration_session_id = ? AND registration_member_id = ?", sessionID, memberID).
		First(&registration).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "You are not registered for this session")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load registration")
	}

	if registration.RegistrationFeedback == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No feedback submitted for this session yet")
	}

	return helper.JsonOK(c, "Feedback retrieved successfully", fiber.Map{
		"registration_id": registration.RegistrationID,
		"feedback":        *registration.RegistrationFeedback,
	})
}
