package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	"gymku_backend/internals/features/members/dto"
	"gymku_backend/internals/features/members/model"
	"gymku_backend/internals/features/members/service"
	membershipModel "gymku_backend/internals/features/memberships/model"
	helper "gymku_backend/internals/helpers"
	"gymku_backend/internals/mailer"
)

type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}

func memberResponse(m model.MemberModel) dto.MemberResponse {
	return dto.MemberResponse{
		ID:    m.MemberID,
		Name:  m.MemberName,
		Email: m.MemberEmail,
		Age:   m.MemberAge,
	}
}

// POST /api/members/register
func (ctrl *MemberController) Register(c *fiber.Ctx) error {
	var body dto.RegisterMemberRequest
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

	member := model.MemberModel{
		MemberName:     body.Name,
		MemberEmail:    strings.ToLower(strings.TrimSpace(body.Email)),
		MemberPassword: string(hashed),
		MemberAge:      body.Age,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&member).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
		}
		log.Println("[ERROR] Failed to register member:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register member")
	}

	mailer.SendWelcomeEmail(member.MemberEmail, member.MemberName)

	token, err := helper.SignAccessToken(member.MemberID.String(), constants.RoleMember, member.MemberEmail)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonCreated(c, "Member registered successfully", fiber.Map{
		"token":  token,
		"member": memberResponse(member),
	})
}

// POST /api/members/login
func (ctrl *MemberController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var member model.MemberModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("member_email = ?", strings.ToLower(strings.TrimSpace(body.Email))).
		First(&member).Error; err != nil {
		// same message for unknown email and bad password
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(member.MemberPassword), []byte(body.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := helper.SignAccessToken(member.MemberID.String(), constants.RoleMember, member.MemberEmail)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"token":  token,
		"member": memberResponse(member),
	})
}

// POST /api/members/verify-email/send
func (ctrl *MemberController) SendVerification(c *fiber.Ctx) error {
	var body dto.SendVerificationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	code, err := service.IssueVerificationCode(c.Context(), body.Email)
	if err != nil {
		log.Println("[ERROR] Failed to issue verification code:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to send verification code")
	}

	mailer.SendVerificationCode(strings.ToLower(strings.TrimSpace(body.Email)), code)

	return helper.JsonOK(c, "Verification code sent", fiber.Map{
		"email": strings.ToLower(strings.TrimSpace(body.Email)),
	})
}

// POST /api/members/verify-email/confirm
func (ctrl *MemberController) ConfirmVerification(c *fiber.Ctx) error {
	var body dto.ConfirmVerificationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	ok, err := service.VerifyCode(c.Context(), body.Email, body.Code)
	if err != nil {
		log.Println("[ERROR] Failed to verify code:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify code")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid or expired verification code")
	}

	return helper.JsonOK(c, "Email verified successfully", fiber.Map{"verified": true})
}

// GET /api/members/profile
func (ctrl *MemberController) GetProfile(c *fiber.Ctx) error {
	memberID := helper.GetUserUUID(c)

	var member model.MemberModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("member_id = ?", memberID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}

	resp := fiber.Map{
		"member":     memberResponse(member),
		"membership": nil,
	}

	if member.MemberMembershipID != nil {
		var plan membershipModel.MembershipModel
		if err := ctrl.DB.WithContext(c.Context()).
			Where("membership_id = ?", *member.MemberMembershipID).
			First(&plan).Error; err == nil {
			resp["membership"] = fiber.Map{
				"plan_name":  plan.MembershipPlanName,
				"start_date": member.MemberPlanStartDate,
				"end_date":   member.MemberPlanEndDate,
			}
		}
	}

	return helper.JsonOK(c, "Profile retrieved successfully", resp)
}

type memberBookingRow struct {
	RegistrationID        string    `gorm:"column:registration_id"`
	RegistrationFeedback  *string   `gorm:"column:registration_feedback"`
	RegistrationCreatedAt time.Time `gorm:"column:registration_created_at"`
	SessionID             string    `gorm:"column:session_id"`
	SessionName           string    `gorm:"column:session_name"`
	SessionSchedule       time.Time `gorm:"column:session_schedule"`
	SessionDescription    string    `gorm:"column:session_description"`
	TrainerName           string    `gorm:"column:trainer_name"`
	TrainerSpeciality     string    `gorm:"column:trainer_speciality"`
}

// GET /api/members/bookings
func (ctrl *MemberController) GetMyBookings(c *fiber.Ctx) error {
	memberID := helper.GetUserUUID(c)

	var rows []memberBookingRow
	if err := ctrl.DB.WithContext(c.Context()).
		Table("registrations").
		Select(`registrations.registration_id, registrations.registration_feedback,
			registrations.registration_created_at,
			sessions.session_id, sessions.session_name, sessions.session_schedule,
			sessions.session_description,
			trainers.trainer_name, trainers.trainer_speciality`).
		Joins("JOIN sessions ON sessions.session_id = registrations.registration_session_id").
		Joins("JOIN trainers ON trainers.trainer_id = sessions.session_trainer_id").
		Where("registrations.registration_member_id = ?", memberID).
		Order("sessions.session_schedule ASC").
		Scan(&rows).Error; err != nil {
		log.Println("[ERROR] Failed to load bookings:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load bookings")
	}

	now := time.Now()
	out := make([]fiber.Map, 0, len(rows))
	for _, r := range rows {
		out = append(out, fiber.Map{
			"registration_id": r.RegistrationID,
			"booking_date":    r.RegistrationCreatedAt,
			"feedback":        r.RegistrationFeedback,
			"session": fiber.Map{
				"id":          r.SessionID,
				"name":        r.SessionName,
				"schedule":    r.SessionSchedule,
				"description": r.SessionDescription,
				"status":      helper.SessionStatus(r.SessionSchedule, now),
				"trainer": fiber.Map{
					"name":       r.TrainerName,
					"speciality": r.TrainerSpeciality,
				},
			},
		})
	}

	return helper.JsonOK(c, "Bookings retrieved successfully", out)
}
