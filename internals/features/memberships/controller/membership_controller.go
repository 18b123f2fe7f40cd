package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	memberModel "gymku_backend/internals/features/members/model"
	"gymku_backend/internals/features/memberships/dto"
	"gymku_backend/internals/features/memberships/model"
	paymentModel "gymku_backend/internals/features/payments/model"
	helper "gymku_backend/internals/helpers"
	"gymku_backend/internals/mailer"
)

type MembershipController struct {
	DB *gorm.DB
}

func NewMembershipController(db *gorm.DB) *MembershipController {
	return &MembershipController{DB: db}
}

func planResponse(p model.MembershipModel) dto.PlanResponse {
	features := []string(p.MembershipFeatures)
	if features == nil {
		features = []string{}
	}
	return dto.PlanResponse{
		ID:             p.MembershipID,
		PlanName:       p.MembershipPlanName,
		DurationMonths: p.MembershipDurationMonths,
		Cost:           p.MembershipCost,
		Features:       features,
	}
}

/*
	========================================================
	  Plan catalogue (admin writes, public reads)

========================================================
*/

// POST /api/memberships/plans
func (ctrl *MembershipController) CreatePlan(c *fiber.Ctx) error {
	var body dto.CreatePlanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	plan := model.MembershipModel{
		MembershipPlanName:       body.PlanName,
		MembershipDurationMonths: body.DurationMonths,
		MembershipCost:           body.Cost,
		MembershipFeatures:       pq.StringArray(body.Features),
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&plan).Error; err != nil {
		log.Println("[ERROR] Failed to create plan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create plan")
	}

	return helper.JsonCreated(c, "Plan created successfully", planResponse(plan))
}

// PUT /api/memberships/plans/:planId
func (ctrl *MembershipController) UpdatePlan(c *fiber.Ctx) error {
	planID, err := helper.ParseUUIDParam(c, "planId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid plan id")
	}

	var body dto.UpdatePlanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var plan model.MembershipModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("membership_id = ?", planID).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Plan not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load plan")
	}

	updates := map[string]interface{}{}
	if body.PlanName != nil {
		updates["membership_plan_name"] = *body.PlanName
	}
	if body.DurationMonths != nil {
		updates["membership_duration_months"] = *body.DurationMonths
	}
	if body.Cost != nil {
		updates["membership_cost"] = *body.Cost
	}
	if body.Features != nil {
		updates["membership_features"] = pq.StringArray(*body.Features)
	}
	if len(updates) > 0 {
		if err := ctrl.DB.WithContext(c.Context()).
			Model(&plan).
			Updates(updates).Error; err != nil {
			log.Println("[ERROR] Failed to update plan:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update plan")
		}
	}

	return helper.JsonUpdated(c, "Plan updated successfully", planResponse(plan))
}

// DELETE /api/memberships/plans/:planId
func (ctrl *MembershipController) DeletePlan(c *fiber.Ctx) error {
	planID, err := helper.ParseUUIDParam(c, "planId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid plan id")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("membership_id = ?", planID).
		Delete(&model.MembershipModel{})
	if res.Error != nil {
		log.Println("[ERROR] Failed to delete plan:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete plan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Plan not found")
	}

	return helper.JsonDeleted(c, "Plan deleted successfully", fiber.Map{"deleted_plan_id": planID})
}

// GET /api/memberships/plans (public)
func (ctrl *MembershipController) GetPlans(c *fiber.Ctx) error {
	var plans []model.MembershipModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("membership_cost ASC").
		Find(&plans).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load plans")
	}

	out := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, planResponse(p))
	}
	return helper.JsonOK(c, "Plans retrieved successfully", out)
}

type planWithMembersRow struct {
	MembershipID             uuid.UUID `gorm:"column:membership_id" json:"id"`
	MembershipPlanName       string    `gorm:"column:membership_plan_name" json:"plan_name"`
	MembershipDurationMonths int       `gorm:"column:membership_duration_months" json:"duration_months"`
	MembershipCost           int       `gorm:"column:membership_cost" json:"cost"`
	MemberCount              int64     `gorm:"column:member_count" json:"member_count"`
}

// GET /api/memberships/plans/all (admin)
func (ctrl *MembershipController) GetPlansWithMemberCounts(c *fiber.Ctx) error {
	var rows []planWithMembersRow
	if err := ctrl.DB.WithContext(c.Context()).
		Table("memberships").
		Select(`memberships.membership_id, memberships.membership_plan_name,
			memberships.membership_duration_months, memberships.membership_cost,
			COUNT(members.member_id) AS member_count`).
		Joins("LEFT JOIN members ON members.member_membership_id = memberships.membership_id").
		Group("memberships.membership_id").
		Order("memberships.membership_cost ASC").
		Scan(&rows).Error; err != nil {
		log.Println("[ERROR] Failed to load plans with member counts:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load plans")
	}

	return helper.JsonOK(c, "Plans retrieved successfully", rows)
}

/*
	========================================================
	  Purchase flow (member)

========================================================
*/

// POST /api/memberships/purchase/:planId
//
// Payment row and the member's plan columns move together in one
// transaction. The member row is locked so a double-submit cannot write
// two payments against the same plan switch.
func (ctrl *MembershipController) PurchasePlan(c *fiber.Ctx) error {
	planID, err := helper.ParseUUIDParam(c, "planId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid plan id")
	}

	var body dto.PurchaseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
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

	var plan model.MembershipModel
	if err := tx.Where("membership_id = ?", planID).First(&plan).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Plan not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load plan")
	}

	var member memberModel.MemberModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("member_id = ?", memberID).
		First(&member).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load member")
	}

	start := time.Now()
	end := start.AddDate(0, plan.MembershipDurationMonths, 0)

	payment := paymentModel.PaymentModel{
		PaymentMemberID:     memberID,
		PaymentMembershipID: plan.MembershipID,
		PaymentAmount:       plan.MembershipCost,
		PaymentMode:         body.PaymentMode,
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		log.Println("[ERROR] Failed to record payment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record payment")
	}

	if err := tx.Model(&member).Updates(map[string]interface{}{
		"member_membership_id":   plan.MembershipID,
		"member_plan_start_date": start,
		"member_plan_end_date":   end,
	}).Error; err != nil {
		tx.Rollback()
		log.Println("[ERROR] Failed to activate plan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to activate plan")
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to commit purchase")
	}

	mailer.SendExpiryReminder(member.MemberEmail, member.MemberName, end)

	return helper.JsonCreated(c, "Membership purchased successfully", fiber.Map{
		"payment_id": payment.PaymentID,
		"plan":       planResponse(plan),
		"start_date": start,
		"end_date":   end,
	})
}

// GET /api/memberships/my-membership
func (ctrl *MembershipController) GetMyMembership(c *fiber.Ctx) error {
	memberID := helper.GetUserUUID(c)

	var member memberModel.MemberModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("member_id = ?", memberID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load member")
	}

	if member.MemberMembershipID == nil || member.MemberPlanEndDate == nil || member.MemberPlanStartDate == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No active membership")
	}

	var plan model.MembershipModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("membership_id = ?", *member.MemberMembershipID).
		First(&plan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load plan")
	}

	now := time.Now()
	days := int(member.MemberPlanEndDate.Sub(now).Hours() / 24)
	if days < 0 {
		days = 0
	}

	resp := dto.MyMembershipResponse{
		Plan:          planResponse(plan),
		StartDate:     *member.MemberPlanStartDate,
		EndDate:       *member.MemberPlanEndDate,
		DaysRemaining: days,
		Active:        member.MemberPlanEndDate.After(now),
	}
	return helper.JsonOK(c, "Membership retrieved successfully", resp)
}

// GET /api/memberships/purchase-history
func (ctrl *MembershipController) GetPurchaseHistory(c *fiber.Ctx) error {
	memberID := helper.GetUserUUID(c)

	var rows []dto.PurchaseHistoryItem
	if err := ctrl.DB.WithContext(c.Context()).
		Table("payments").
		Select(`payments.payment_id, memberships.membership_plan_name AS plan_name,
			payments.payment_amount AS amount, payments.payment_mode, payments.payment_date`).
		Joins("JOIN memberships ON memberships.membership_id = payments.payment_membership_id").
		Where("payments.payment_member_id = ?", memberID).
		Order("payments.payment_date DESC").
		Scan(&rows).Error; err != nil {
		log.Println("[ERROR] Failed to load purchase history:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load purchase history")
	}

	return helper.JsonOK(c, "Purchase history retrieved successfully", rows)
}
