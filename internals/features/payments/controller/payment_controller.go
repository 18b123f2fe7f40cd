package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymku_backend/internals/features/payments/model"
	helper "gymku_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

type paymentRow struct {
	PaymentID   uuid.UUID `gorm:"column:payment_id" json:"payment_id"`
	MemberName  string    `gorm:"column:member_name" json:"member_name"`
	MemberEmail string    `gorm:"column:member_email" json:"member_email"`
	PlanName    string    `gorm:"column:plan_name" json:"plan_name"`
	Amount      int       `gorm:"column:payment_amount" json:"amount"`
	PaymentMode string    `gorm:"column:payment_mode" json:"payment_mode"`
	PaymentDate time.Time `gorm:"column:payment_date" json:"payment_date"`
}

// GET /api/payments/history (member)
func (ctrl *PaymentController) GetMyHistory(c *fiber.Ctx) error {
	memberID := helper.GetUserUUID(c)

	var payments []model.PaymentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("payment_member_id = ?", memberID).
		Order("payment_date DESC").
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load payment history")
	}

	return helper.JsonOK(c, "Payment history retrieved successfully", payments)
}

// GET /api/payments/all (admin, paginated)
func (ctrl *PaymentController) GetAllPayments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.PaymentModel{}).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count payments")
	}

	var rows []paymentRow
	if err := ctrl.DB.WithContext(c.Context()).
		Table("payments").
		Select(`payments.payment_id, members.member_name, members.member_email,
			memberships.membership_plan_name AS plan_name,
			payments.payment_amount, payments.payment_mode, payments.payment_date`).
		Joins("JOIN members ON members.member_id = payments.payment_member_id").
		Joins("JOIN memberships ON memberships.membership_id = payments.payment_membership_id").
		Order("payments.payment_date DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		log.Println("[ERROR] Failed to load payments:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load payments")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pagination.Count = len(rows)

	return helper.JsonList(c, "Payments retrieved successfully", rows, pagination)
}

// GET /api/payments/revenue-and-active-memberships (admin)
func (ctrl *PaymentController) GetRevenueAndActiveMemberships(c *fiber.Ctx) error {
	var totalRevenue int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.PaymentModel{}).
		Select("COALESCE(SUM(payment_amount), 0)").
		Scan(&totalRevenue).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute revenue")
	}

	var activeMemberships int64
	if err := ctrl.DB.WithContext(c.Context()).
		Table("members").
		Where("member_membership_id IS NOT NULL AND member_plan_end_date > ?", time.Now()).
		Count(&activeMemberships).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count active memberships")
	}

	return helper.JsonOK(c, "Revenue stats retrieved successfully", fiber.Map{
		"total_revenue":      totalRevenue,
		"active_memberships": activeMemberships,
	})
}
