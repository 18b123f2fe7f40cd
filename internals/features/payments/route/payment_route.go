package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	paymentCtrl "gymku_backend/internals/features/payments/controller"
	authMiddleware "gymku_backend/internals/middlewares/auth"
)

// PaymentRoutes mounts everything under /api/payments.
func PaymentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := paymentCtrl.NewPaymentController(db)

	authenticated := authMiddleware.AuthMiddleware(db)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("payment reports"), constants.RoleAdmin)
	memberOnly := authMiddleware.OnlyRoles(constants.RoleErrorMember("payment history"), constants.RoleMember)

	r.Get("/history", authenticated, memberOnly, ctrl.GetMyHistory)
	r.Get("/all", authenticated, adminOnly, ctrl.GetAllPayments)
	r.Get("/revenue-and-active-memberships", authenticated, adminOnly, ctrl.GetRevenueAndActiveMemberships)
}
