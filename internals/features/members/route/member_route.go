package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	memberCtrl "gymku_backend/internals/features/members/controller"
	"gymku_backend/internals/middlewares"
	authMiddleware "gymku_backend/internals/middlewares/auth"
)

// MemberRoutes mounts everything under /api/members.
func MemberRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := memberCtrl.NewMemberController(db)

	authenticated := authMiddleware.AuthMiddleware(db)
	memberOnly := authMiddleware.OnlyRoles(constants.RoleErrorMember("member area"), constants.RoleMember)

	// =====================
	// Public auth endpoints
	// =====================
	r.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	r.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	r.Post("/verify-email/send", middlewares.VerificationRateLimiter(), ctrl.SendVerification)
	r.Post("/verify-email/confirm", middlewares.VerificationRateLimiter(), ctrl.ConfirmVerification)

	// =====================
	// Member-only area
	// =====================
	r.Get("/profile", authenticated, memberOnly, ctrl.GetProfile)
	r.Get("/bookings", authenticated, memberOnly, ctrl.GetMyBookings)
}
