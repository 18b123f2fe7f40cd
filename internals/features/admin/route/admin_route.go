package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	adminCtrl "gymku_backend/internals/features/admin/controller"
	"gymku_backend/internals/middlewares"
	authMiddleware "gymku_backend/internals/middlewares/auth"
)

// AdminRoutes mounts everything under /api/admin.
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := adminCtrl.NewAdminController(db)

	authenticated := authMiddleware.AuthMiddleware(db)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("admin area"), constants.RoleAdmin)

	r.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	r.Get("/members", authenticated, adminOnly, ctrl.GetMembers)
	r.Get("/trainers", authenticated, adminOnly, ctrl.GetTrainers)
	r.Get("/dashboard-stats", authenticated, adminOnly, ctrl.GetDashboardStats)
}
