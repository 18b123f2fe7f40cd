package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	equipmentCtrl "gymku_backend/internals/features/equipment/controller"
	authMiddleware "gymku_backend/internals/middlewares/auth"
)

// EquipmentRoutes mounts everything under /api/equipment. The /stats/:id
// wildcard goes after the static /stats/* paths.
func EquipmentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := equipmentCtrl.NewEquipmentController(db)

	authenticated := authMiddleware.AuthMiddleware(db)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("equipment management"), constants.RoleAdmin)
	memberOnly := authMiddleware.OnlyRoles(constants.RoleErrorMember("equipment usage"), constants.RoleMember)

	// =====================
	// Member usage
	// =====================
	r.Post("/usage", authenticated, memberOnly, ctrl.RecordUsage)
	r.Get("/usage/history", authenticated, memberOnly, ctrl.GetMyUsageHistory)

	// =====================
	// Admin management & reporting
	// =====================
	r.Post("/", authenticated, adminOnly, ctrl.CreateEquipment)
	r.Get("/getAll", authenticated, adminOnly, ctrl.GetAllEquipment)
	r.Get("/stats/overview", authenticated, adminOnly, ctrl.GetStatsOverview)
	r.Get("/stats/usage-by-date", authenticated, adminOnly, ctrl.GetUsageByDate)
	r.Get("/stats/:id", authenticated, adminOnly, ctrl.GetStatsByID)
	r.Put("/:id", authenticated, adminOnly, ctrl.UpdateEquipment)
}
