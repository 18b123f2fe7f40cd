package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	membershipCtrl "gymku_backend/internals/features/memberships/controller"
	authMiddleware "gymku_backend/internals/middlewares/auth"
)

// MembershipRoutes mounts everything under /api/memberships.
func MembershipRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := membershipCtrl.NewMembershipController(db)

	authenticated := authMiddleware.AuthMiddleware(db)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("plan management"), constants.RoleAdmin)
	memberOnly := authMiddleware.OnlyRoles(constants.RoleErrorMember("membership purchase"), constants.RoleMember)

	// public catalogue
	r.Get("/plans", ctrl.GetPlans)

	// admin catalogue management
	r.Get("/plans/all", authenticated, adminOnly, ctrl.GetPlansWithMemberCounts)
	r.Post("/plans", authenticated, adminOnly, ctrl.CreatePlan)
	r.Put("/plans/:planId", authenticated, adminOnly, ctrl.UpdatePlan)
	r.Delete("/plans/:planId", authenticated, adminOnly, ctrl.DeletePlan)

	// member purchase flow
	r.Post("/purchase/:planId", authenticated, memberOnly, ctrl.PurchasePlan)
	r.Get("/my-membership", authenticated, memberOnly, ctrl.GetMyMembership)
	r.Get("/purchase-history", authenticated, memberOnly, ctrl.GetPurchaseHistory)
}
