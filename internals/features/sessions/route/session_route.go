package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	sessionCtrl "gymku_backend/internals/features/sessions/controller"
	authMiddleware "gymku_backend/internals/middlewares/auth"
)

// SessionRoutes mounts everything under /api/sessions. Static paths are
// registered before the /:sessionId wildcard so they keep matching.
func SessionRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := sessionCtrl.NewSessionController(db)

	authenticated := authMiddleware.AuthMiddleware(db)
	trainerOnly := authMiddleware.OnlyRoles(constants.RoleErrorTrainer("manage sessions"), constants.RoleTrainer, constants.RoleAdmin)
	memberOnly := authMiddleware.OnlyRoles(constants.RoleErrorMember("book sessions"), constants.RoleMember)

	// =====================
	// Public browsing
	// =====================
	r.Get("/available", ctrl.GetAvailableSessions)

	// =====================
	// Trainer-owned lifecycle
	// =====================
	r.Post("/", authenticated, trainerOnly, ctrl.CreateSession)
	r.Put("/update/:sessionId", authenticated, trainerOnly, ctrl.UpdateSession)
	r.Delete("/delete/:sessionId", authenticated, trainerOnly, ctrl.DeleteSession)
	r.Get("/my-sessions", authenticated, trainerOnly, ctrl.GetMySessions)
	r.Get("/:sessionId/members", authenticated, trainerOnly, ctrl.GetRegisteredMembers)

	// =====================
	// Member booking & feedback
	// =====================
	r.Post("/:sessionId/book", authenticated, memberOnly, ctrl.BookSession)
	r.Post("/:sessionId/feedback", authenticated, memberOnly, ctrl.AddFeedback)
	r.Get("/:sessionId/feedback", authenticated, memberOnly, ctrl.GetFeedback)

	// wildcard detail stays last
	r.Get("/:sessionId", ctrl.GetSessionByID)
}
