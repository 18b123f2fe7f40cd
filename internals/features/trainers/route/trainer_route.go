package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	sessionCtrl "gymku_backend/internals/features/sessions/controller"
	trainerCtrl "gymku_backend/internals/features/trainers/controller"
	"gymku_backend/internals/middlewares"
	authMiddleware "gymku_backend/internals/middlewares/auth"
)

// TrainerRoutes mounts everything under /api/trainers.
func TrainerRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := trainerCtrl.NewTrainerController(db)
	sessions := sessionCtrl.NewSessionController(db)

	authenticated := authMiddleware.AuthMiddleware(db)
	trainerOnly := authMiddleware.OnlyRoles(constants.RoleErrorTrainer("trainer area"), constants.RoleTrainer)

	// =====================
	// Public auth endpoints
	// =====================
	r.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	r.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	r.Get("/profile/:trainerId", ctrl.GetPublicProfile)

	// =====================
	// Trainer-only area
	// =====================
	r.Put("/availability", authenticated, trainerOnly, ctrl.UpdateAvailability)
	r.Get("/sessions", authenticated, trainerOnly, sessions.GetMySessions)
	r.Put("/edit-profile", authenticated, trainerOnly, ctrl.EditProfile)
	r.Get("/profile", authenticated, trainerOnly, ctrl.GetProfile)
}
