package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "gymku_backend/internals/features/admin/route"
	attendanceRoute "gymku_backend/internals/features/attendance/route"
	equipmentRoute "gymku_backend/internals/features/equipment/route"
	memberRoute "gymku_backend/internals/features/members/route"
	membershipRoute "gymku_backend/internals/features/memberships/route"
	paymentRoute "gymku_backend/internals/features/payments/route"
	sessionRoute "gymku_backend/internals/features/sessions/route"
	trainerRoute "gymku_backend/internals/features/trainers/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Mounting Member routes...")
	memberRoute.MemberRoutes(api.Group("/members"), db)

	log.Println("[INFO] Mounting Trainer routes...")
	trainerRoute.TrainerRoutes(api.Group("/trainers"), db)

	log.Println("[INFO] Mounting Session routes...")
	sessionRoute.SessionRoutes(api.Group("/sessions"), db)

	log.Println("[INFO] Mounting Membership routes...")
	membershipRoute.MembershipRoutes(api.Group("/memberships"), db)

	log.Println("[INFO] Mounting Payment routes...")
	paymentRoute.PaymentRoutes(api.Group("/payments"), db)

	log.Println("[INFO] Mounting Attendance routes...")
	attendanceRoute.AttendanceRoutes(api.Group("/attendance"), db)

	log.Println("[INFO] Mounting Equipment routes...")
	equipmentRoute.EquipmentRoutes(api.Group("/equipment"), db)

	log.Println("[INFO] Mounting Admin routes...")
	adminRoute.AdminRoutes(api.Group("/admin"), db)
}
