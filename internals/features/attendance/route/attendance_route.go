package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	attendanceCtrl "gymku_backend/internals/features/attendance/controller"
	authMiddleware "gymku_backend/internals/middlewares/auth"
)

// AttendanceRoutes mounts everything under /api/attendance.
func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attendanceCtrl.NewAttendanceController(db)

	authenticated := authMiddleware.AuthMiddleware(db)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("attendance reports"), constants.RoleAdmin)
	memberOnly := authMiddleware.OnlyRoles(constants.RoleErrorMember("attendance"), constants.RoleMember)

	r.Post("/check-in", authenticated, memberOnly, ctrl.CheckIn)
	r.Post("/check-out", authenticated, memberOnly, ctrl.CheckOut)
	r.Get("/history", authenticated, memberOnly, ctrl.GetMyHistory)

	r.Get("/all", authenticated, adminOnly, ctrl.GetAll)
	r.Get("/stats", authenticated, adminOnly, ctrl.GetStats)
}
