package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "acadex_backend/internals/features/accounts/auth/controller"
)

// AccountsPublicRoutes: registration, login and refresh live outside the
// auth middleware. Login and registration get their own rate limiters.
func AccountsPublicRoutes(r fiber.Router, db *gorm.DB, loginLimiter, registerLimiter fiber.Handler) {
	ctrl := authController.NewAuthController(db)

	r.Post("/student/register", registerLimiter, ctrl.RegisterStudent)
	r.Post("/lecturer/register", registerLimiter, ctrl.RegisterLecturer)
	r.Post("/token", loginLimiter, ctrl.Login)
	r.Post("/token/refresh", ctrl.Refresh)
}

// AccountsProtectedRoutes: operations that need a valid access token.
func AccountsProtectedRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	r.Post("/accounts/logout", ctrl.Logout)
}
