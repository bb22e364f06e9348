package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acadex_backend/internals/middlewares"
	authMiddleware "acadex_backend/internals/middlewares/auth"
	details "acadex_backend/internals/route/details"
)

// SetupRoutes mounts the public auth surface and the protected /api group.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	SetupBaseRoutes(app, db)

	public := app.Group("/api/accounts")
	details.AccountsPublicRoutes(public, db, middlewares.LoginRateLimiter(), middlewares.RegisterRateLimiter())

	api := app.Group("/api", authMiddleware.AuthMiddleware(db))
	details.AccountsProtectedRoutes(api, db)
	details.CoursesRoutes(api, db)
	details.QuizzesRoutes(api, db)
}
