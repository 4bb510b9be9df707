package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/locallink/local-link/controllers"
	"github.com/locallink/local-link/middleware"
)

// SetupAuthRoutes configures registration, login and session routes.
func SetupAuthRoutes(app *fiber.App) {
	app.Get("/login", controllers.LoginInfo)
	app.Post("/login", controllers.Login)
	app.Get("/register", controllers.RegisterInfo)
	app.Post("/register", controllers.Register)
	app.Get("/logout", middleware.Protected(), controllers.Logout)

	app.Get("/dashboard", middleware.Protected(), controllers.GetDashboard)

	auth := app.Group("/auth")
	auth.Get("/me", middleware.Protected(), controllers.GetUserProfile)
	auth.Post("/refresh", controllers.RefreshToken)
}
