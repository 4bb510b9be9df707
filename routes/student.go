package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/locallink/local-link/controllers/student"
	"github.com/locallink/local-link/middleware"
	"github.com/locallink/local-link/models"
)

// SetupStudentRoutes configures guide browsing, booking and review routes.
func SetupStudentRoutes(app *fiber.App) {
	studentOnly := middleware.RequireType(string(models.TypeStudent))

	app.Get("/find-locals", middleware.Protected(), studentOnly, student.FindLocals)
	app.Get("/book-session/:localId", middleware.Protected(), studentOnly, student.GetBookingInfo)
	app.Post("/book-session/:localId", middleware.Protected(), studentOnly, student.BookSession)
	app.Post("/reviews", middleware.Protected(), studentOnly, student.CreateReview)
}
