package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/locallink/local-link/controllers/guide"
	"github.com/locallink/local-link/middleware"
	"github.com/locallink/local-link/models"
)

// SetupGuideRoutes configures profile completion and verification routes.
func SetupGuideRoutes(app *fiber.App) {
	localOnly := middleware.RequireType(string(models.TypeLocal))

	app.Get("/become-local", middleware.Protected(), localOnly, guide.GetProfile)
	app.Post("/become-local", middleware.Protected(), localOnly, guide.UpsertProfile)

	app.Get("/verification", middleware.Protected(), localOnly, guide.GetVerificationStatus)
	app.Post("/upload-identity", middleware.Protected(), localOnly, guide.UploadIdentity)
	app.Post("/upload-academic", middleware.Protected(), localOnly, guide.UploadAcademic)
	app.Post("/upload-residence", middleware.Protected(), localOnly, guide.UploadResidence)
	app.Post("/upload-video", middleware.Protected(), localOnly, guide.UploadVideo)
	app.Post("/guide/profile-picture", middleware.Protected(), localOnly, guide.UpdateProfilePicture)
}
