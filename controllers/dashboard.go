package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/locallink/local-link/controllers/guide"
	"github.com/locallink/local-link/controllers/student"
	"github.com/locallink/local-link/models"
)

// GetDashboard branches to the student or guide dashboard by user type.
func GetDashboard(c *fiber.Ctx) error {
	userType, ok := c.Locals("userType").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User type not found in context",
		})
	}

	if userType == string(models.TypeStudent) {
		return student.Dashboard(c)
	}
	return guide.Dashboard(c)
}
