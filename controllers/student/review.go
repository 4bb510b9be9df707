package student

import (
	"github.com/gofiber/fiber/v2"
	"github.com/locallink/local-link/db"
	"github.com/locallink/local-link/models"
)

type ReviewRequest struct {
	SessionID uint   `json:"session_id" form:"session_id" validate:"required"`
	Rating    int    `json:"rating" form:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" form:"comment"`
}

// CreateReview records a rating for one of the student's completed sessions.
func CreateReview(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	req := new(ReviewRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "A session ID and a rating between 1 and 5 are required",
		})
	}

	var session models.Session
	if db.DB.Where("id = ? AND student_id = ?", req.SessionID, userID).First(&session).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}
	if session.Status != models.SessionCompleted {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only completed sessions can be reviewed",
		})
	}

	review := models.Review{
		SessionID: session.ID,
		StudentID: userID,
		LocalID:   session.LocalID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	exists, err := review.HasExistingReview(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check existing reviews",
		})
	}
	if exists {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "This session has already been reviewed",
		})
	}

	if err := db.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create review",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}
