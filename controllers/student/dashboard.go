package student

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/locallink/local-link/db"
	"github.com/locallink/local-link/models"
)

// Dashboard returns the student's activity stats.
func Dashboard(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var statistics struct {
		SessionsCount int64     `json:"sessions_count"`
		TotalSpent    float64   `json:"total_spent"`
		ReviewsCount  int64     `json:"reviews_count"`
		HoursLearning int64     `json:"hours_learning"`
		LastUpdated   time.Time `json:"last_updated"`
	}

	db.DB.Model(&models.Session{}).
		Where("student_id = ?", userID).
		Count(&statistics.SessionsCount)

	var spent struct{ Total float64 }
	db.DB.Model(&models.Session{}).
		Where("student_id = ? AND status = ?", userID, models.SessionCompleted).
		Select("COALESCE(SUM(total_cost), 0) as total").
		Scan(&spent)
	statistics.TotalSpent = spent.Total

	db.DB.Model(&models.Review{}).
		Where("student_id = ?", userID).
		Count(&statistics.ReviewsCount)

	var hours struct{ Total int64 }
	db.DB.Model(&models.Session{}).
		Where("student_id = ? AND status = ?", userID, models.SessionCompleted).
		Select("COALESCE(SUM(duration), 0) as total").
		Scan(&hours)
	statistics.HoursLearning = hours.Total

	statistics.LastUpdated = time.Now()

	return c.JSON(fiber.Map{
		"statistics": statistics,
	})
}
