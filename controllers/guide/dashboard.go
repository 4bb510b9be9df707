package guide

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/locallink/local-link/db"
	"github.com/locallink/local-link/models"
)

// Dashboard returns the guide's stats. Incomplete profiles are sent back to
// profile completion instead.
func Dashboard(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var profile models.Guide
	if db.DB.Where("user_id = ?", userID).First(&profile).RowsAffected == 0 {
		return c.JSON(fiber.Map{
			"next":    "become-local",
			"message": "Please complete your local guide profile to start receiving bookings!",
		})
	}
	if !profile.IsComplete() {
		return c.JSON(fiber.Map{
			"next":    "become-local",
			"message": "Please complete your local guide profile to start receiving bookings!",
			"profile": profile,
		})
	}

	var statistics struct {
		SessionsCount int64     `json:"sessions_count"`
		TotalEarnings float64   `json:"total_earnings"`
		AvgRating     float64   `json:"avg_rating"`
		HoursHelped   int64     `json:"hours_helped"`
		LastUpdated   time.Time `json:"last_updated"`
	}

	db.DB.Model(&models.Session{}).
		Where("local_id = ?", profile.ID).
		Count(&statistics.SessionsCount)

	var earnings struct{ Total float64 }
	db.DB.Model(&models.Session{}).
		Where("local_id = ? AND status = ?", profile.ID, models.SessionCompleted).
		Select("COALESCE(SUM(total_cost * ?), 0) as total", models.GuideEarningsShare).
		Scan(&earnings)
	statistics.TotalEarnings = earnings.Total

	var rating struct{ Avg float64 }
	db.DB.Model(&models.Review{}).
		Where("local_id = ?", profile.ID).
		Select("COALESCE(AVG(rating), 0) as avg").
		Scan(&rating)
	statistics.AvgRating = rating.Avg

	var hours struct{ Total int64 }
	db.DB.Model(&models.Session{}).
		Where("local_id = ? AND status = ?", profile.ID, models.SessionCompleted).
		Select("COALESCE(SUM(duration), 0) as total").
		Scan(&hours)
	statistics.HoursHelped = hours.Total

	statistics.LastUpdated = time.Now()

	return c.JSON(fiber.Map{
		"profile":    profile,
		"statistics": statistics,
	})
}
