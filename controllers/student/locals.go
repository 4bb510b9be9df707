package student

import (
	"github.com/gofiber/fiber/v2"
	"github.com/locallink/local-link/db"
	"github.com/locallink/local-link/models"
)

// LocalListing is the public browse row for a guide.
type LocalListing struct {
	ID                 uint    `json:"id"`
	FullName           string  `json:"full_name"`
	City               string  `json:"city"`
	Country            string  `json:"country"`
	Bio                string  `json:"bio"`
	HourlyRate         float64 `json:"hourly_rate"`
	IsVerified         bool    `json:"is_verified"`
	VerificationStatus string  `json:"verification_status"`
	ProfilePicture     string  `json:"profile_picture"`
	AvgRating          float64 `json:"avg_rating"`
}

// FindLocals lists guides with completed profiles, verified first.
// Placeholder profiles never appear here.
func FindLocals(c *fiber.Ctx) error {
	var listings []LocalListing

	err := db.DB.Model(&models.Guide{}).
		Select(`local_guides.id, users.full_name, local_guides.city, local_guides.country,
			local_guides.bio, local_guides.hourly_rate, local_guides.is_verified,
			local_guides.verification_status, local_guides.profile_picture,
			COALESCE((SELECT AVG(rating) FROM reviews WHERE reviews.local_id = local_guides.id AND reviews.deleted_at IS NULL), 0) as avg_rating`).
		Joins("JOIN users ON local_guides.user_id = users.id").
		Where("local_guides.city != ? AND local_guides.country != ?", models.PlaceholderLocation, models.PlaceholderLocation).
		Order("local_guides.is_verified DESC, local_guides.created_at DESC").
		Scan(&listings).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch local guides",
		})
	}

	return c.JSON(fiber.Map{
		"locals": listings,
		"count":  len(listings),
	})
}
