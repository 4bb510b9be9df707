package guide

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/locallink/local-link/db"
	"github.com/locallink/local-link/models"
	"github.com/locallink/local-link/utils"
)

var validate = validator.New()

type ProfileRequest struct {
	City       string  `json:"city" form:"city" validate:"required"`
	Country    string  `json:"country" form:"country" validate:"required"`
	University string  `json:"university" form:"university"`
	Employment string  `json:"employment" form:"employment"`
	Bio        string  `json:"bio" form:"bio" validate:"required"`
	HourlyRate float64 `json:"hourly_rate" form:"hourly_rate" validate:"required,gt=0"`
}

// GetProfile returns the guide's own profile for the become-local form.
func GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var profile models.Guide
	if db.DB.Where("user_id = ?", userID).First(&profile).RowsAffected == 0 {
		return c.JSON(fiber.Map{
			"profile":  nil,
			"complete": false,
		})
	}

	return c.JSON(fiber.Map{
		"profile":  profile,
		"complete": profile.IsComplete(),
	})
}

// UpsertProfile creates or updates the guide profile in place. Verification
// fields are never touched here.
func UpsertProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	req := new(ProfileRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "City, country, bio and a positive hourly rate are required",
		})
	}

	var existing models.Guide
	if db.DB.Where("user_id = ?", userID).First(&existing).RowsAffected > 0 {
		err := db.DB.Model(&existing).Updates(map[string]interface{}{
			"city":        req.City,
			"country":     req.Country,
			"university":  req.University,
			"employment":  req.Employment,
			"bio":         req.Bio,
			"hourly_rate": req.HourlyRate,
		}).Error
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update guide profile",
			})
		}
	} else {
		profile := models.Guide{
			UserID:     userID,
			City:       req.City,
			Country:    req.Country,
			University: req.University,
			Employment: req.Employment,
			Bio:        req.Bio,
			HourlyRate: req.HourlyRate,
		}
		if err := db.DB.Create(&profile).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create guide profile",
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Local guide profile created! Please complete verification to start receiving bookings.",
		"next":    "verification",
	})
}

// UpdateProfilePicture uploads a new profile picture to Cloudinary and
// stores the returned URL on the guide profile.
func UpdateProfilePicture(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	file, err := c.FormFile("profile_picture")
	if err != nil || file.Filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please select a profile picture",
		})
	}
	if !utils.AllowedImage(file.Filename) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid file type. Please upload an image (PNG, JPG, JPEG, GIF, BMP)",
		})
	}

	var profile models.Guide
	if db.DB.Where("user_id = ?", userID).First(&profile).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Guide profile not found",
		})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to open profile picture",
		})
	}
	defer f.Close()

	publicID := fmt.Sprintf("guide_%d_%d", userID, time.Now().Unix())
	secureURL, err := utils.UploadToCloudinary(f, publicID, "guide_profiles")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload profile picture",
		})
	}

	if err := db.DB.Model(&profile).Update("profile_picture", secureURL).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile picture",
		})
	}

	return c.JSON(fiber.Map{
		"profile_picture": secureURL,
	})
}
