package student

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/locallink/local-link/db"
	"github.com/locallink/local-link/models"
)

var validate = validator.New()

// scheduledAtLayouts covers the datetime formats booking forms send.
var scheduledAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

type BookingRequest struct {
	SessionType string `json:"session_type" form:"session_type" validate:"required"`
	Duration    int    `json:"duration" form:"duration" validate:"required,gt=0"`
	ScheduledAt string `json:"scheduled_at" form:"scheduled_at" validate:"required"`
}

func parseScheduledAt(value string) (time.Time, bool) {
	for _, layout := range scheduledAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// verifiedGuide loads a guide only if it exists and is verified. Booking is
// never permitted against an unverified profile.
func verifiedGuide(localID string) (*LocalListing, bool) {
	var local LocalListing
	rows := db.DB.Model(&models.Guide{}).
		Select("local_guides.id, users.full_name, local_guides.city, local_guides.country, local_guides.hourly_rate").
		Joins("JOIN users ON local_guides.user_id = users.id").
		Where("local_guides.id = ? AND local_guides.is_verified = ?", localID, true).
		Scan(&local).RowsAffected
	if rows == 0 {
		return nil, false
	}
	return &local, true
}

// GetBookingInfo returns the guide summary shown on the booking form.
func GetBookingInfo(c *fiber.Ctx) error {
	local, ok := verifiedGuide(c.Params("localId"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Local guide not found",
			"next":  "find-locals",
		})
	}

	return c.JSON(fiber.Map{
		"local": local,
	})
}

// BookSession books a session with a verified guide. The cost comes from
// the flat unit rate, not the guide's own hourly rate.
func BookSession(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	local, ok := verifiedGuide(c.Params("localId"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Local guide not found",
			"next":  "find-locals",
		})
	}

	req := new(BookingRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Session type, a positive duration and a scheduled time are required",
		})
	}

	scheduledAt, ok := parseScheduledAt(req.ScheduledAt)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid scheduled time format",
		})
	}

	session := models.Session{
		StudentID:   userID,
		LocalID:     local.ID,
		SessionType: req.SessionType,
		Duration:    req.Duration,
		TotalCost:   models.SessionCost(req.Duration),
		Status:      models.SessionPending,
		ScheduledAt: scheduledAt,
	}

	if err := db.DB.Create(&session).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to book session",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Session booked successfully!",
		"session": session,
	})
}
