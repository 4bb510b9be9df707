package guide

import (
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/locallink/local-link/db"
	"github.com/locallink/local-link/idanalyzer"
	"github.com/locallink/local-link/models"
	"github.com/locallink/local-link/utils"
)

// GetVerificationStatus returns the guide's current verification state.
func GetVerificationStatus(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var profile models.Guide
	if db.DB.Where("user_id = ?", userID).First(&profile).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Guide profile not found",
			"next":  "become-local",
		})
	}

	return c.JSON(fiber.Map{
		"verification_status": profile.VerificationStatus,
		"is_verified":         profile.IsVerified,
	})
}

// VerifyIdentityDocument saves an uploaded ID document, runs it through the
// scan gateway, removes the temp file on every path and records the outcome.
// Anything but an automatic approval leaves the profile pending.
func VerifyIdentityDocument(c *fiber.Ctx, document *multipart.FileHeader, kind string, userID uint) idanalyzer.Result {
	path, err := utils.SaveTemp(c, document, kind, userID)
	if err != nil {
		log.Printf("Failed to save %s document for user %d: %v", kind, userID, err)
		return idanalyzer.Result{Success: false, Decision: "error", Error: "Failed to save uploaded document"}
	}
	defer utils.RemoveTemp(path)

	result := idanalyzer.NewClientFromEnv().VerifyFile(path)

	if result.Approved() {
		err = db.DB.Model(&models.Guide{}).Where("user_id = ?", userID).
			Updates(map[string]interface{}{
				"verification_status": models.VerificationApproved,
				"is_verified":         true,
			}).Error
	} else {
		err = db.DB.Model(&models.Guide{}).Where("user_id = ?", userID).
			Update("verification_status", models.VerificationPending).Error
	}
	if err != nil {
		log.Printf("Failed to record verification result for user %d: %v", userID, err)
	}

	return result
}

// UploadIdentity handles identity document upload and automated verification.
func UploadIdentity(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	document, err := c.FormFile("identity_document")
	if err != nil || document.Filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please select an identity document",
		})
	}
	if !utils.AllowedDocument(document.Filename) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid file type. Please upload images (PNG, JPG, JPEG, GIF, BMP) or PDF",
		})
	}

	result := VerifyIdentityDocument(c, document, "identity", userID)

	if result.Approved() {
		return c.JSON(fiber.Map{
			"message":             "Identity verification successful! Your account has been approved.",
			"verification_status": models.VerificationApproved,
		})
	}
	if result.Success {
		return c.JSON(fiber.Map{
			"message":             "Document uploaded successfully. Manual review in progress.",
			"verification_status": models.VerificationPending,
		})
	}
	return c.JSON(fiber.Map{
		"message":             "Verification could not be completed: " + result.Error + ". Manual review in progress.",
		"verification_status": models.VerificationPending,
	})
}

// uploadForManualReview covers the document kinds that skip the scan
// gateway: the file is validated, saved, deleted, and the profile stays
// pending until someone reviews it.
func uploadForManualReview(c *fiber.Ctx, field, kind, label string) error {
	userID := c.Locals("userID").(uint)

	document, err := c.FormFile(field)
	if err != nil || document.Filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please select " + label,
		})
	}

	allowed := utils.AllowedDocument(document.Filename)
	errMessage := "Invalid file type. Please upload images (PNG, JPG, JPEG, GIF, BMP) or PDF"
	if kind == "video" {
		allowed = utils.AllowedVideo(document.Filename)
		errMessage = "Invalid file type. Please upload a video file (MP4, AVI, MOV, WMV, FLV, WEBM)"
	}
	if !allowed {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": errMessage,
		})
	}

	path, err := utils.SaveTemp(c, document, kind, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save uploaded file",
		})
	}
	defer utils.RemoveTemp(path)

	if err := db.DB.Model(&models.Guide{}).Where("user_id = ?", userID).
		Update("verification_status", models.VerificationPending).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update verification status",
		})
	}

	return c.JSON(fiber.Map{
		"message":             label + " uploaded successfully. Manual review in progress.",
		"verification_status": models.VerificationPending,
	})
}

// UploadAcademic handles academic/employment document upload.
func UploadAcademic(c *fiber.Ctx) error {
	return uploadForManualReview(c, "academic_document", "academic", "Academic/Employment document")
}

// UploadResidence handles residence document upload.
func UploadResidence(c *fiber.Ctx) error {
	return uploadForManualReview(c, "residence_document", "residence", "Residence document")
}

// UploadVideo handles introduction video upload.
func UploadVideo(c *fiber.Ctx) error {
	return uploadForManualReview(c, "intro_video", "video", "Introduction video")
}
