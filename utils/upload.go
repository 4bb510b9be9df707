package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// MaxUploadSize caps the request body carrying an upload.
const MaxUploadSize = 16 * 1024 * 1024

var documentExtensions = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "gif": true, "bmp": true, "pdf": true,
}

var videoExtensions = map[string]bool{
	"mp4": true, "avi": true, "mov": true, "wmv": true, "flv": true, "webm": true,
}

var imageExtensions = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "gif": true, "bmp": true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// UploadDir returns the temp upload area, creating it if needed.
func UploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	os.MkdirAll(dir, 0o755)
	return dir
}

func fileExtension(filename string) string {
	if !strings.Contains(filename, ".") {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// AllowedDocument checks the still-image/PDF allow-list by extension.
func AllowedDocument(filename string) bool {
	return documentExtensions[fileExtension(filename)]
}

// AllowedVideo checks the introduction-video allow-list by extension.
func AllowedVideo(filename string) bool {
	return videoExtensions[fileExtension(filename)]
}

// AllowedImage checks the profile-picture allow-list by extension.
func AllowedImage(filename string) bool {
	return imageExtensions[fileExtension(filename)]
}

// SanitizeFilename strips any path component and unsafe characters.
func SanitizeFilename(filename string) string {
	base := filepath.Base(filename)
	return unsafeFilenameChars.ReplaceAllString(base, "_")
}

// SaveTemp writes an uploaded file into the upload area under a unique name.
// The caller must remove the file with RemoveTemp when done.
func SaveTemp(c *fiber.Ctx, file *multipart.FileHeader, kind string, userID uint) (string, error) {
	name := fmt.Sprintf("%s_%d_%d_%s_%s",
		kind, userID, time.Now().Unix(), uuid.NewString()[:8], SanitizeFilename(file.Filename))
	path := filepath.Join(UploadDir(), name)

	if err := c.SaveFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}

// RemoveTemp deletes a temp upload. Cleanup failures are ignored so they
// never change the user-visible outcome.
func RemoveTemp(path string) {
	if path == "" {
		return
	}
	_ = os.Remove(path)
}
