// Package testutil wires an in-memory database and a routed app for
// handler tests.
package testutil

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/locallink/local-link/db"
	"github.com/locallink/local-link/middleware"
	"github.com/locallink/local-link/models"
	"github.com/locallink/local-link/routes"
	"github.com/locallink/local-link/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDB points the global connection at a fresh in-memory database.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = gdb.AutoMigrate(
		&models.User{},
		&models.Guide{},
		&models.Session{},
		&models.Review{},
		&models.StudentPreference{},
		&models.MatchingResult{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.DB = gdb
	return gdb
}

// NewApp builds the routed application the way main does.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: utils.MaxUploadSize,
	})
	routes.SetupAuthRoutes(app)
	routes.SetupStudentRoutes(app)
	routes.SetupGuideRoutes(app)
	return app
}

// CreateUser inserts a user with the given password already hashed.
func CreateUser(t *testing.T, username string, userType models.UserType, password string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{
		Username: username,
		Email:    username + "@test.com",
		Password: string(hashed),
		UserType: userType,
		FullName: "Test " + username,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

// Token signs an access token for a user, matching the login claims.
func Token(t *testing.T, user models.User) string {
	t.Helper()

	claims := jwt.MapClaims{
		"id":        user.ID,
		"username":  user.Username,
		"user_type": string(user.UserType),
		"full_name": user.FullName,
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(middleware.JWTSecret())
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

// MultipartForm builds a multipart body with fields and one optional file.
func MultipartForm(t *testing.T, fields map[string]string, fileField, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("failed to write form field %s: %v", key, err)
		}
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := part.Write(fileContent); err != nil {
			t.Fatalf("failed to write form file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}
