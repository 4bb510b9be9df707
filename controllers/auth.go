package controllers

import (
	"log"
	"mime/multipart"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/locallink/local-link/controllers/guide"
	"github.com/locallink/local-link/db"
	"github.com/locallink/local-link/middleware"
	"github.com/locallink/local-link/models"
	"github.com/locallink/local-link/redis"
	"github.com/locallink/local-link/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var validate = validator.New()

type RegisterRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
	UserType string `json:"user_type" form:"user_type" validate:"required,oneof=student local"`
	FullName string `json:"full_name" form:"full_name" validate:"required"`
	Phone    string `json:"phone" form:"phone"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// RegisterInfo describes the register endpoint for GET requests; the form
// itself is rendered by the frontend.
func RegisterInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "POST username, email, password, user_type, full_name and optional phone to register. Local guides must attach an id_document.",
	})
}

// LoginInfo describes the login endpoint for GET requests.
func LoginInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "POST username and password to log in.",
	})
}

// Register creates an account. Local guides also get a placeholder profile
// and their ID document is run through the verification gateway.
func Register(c *fiber.Ctx) error {
	req := new(RegisterRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing or invalid required fields",
		})
	}

	if err := utils.ValidatePasswordStrength(req.Password); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// For local guides the ID document must pass validation before any
	// account row is written.
	var document *multipart.FileHeader
	if req.UserType == string(models.TypeLocal) {
		var err error
		document, err = c.FormFile("id_document")
		if err != nil || document.Filename == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "ID document is required for local guides",
			})
		}
		if !utils.AllowedDocument(document.Filename) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid file type for ID document. Please upload images (PNG, JPG, JPEG, GIF, BMP) or PDF",
			})
		}
	}

	var existing models.User
	if db.DB.Where("username = ? OR email = ?", req.Username, req.Email).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Username or email already exists. Please choose different credentials",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		UserType: models.UserType(req.UserType),
		FullName: req.FullName,
		Phone:    req.Phone,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if user.UserType == models.TypeLocal {
			guide := models.NewPlaceholderGuide(user.ID)
			if err := tx.Create(&guide).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create user",
		})
	}

	message := "Registration successful! Welcome to LocalLink!"
	next := "dashboard"

	if user.UserType == models.TypeLocal {
		next = "become-local"
		message = "Registration successful! Please complete your profile to start receiving bookings!"

		if document != nil {
			result := guide.VerifyIdentityDocument(c, document, "registration", user.ID)
			if result.Approved() {
				message = "Registration successful! Your identity has been verified automatically. Please complete your profile to start receiving bookings!"
			} else {
				message = "Registration successful! Your ID document is under review. Please complete your profile to start receiving bookings!"
			}
		}
	}

	go func(name, email string) {
		if err := utils.SendEmail(email, "Welcome to LocalLink!", "<h1>Welcome, "+name+"!</h1><p>Thank you for registering.</p>"); err != nil {
			log.Printf("Failed to send welcome email to %s: %v", email, err)
		}
	}(user.FullName, user.Email)

	token, refreshToken, err := issueTokens(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	user.Password = ""
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      message,
		"next":         next,
		"token":        token,
		"refreshToken": refreshToken,
		"user":         user,
	})
}

// Login authenticates by username and password. Failures are reported with
// a single generic message.
func Login(c *fiber.Ctx) error {
	req := new(LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing username or password",
		})
	}

	var user models.User
	if db.DB.Where("username = ?", req.Username).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid username or password",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid username or password",
		})
	}

	token, refreshToken, err := issueTokens(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"message":      "Login successful!",
		"token":        token,
		"refreshToken": refreshToken,
		"user": fiber.Map{
			"id":        user.ID,
			"username":  user.Username,
			"user_type": user.UserType,
			"full_name": user.FullName,
		},
	})
}

// Logout blacklists the presented token for the rest of its lifetime.
func Logout(c *fiber.Ctx) error {
	token, ok := c.Locals("user").(*jwt.Token)
	if ok {
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if exp, ok := claims["exp"].(float64); ok {
				ttl := time.Until(time.Unix(int64(exp), 0))
				if err := redis.BlacklistToken(token.Raw, ttl); err != nil {
					log.Printf("Failed to blacklist token: %v", err)
				}
			}
		}
	}

	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// GetUserProfile returns the current user's account record.
func GetUserProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	user.Password = ""
	return c.JSON(user)
}

// RefreshToken generates a new access token using a refresh token
func RefreshToken(c *fiber.Ctx) error {
	type RefreshRequest struct {
		RefreshToken string `json:"refreshToken" form:"refreshToken"`
	}

	req := new(RefreshRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse request body",
		})
	}

	token, err := jwt.Parse(req.RefreshToken, func(token *jwt.Token) (interface{}, error) {
		return middleware.JWTSecret(), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid refresh token",
		})
	}

	claims := token.Claims.(jwt.MapClaims)
	id, ok := claims["id"].(float64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid refresh token",
		})
	}

	var user models.User
	if err := db.DB.First(&user, uint(id)).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid refresh token",
		})
	}

	accessToken, err := signAccessToken(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token": accessToken,
	})
}

func signAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":        user.ID,
		"username":  user.Username,
		"user_type": string(user.UserType),
		"full_name": user.FullName,
		"exp":       time.Now().Add(time.Hour * 24).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(middleware.JWTSecret())
}

func issueTokens(user *models.User) (string, string, error) {
	accessToken, err := signAccessToken(user)
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(time.Hour * 24 * 7).Unix(),
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(middleware.JWTSecret())
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}
