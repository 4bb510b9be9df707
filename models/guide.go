package models

import (
	"gorm.io/gorm"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
)

// PlaceholderLocation marks a guide profile that has not been filled in yet.
// Profiles still carrying it are excluded from public listings.
const PlaceholderLocation = "Not Set"

// DefaultHourlyRate is assigned to placeholder profiles at registration.
const DefaultHourlyRate = 2.0

type Guide struct {
	gorm.Model
	UserID             uint               `json:"user_id" gorm:"not null;uniqueIndex"`
	User               User               `json:"user,omitempty" gorm:"foreignKey:UserID"`
	City               string             `json:"city" gorm:"not null"`
	Country            string             `json:"country" gorm:"not null"`
	University         string             `json:"university"`
	Employment         string             `json:"employment"`
	Bio                string             `json:"bio"`
	HourlyRate         float64            `json:"hourly_rate" gorm:"type:decimal(10,2)"`
	IsVerified         bool               `json:"is_verified" gorm:"default:false"`
	VerificationStatus VerificationStatus `json:"verification_status" gorm:"default:'pending'"`
	ProfilePicture     string             `json:"profile_picture"`
	HomeCountry        string             `json:"home_country"`
	FieldOfStudy       string             `json:"field_of_study"`
	Languages          string             `json:"languages"`
	DietaryPreferences string             `json:"dietary_preferences"`
	CulturalBackground string             `json:"cultural_background"`
}

// TableName keeps the original schema's table name.
func (Guide) TableName() string {
	return "local_guides"
}

func (g *Guide) BeforeCreate(tx *gorm.DB) error {
	if g.VerificationStatus == "" {
		g.VerificationStatus = VerificationPending
	}
	return nil
}

// IsComplete reports whether the guide has replaced the placeholder location.
func (g *Guide) IsComplete() bool {
	return g.City != PlaceholderLocation && g.Country != PlaceholderLocation
}

// NewPlaceholderGuide builds the blank profile created at guide registration.
func NewPlaceholderGuide(userID uint) Guide {
	return Guide{
		UserID:             userID,
		City:               PlaceholderLocation,
		Country:            PlaceholderLocation,
		Bio:                "New local guide - profile setup required",
		HourlyRate:         DefaultHourlyRate,
		IsVerified:         false,
		VerificationStatus: VerificationPending,
	}
}
