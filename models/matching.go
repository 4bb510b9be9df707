package models

import (
	"gorm.io/gorm"
)

// StudentPreference and MatchingResult back a planned guide-matching feature.
// The schema is migrated and seeded but no scoring runs against it yet.

type StudentPreference struct {
	gorm.Model
	StudentID              uint   `json:"student_id" gorm:"not null"`
	Student                User   `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	HomeCountry            string `json:"home_country" gorm:"not null"`
	FieldOfStudy           string `json:"field_of_study"`
	Languages              string `json:"languages"`
	DietaryPreferences     string `json:"dietary_preferences"`
	BudgetRange            string `json:"budget_range"`
	PreferredSessionTypes  string `json:"preferred_session_types"`
	CulturalAdaptationNeed string `json:"cultural_adaptation_needs"`
}

type MatchingResult struct {
	gorm.Model
	StudentID            uint    `json:"student_id" gorm:"not null"`
	LocalID              uint    `json:"local_id" gorm:"not null"`
	FitScore             float64 `json:"fit_score" gorm:"type:decimal(5,2);not null"`
	CulturalDistanceScore float64 `json:"cultural_distance_score" gorm:"type:decimal(5,2)"`
	LanguageMatchScore   float64 `json:"language_match_score" gorm:"type:decimal(5,2)"`
	FieldMatchScore      float64 `json:"field_match_score" gorm:"type:decimal(5,2)"`
	DietaryMatchScore    float64 `json:"dietary_match_score" gorm:"type:decimal(5,2)"`
	BudgetMatchScore     float64 `json:"budget_match_score" gorm:"type:decimal(5,2)"`
}
