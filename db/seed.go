package db

import (
	"log"
	"time"

	"github.com/locallink/local-link/models"
	"golang.org/x/crypto/bcrypt"
)

// Seed loads the demo accounts when the users table is empty.
func Seed() {
	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Fatal("Failed to check for existing users: ", err)
	}
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("DemoPass123!"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash demo password: ", err)
	}
	password := string(hashed)

	locals := []models.User{
		{Username: "local_demo", Email: "local@demo.com", Password: password, UserType: models.TypeLocal, FullName: "Arjun Sharma", Phone: "+420123456789"},
		{Username: "local_demo2", Email: "priya@demo.com", Password: password, UserType: models.TypeLocal, FullName: "Priya Patel", Phone: "+36123456789"},
		{Username: "local_demo3", Email: "rahul@demo.com", Password: password, UserType: models.TypeLocal, FullName: "Rahul Kumar", Phone: "+48123456789"},
	}
	for i := range locals {
		if err := DB.Create(&locals[i]).Error; err != nil {
			log.Fatal("Failed to seed demo locals: ", err)
		}
	}

	guides := []models.Guide{
		{
			UserID: locals[0].ID, City: "Prague", Country: "Czech Republic", University: "Charles University",
			Bio:        "Experienced guide helping students with housing, transport, and cultural adaptation in Prague.",
			HourlyRate: 2.0, IsVerified: true, VerificationStatus: models.VerificationApproved,
			HomeCountry: "India", FieldOfStudy: "Computer Science", Languages: "English, Hindi, Czech",
			DietaryPreferences: "vegetarian", CulturalBackground: "From Mumbai, understands the challenges of adapting to European culture",
		},
		{
			UserID: locals[1].ID, City: "Budapest", Country: "Hungary", Employment: "Google",
			Bio:        "Local expert specializing in student life, affordable shopping, and public transport tips.",
			HourlyRate: 2.0, IsVerified: true, VerificationStatus: models.VerificationApproved,
			HomeCountry: "India", FieldOfStudy: "Engineering", Languages: "English, Hindi, Hungarian",
			DietaryPreferences: "halal", CulturalBackground: "Originally from Delhi, helps students with cultural integration and finding halal food",
		},
		{
			UserID: locals[2].ID, City: "Warsaw", Country: "Poland", University: "Warsaw University",
			Bio:        "Helping students find affordable housing and navigate Polish bureaucracy with ease.",
			HourlyRate: 2.0, IsVerified: true, VerificationStatus: models.VerificationApproved,
			HomeCountry: "India", FieldOfStudy: "Business", Languages: "English, Hindi, Polish",
			DietaryPreferences: "vegetarian", CulturalBackground: "From Bangalore, specializes in helping students with academic and professional development",
		},
	}
	for i := range guides {
		if err := DB.Create(&guides[i]).Error; err != nil {
			log.Fatal("Failed to seed demo guides: ", err)
		}
	}

	student := models.User{
		Username: "student_demo", Email: "student@demo.com", Password: password,
		UserType: models.TypeStudent, FullName: "Demo Student", Phone: "+420987654321",
	}
	if err := DB.Create(&student).Error; err != nil {
		log.Fatal("Failed to seed demo student: ", err)
	}

	preference := models.StudentPreference{
		StudentID: student.ID, HomeCountry: "India", FieldOfStudy: "Computer Science",
		Languages: "English, Hindi", DietaryPreferences: "vegetarian", BudgetRange: "low",
		PreferredSessionTypes: "housing,transport", CulturalAdaptationNeed: "housing,transport,banking",
	}
	if err := DB.Create(&preference).Error; err != nil {
		log.Fatal("Failed to seed demo preferences: ", err)
	}

	sessions := []models.Session{
		{StudentID: student.ID, LocalID: guides[0].ID, SessionType: "housing", Duration: 2, TotalCost: 2.0, Status: models.SessionCompleted, ScheduledAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)},
		{StudentID: student.ID, LocalID: guides[1].ID, SessionType: "transport", Duration: 2, TotalCost: 2.0, Status: models.SessionCompleted, ScheduledAt: time.Date(2024, 1, 20, 14, 0, 0, 0, time.UTC)},
	}
	for i := range sessions {
		if err := DB.Create(&sessions[i]).Error; err != nil {
			log.Fatal("Failed to seed demo sessions: ", err)
		}
	}

	reviews := []models.Review{
		{SessionID: sessions[0].ID, StudentID: student.ID, LocalID: guides[0].ID, Rating: 5, Comment: "Arjun was amazing! Helped me find a great apartment in Prague."},
		{SessionID: sessions[1].ID, StudentID: student.ID, LocalID: guides[1].ID, Rating: 5, Comment: "Priya showed me the best transport routes and saved me so much money!"},
	}
	for i := range reviews {
		if err := DB.Create(&reviews[i]).Error; err != nil {
			log.Fatal("Failed to seed demo reviews: ", err)
		}
	}

	log.Println("✅ Demo data seeded successfully")
}
