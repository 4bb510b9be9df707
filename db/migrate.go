package db

import (
	"fmt"
	"log"

	"github.com/locallink/local-link/models"
)

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Guide{},
		&models.Session{},
		&models.Review{},
		&models.StudentPreference{},
		&models.MatchingResult{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
