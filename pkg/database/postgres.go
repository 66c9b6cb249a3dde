package database

import (
	"log"
	"os"

	"github.com/unboundhq/unbound-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase() *gorm.DB {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.College{},
		&models.Student{},
		&models.Fest{},
		&models.Event{},
		&models.Team{},
		&models.TeamMember{},
		&models.EventRegistration{},
		&models.Payment{},
	)
}
