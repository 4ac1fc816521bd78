package config

import (
	"log"
	"os"

	"github.com/KanannSharmaa25/ai-life-analytics/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the single-file SQLite store and migrates the schema.
// Called once at startup, before the first request.
func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "life_analytics.db"
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.Entry{},
		&models.User{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
