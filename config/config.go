package config

import (
	"fmt"
	"log"
	"os"

	"sweatfix/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the database and migrates the schema. A local sqlite file is
// the default; setting DB_HOST switches to postgres.
func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	var dialector gorm.Dialector
	if os.Getenv("DB_HOST") != "" {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
		dialector = postgres.Open(dsn)
	} else {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "gym.db"
		}
		dialector = sqlite.Open(path)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.ProgressEntry{},
		&models.DailyPlan{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// IsProduction reports whether the deployment mode flag is set. It controls
// cookie security attributes and static-asset serving.
func IsProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}

// AppURL is the externally visible base URL, used for the OAuth callback.
func AppURL() string {
	if u := os.Getenv("APP_URL"); u != "" {
		return u
	}
	return "http://localhost:3000"
}

// ListenAddr returns the address for the HTTP server.
func ListenAddr() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	return ":" + port
}
