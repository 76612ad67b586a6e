package database

import (
	"fmt"
	"log"

	config "github.com/educify/educify-backend/configs"
	"github.com/educify/educify-backend/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.ConfigOr("DB_HOST", "localhost"),
		config.ConfigOr("DB_PORT", "5432"),
		config.ConfigOr("DB_USER", "postgres"),
		config.Config("DB_PASSWORD"),
		config.ConfigOr("DB_NAME", "educify"),
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Tutor{},
		&models.Education{},
		&models.AvailabilitySlot{},
		&models.Booking{},
		&models.Review{},
		&models.Payment{},
		&models.PromoCode{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}
