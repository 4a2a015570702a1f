package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"salonbook-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=salonbook port=5432 sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Ensure PostgreSQL has gen_random_uuid() available (pgcrypto extension).
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		return fmt.Errorf("failed to enable pgcrypto extension: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.PasswordResetToken{},
		&models.Salon{},
		&models.OperatingHours{},
		&models.Staff{},
		&models.StaffWorkDay{},
		&models.StaffShift{},
		&models.StaffBlockedTime{},
		&models.StaffLeave{},
		&models.ServiceCategory{},
		&models.Service{},
		&models.Booking{},
	); err != nil {
		return err
	}

	return nil
}

func CreateDefaultAdmin(db *gorm.DB) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail == "" {
		adminEmail = "admin@salonbook.com"
	}
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	var existingUser models.User
	result := db.Where("email = ?", adminEmail).First(&existingUser)
	if result.Error == nil {
		// Admin already exists
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     "admin",
		Name:     "Admin User",
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Default admin created: %s", adminEmail)
	return nil
}

// CreateDemoSalon seeds a demo salon with operating hours and one
// scheduled staff member so a fresh install has availability to show.
// Controlled by SEED_DEMO_SALON; skipped when unset.
func CreateDemoSalon(db *gorm.DB) error {
	if os.Getenv("SEED_DEMO_SALON") != "true" {
		return nil
	}

	var existing models.Salon
	if err := db.Where("slug = ?", "demo-salon").First(&existing).Error; err == nil {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	owner := models.User{
		Email:    "owner@salonbook.com",
		Password: string(hashedPassword),
		Role:     "salon_owner",
		Name:     "Demo Owner",
	}
	if err := db.Create(&owner).Error; err != nil {
		return err
	}

	salon := models.Salon{
		Name:      "Demo Salon",
		Slug:      "demo-salon",
		OwnerID:   owner.ID,
		Address:   "1 High Street",
		City:      "London",
		Latitude:  51.5074,
		Longitude: -0.1278,
		Timezone:  "Europe/London",
		IsActive:  true,
	}
	if err := db.Create(&salon).Error; err != nil {
		return err
	}

	if err := db.Model(&owner).Update("salon_id", salon.ID).Error; err != nil {
		return err
	}

	// Open Monday-Saturday, closed Sunday.
	for day := time.Sunday; day <= time.Saturday; day++ {
		hours := models.OperatingHours{
			SalonID:   salon.ID,
			DayOfWeek: int(day),
			IsOpen:    day != time.Sunday,
			StartTime: "09:00",
			EndTime:   "18:00",
		}
		if err := db.Create(&hours).Error; err != nil {
			return err
		}
	}

	staff := models.Staff{
		SalonID: salon.ID,
		Name:    "Demo Stylist",
		Title:   "Stylist",
		Status:  models.StaffStatusActive,
	}
	if err := db.Create(&staff).Error; err != nil {
		return err
	}

	for day := time.Sunday; day <= time.Saturday; day++ {
		working := day != time.Sunday && day != time.Monday
		workDay := models.StaffWorkDay{
			StaffID:     staff.ID,
			DayOfWeek:   int(day),
			IsAvailable: working,
		}
		if err := db.Create(&workDay).Error; err != nil {
			return err
		}
		if working {
			shift := models.StaffShift{
				StaffID:   staff.ID,
				DayOfWeek: int(day),
				StartTime: "09:00",
				EndTime:   "17:00",
			}
			if err := db.Create(&shift).Error; err != nil {
				return err
			}
		}
	}

	log.Printf("Demo salon created: %s", salon.Slug)
	return nil
}
