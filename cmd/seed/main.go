package main

import (
	"errors"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-rental/internal/config"
	dbpkg "github.com/BruksfildServices01/studio-rental/internal/db"
	"github.com/BruksfildServices01/studio-rental/internal/models"
)

type seedStudio struct {
	name        string
	description string
	rate        string
	facilities  string
}

var studios = []seedStudio{
	{"Studio Melati", "Ruang foto utama dengan backdrop putih.", "150000", "Lighting kit, backdrop, AC"},
	{"Studio Anggrek", "Studio rekaman kedap suara.", "200000", "Mixer, 2 mic condenser, monitor"},
	{"Studio Kenanga", "Ruang kecil untuk podcast.", "100000", "2 mic, kamera, meja"},
}

func main() {
	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	admin := ensureUser(db, "Admin", "admin@studio.test", "admin123", models.RoleAdmin)
	customer := ensureUser(db, "Customer", "customer@studio.test", "customer123", models.RoleCustomer)
	log.Printf("users ready admin_id=%d customer_id=%d", admin.ID, customer.ID)

	for _, s := range studios {
		var existing models.Studio
		err := db.Where("name = ?", s.name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("failed to look up studio %q: %v", s.name, err)
		}

		desc, fac := s.description, s.facilities
		studio := models.Studio{
			Name:        s.name,
			Description: &desc,
			HourlyRate:  decimal.RequireFromString(s.rate),
			Facilities:  &fac,
			IsActive:    true,
		}
		if err := db.Create(&studio).Error; err != nil {
			log.Fatalf("failed to create studio %q: %v", s.name, err)
		}
		log.Printf("studio created id=%d name=%q", studio.ID, studio.Name)
	}

	log.Println("seed finished")
}

func ensureUser(db *gorm.DB, name, email, password, role string) models.User {
	var u models.User
	err := db.Where("email = ?", email).First(&u).Error
	if err == nil {
		return u
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("failed to look up user %s: %v", email, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	u = models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := db.Create(&u).Error; err != nil {
		log.Fatalf("failed to create user %s: %v", email, err)
	}
	return u
}
