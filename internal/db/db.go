package db

import (
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-rental/internal/config"
	"github.com/BruksfildServices01/studio-rental/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := Open(cfg.DBUrl, &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if db.Dialector.Name() == "postgres" {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatalf("failed to get sql.DB: %v", err)
		}

		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Open escolhe o driver pelo DSN: URLs postgres ou "host=" vão para o
// Postgres, o resto é tratado como arquivo SQLite.
func Open(dsn string, gormCfg *gorm.Config) (*gorm.DB, error) {
	return gorm.Open(dialector(dsn), gormCfg)
}

func dialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=") {
		return postgres.Open(dsn)
	}
	return sqlite.Open(dsn)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Studio{},
		&models.Booking{},
		&models.AuditLog{},
	)
}
