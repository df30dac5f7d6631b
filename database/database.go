package database

import (
	"github.com/4GeeksAcademy/PabloBalle-SW-Rest-API/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens PostgreSQL when DATABASE_URL is set, otherwise a local
// file-backed SQLite store. The handle is passed explicitly to every
// consumer; there is no package-level database state.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL != "" {
		return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
}
