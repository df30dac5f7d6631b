package database

import (
	"github.com/4GeeksAcademy/PabloBalle-SW-Rest-API/migrations"
	"github.com/4GeeksAcademy/PabloBalle-SW-Rest-API/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Person{},
		&models.Vehicle{},
		&models.Planet{},
		&models.Favorite{},
	); err != nil {
		return err
	}

	return migrations.AddFavoritesIndexes(db)
}
