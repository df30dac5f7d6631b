package main

import (
	"log"

	"github.com/4GeeksAcademy/PabloBalle-SW-Rest-API/config"
	"github.com/4GeeksAcademy/PabloBalle-SW-Rest-API/database"
	"github.com/4GeeksAcademy/PabloBalle-SW-Rest-API/routes"
	"github.com/4GeeksAcademy/PabloBalle-SW-Rest-API/utils"
)

func main() {
	cfg := config.LoadConfig()

	if err := utils.InitLogger(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if cfg.DatabaseURL != "" {
		log.Println("Connected to PostgreSQL")
	} else {
		log.Printf("Connected to SQLite at %s", cfg.SQLitePath)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	log.Println("Migration complete")

	if err := database.Seed(db); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}
	log.Println("Reference data seeded (if needed)")

	r := routes.SetupRouter(db)

	log.Printf("Server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
