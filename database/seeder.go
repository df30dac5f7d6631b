package database

import (
	"github.com/4GeeksAcademy/PabloBalle-SW-Rest-API/models"

	"gorm.io/gorm"
)

// Seed fills the reference tables with a starter dataset when they are
// empty, so the read endpoints have data before the admin panel is used.
func Seed(db *gorm.DB) error {
	if err := seedPeople(db); err != nil {
		return err
	}
	if err := seedVehicles(db); err != nil {
		return err
	}
	return seedPlanets(db)
}

func seedPeople(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Person{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	people := []models.Person{
		{Name: "Luke Skywalker", BirthYear: "19BBY", Gender: "male", Height: 172, SkinColor: "fair", EyeColor: "blue"},
		{Name: "Leia Organa", BirthYear: "19BBY", Gender: "female", Height: 150, SkinColor: "light", EyeColor: "brown"},
		{Name: "Darth Vader", BirthYear: "41.9BBY", Gender: "male", Height: 202, SkinColor: "white", EyeColor: "yellow"},
		{Name: "Obi-Wan Kenobi", BirthYear: "57BBY", Gender: "male", Height: 182, SkinColor: "fair", EyeColor: "blue-gray"},
		{Name: "Chewbacca", BirthYear: "200BBY", Gender: "male", Height: 228, SkinColor: "unknown", EyeColor: "blue"},
	}
	return db.Create(&people).Error
}

func seedVehicles(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Vehicle{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	vehicles := []models.Vehicle{
		{Name: "Sand Crawler", VehicleModel: "Digger Crawler", VehicleClass: "wheeled", Manufacturer: "Corellia Mining Corporation", CostInCredits: 150000, Crew: 46},
		{Name: "X-34 landspeeder", VehicleModel: "X-34 landspeeder", VehicleClass: "repulsorcraft", Manufacturer: "SoroSuub Corporation", CostInCredits: 10550, Crew: 1},
		{Name: "TIE/LN starfighter", VehicleModel: "Twin Ion Engine/Ln Starfighter", VehicleClass: "starfighter", Manufacturer: "Sienar Fleet Systems", CostInCredits: 0, Crew: 1},
		{Name: "Snowspeeder", VehicleModel: "t-47 airspeeder", VehicleClass: "airspeeder", Manufacturer: "Incom corporation", CostInCredits: 0, Crew: 2},
	}
	return db.Create(&vehicles).Error
}

func seedPlanets(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Planet{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	planets := []models.Planet{
		{Name: "Tatooine", Climate: "arid", Terrain: "desert", Population: 200000, Diameter: 10465, OrbitalPeriod: 304},
		{Name: "Alderaan", Climate: "temperate", Terrain: "grasslands, mountains", Population: 2000000000, Diameter: 12500, OrbitalPeriod: 364},
		{Name: "Yavin IV", Climate: "temperate, tropical", Terrain: "jungle, rainforests", Population: 1000, Diameter: 10200, OrbitalPeriod: 4818},
		{Name: "Hoth", Climate: "frozen", Terrain: "tundra, ice caves", Population: 0, Diameter: 7200, OrbitalPeriod: 549},
		{Name: "Dagobah", Climate: "murky", Terrain: "swamp, jungles", Population: 0, Diameter: 8900, OrbitalPeriod: 341},
	}
	return db.Create(&planets).Error
}
