package migrations

import "gorm.io/gorm"

// AddFavoritesIndexes creates the lookup indexes for the favorites join
// table. Plain CREATE INDEX IF NOT EXISTS so it runs on both PostgreSQL
// and SQLite.
func AddFavoritesIndexes(db *gorm.DB) error {
	stmts := []string{
		`CREATE INDEX IF NOT EXISTS idx_favorites_people_id ON favorites(people_id)`,
		`CREATE INDEX IF NOT EXISTS idx_favorites_vehicles_id ON favorites(vehicles_id)`,
		`CREATE INDEX IF NOT EXISTS idx_favorites_planets_id ON favorites(planets_id)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
