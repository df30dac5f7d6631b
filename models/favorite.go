package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrFavoriteTarget is returned when a favorite does not reference exactly
// one target entity.
var ErrFavoriteTarget = errors.New("favorite must reference exactly one of people_id, vehicles_id or planets_id")

// Favorite links a user's list entry to exactly one of a person, a vehicle
// or a planet. Referenced ids are not checked against their tables.
type Favorite struct {
	gorm.Model
	PeopleID   *uint `json:"people_id"`
	VehiclesID *uint `json:"vehicles_id"`
	PlanetsID  *uint `json:"planets_id"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// BeforeCreate rejects rows that set zero or more than one foreign key.
func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	set := 0
	for _, id := range []*uint{f.PeopleID, f.VehiclesID, f.PlanetsID} {
		if id != nil {
			set++
		}
	}
	if set != 1 {
		return ErrFavoriteTarget
	}
	return nil
}

func (f *Favorite) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":          f.ID,
		"people_id":   f.PeopleID,
		"vehicles_id": f.VehiclesID,
		"planets_id":  f.PlanetsID,
	}
}
