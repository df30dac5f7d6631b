package models

import "gorm.io/gorm"

type Planet struct {
	gorm.Model
	Name          string `json:"name" gorm:"not null;index"`
	Climate       string `json:"climate"`
	Terrain       string `json:"terrain"`
	Population    int64  `json:"population"`
	Diameter      int    `json:"diameter"`
	OrbitalPeriod int    `json:"orbital_period"`
}

func (Planet) TableName() string {
	return "planets"
}

func (p *Planet) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":             p.ID,
		"name":           p.Name,
		"climate":        p.Climate,
		"terrain":        p.Terrain,
		"population":     p.Population,
		"diameter":       p.Diameter,
		"orbital_period": p.OrbitalPeriod,
	}
}
