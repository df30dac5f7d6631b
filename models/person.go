package models

import "gorm.io/gorm"

type Person struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null;index"`
	BirthYear string `json:"birth_year"`
	Gender    string `json:"gender"`
	Height    int    `json:"height"`
	SkinColor string `json:"skin_color"`
	EyeColor  string `json:"eye_color"`
}

func (Person) TableName() string {
	return "people"
}

func (p *Person) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":         p.ID,
		"name":       p.Name,
		"birth_year": p.BirthYear,
		"gender":     p.Gender,
		"height":     p.Height,
		"skin_color": p.SkinColor,
		"eye_color":  p.EyeColor,
	}
}
