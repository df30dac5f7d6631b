package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

func (User) TableName() string {
	return "users"
}

// Serialize never exposes the password.
func (u *User) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":        u.ID,
		"email":     u.Email,
		"is_active": u.IsActive,
	}
}
