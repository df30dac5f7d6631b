package models

import "gorm.io/gorm"

type Vehicle struct {
	gorm.Model
	Name          string `json:"name" gorm:"not null;index"`
	VehicleModel  string `json:"model" gorm:"column:model"`
	VehicleClass  string `json:"vehicle_class"`
	Manufacturer  string `json:"manufacturer"`
	CostInCredits int64  `json:"cost_in_credits"`
	Crew          int    `json:"crew"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

func (v *Vehicle) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":              v.ID,
		"name":            v.Name,
		"model":           v.VehicleModel,
		"vehicle_class":   v.VehicleClass,
		"manufacturer":    v.Manufacturer,
		"cost_in_credits": v.CostInCredits,
		"crew":            v.Crew,
	}
}
