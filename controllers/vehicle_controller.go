package controllers

import (
	"errors"
	"net/http"

	"github.com/4GeeksAcademy/PabloBalle-SW-Rest-API/models"
	"github.com/4GeeksAcademy/PabloBalle-SW-Rest-API/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VehicleController struct {
	db *gorm.DB
}

func NewVehicleController(db *gorm.DB) *VehicleController {
	return &VehicleController{db: db}
}

// GET /vehicles
func (vc *VehicleController) List(c *gin.Context) {
	var vehicles []*models.Vehicle
	if err := vc.db.Find(&vehicles).Error; err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.SerializeAll(vehicles))
}

// GET /vehicles/:vehicle_id
func (vc *VehicleController) Get(c *gin.Context) {
	id, ok := uintParam(c, "vehicle_id")
	if !ok {
		return
	}

	var vehicle models.Vehicle
	if err := vc.db.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Error(utils.NewAPIError("Vehicle not found", http.StatusNotFound))
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, vehicle.Serialize())
}
