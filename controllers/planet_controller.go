package controllers

import (
	"errors"
	"net/http"

	"github.com/4GeeksAcademy/PabloBalle-SW-Rest-API/models"
	"github.com/4GeeksAcademy/PabloBalle-SW-Rest-API/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PlanetController struct {
	db *gorm.DB
}

func NewPlanetController(db *gorm.DB) *PlanetController {
	return &PlanetController{db: db}
}

// GET /planets
func (pc *PlanetController) List(c *gin.Context) {
	var planets []*models.Planet
	if err := pc.db.Find(&planets).Error; err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.SerializeAll(planets))
}

// GET /planets/:planet_id
func (pc *PlanetController) Get(c *gin.Context) {
	id, ok := uintParam(c, "planet_id")
	if !ok {
		return
	}

	var planet models.Planet
	if err := pc.db.First(&planet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Error(utils.NewAPIError("Planet not found", http.StatusNotFound))
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, planet.Serialize())
}
