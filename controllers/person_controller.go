package controllers

import (
	"errors"
	"net/http"

	"github.com/4GeeksAcademy/PabloBalle-SW-Rest-API/models"
	"github.com/4GeeksAcademy/PabloBalle-SW-Rest-API/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PersonController struct {
	db *gorm.DB
}

func NewPersonController(db *gorm.DB) *PersonController {
	return &PersonController{db: db}
}

// GET /people
func (pc *PersonController) List(c *gin.Context) {
	var people []*models.Person
	if err := pc.db.Find(&people).Error; err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.SerializeAll(people))
}

// GET /people/:person_id
func (pc *PersonController) Get(c *gin.Context) {
	id, ok := uintParam(c, "person_id")
	if !ok {
		return
	}

	var person models.Person
	if err := pc.db.First(&person, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Error(utils.NewAPIError("Person not found", http.StatusNotFound))
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, person.Serialize())
}
