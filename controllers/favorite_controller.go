package controllers

import (
	"errors"
	"net/http"

	"github.com/4GeeksAcademy/PabloBalle-SW-Rest-API/models"
	"github.com/4GeeksAcademy/PabloBalle-SW-Rest-API/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FavoriteController struct {
	db *gorm.DB
}

func NewFavoriteController(db *gorm.DB) *FavoriteController {
	return &FavoriteController{db: db}
}

// GET /users/:user_id/favorites
//
// The user id is accepted but not used as a filter: the listing covers every
// favorite row. Kept as-is for compatibility with existing clients.
func (fc *FavoriteController) List(c *gin.Context) {
	var favorites []*models.Favorite
	if err := fc.db.Find(&favorites).Error; err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.SerializeAll(favorites))
}

// POST /users/:user_id/favorites/people/:person_id
func (fc *FavoriteController) AddPerson(c *gin.Context) {
	id, ok := uintParam(c, "person_id")
	if !ok {
		return
	}
	fc.create(c, &models.Favorite{PeopleID: &id})
}

// POST /users/:user_id/favorites/vehicles/:vehicle_id
func (fc *FavoriteController) AddVehicle(c *gin.Context) {
	id, ok := uintParam(c, "vehicle_id")
	if !ok {
		return
	}
	fc.create(c, &models.Favorite{VehiclesID: &id})
}

// POST /users/:user_id/favorites/planets/:planet_id
func (fc *FavoriteController) AddPlanet(c *gin.Context) {
	id, ok := uintParam(c, "planet_id")
	if !ok {
		return
	}
	fc.create(c, &models.Favorite{PlanetsID: &id})
}

// DELETE /users/:user_id/favorites/people/:person_id
func (fc *FavoriteController) RemovePerson(c *gin.Context) {
	fc.remove(c, "person_id")
}

// DELETE /users/:user_id/favorites/vehicles/:vehicle_id
func (fc *FavoriteController) RemoveVehicle(c *gin.Context) {
	fc.remove(c, "vehicle_id")
}

// DELETE /users/:user_id/favorites/planets/:planet_id
func (fc *FavoriteController) RemovePlanet(c *gin.Context) {
	fc.remove(c, "planet_id")
}

func (fc *FavoriteController) create(c *gin.Context, fav *models.Favorite) {
	if err := fc.db.Create(fav).Error; err != nil {
		if errors.Is(err, models.ErrFavoriteTarget) {
			c.Error(utils.NewAPIError(err.Error(), http.StatusBadRequest))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, fav.Serialize())
}

// remove looks the favorite up by its row id, which is what the trailing
// path parameter carries on delete requests.
func (fc *FavoriteController) remove(c *gin.Context, param string) {
	id, ok := uintParam(c, param)
	if !ok {
		return
	}

	var fav models.Favorite
	if err := fc.db.First(&fav, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Error(utils.NewAPIError("User not found", http.StatusNotFound))
			return
		}
		c.Error(err)
		return
	}

	if err := fc.db.Delete(&fav).Error; err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, fav.Serialize())
}
