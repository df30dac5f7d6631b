package controllers

import (
	"errors"
	"net/http"

	"github.com/4GeeksAcademy/PabloBalle-SW-Rest-API/models"
	"github.com/4GeeksAcademy/PabloBalle-SW-Rest-API/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	db *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

// GET /users
func (uc *UserController) List(c *gin.Context) {
	var users []*models.User
	if err := uc.db.Find(&users).Error; err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.SerializeAll(users))
}

// GET /users/:user_id
func (uc *UserController) Get(c *gin.Context) {
	id, ok := uintParam(c, "user_id")
	if !ok {
		return
	}

	var user models.User
	if err := uc.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Error(utils.NewAPIError("User not found", http.StatusNotFound))
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, user.Serialize())
}
