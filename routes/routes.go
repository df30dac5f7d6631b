package routes

import (
	"net/http"
	"sort"

	"github.com/4GeeksAcademy/PabloBalle-SW-Rest-API/controllers"
	"github.com/4GeeksAcademy/PabloBalle-SW-Rest-API/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter creates the gin.Engine, registers every route and returns the
// router. The database handle is injected into each controller here; nothing
// holds it globally.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.ErrorHandler())

	// CORS middleware before the routes
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	userController := controllers.NewUserController(db)
	personController := controllers.NewPersonController(db)
	vehicleController := controllers.NewVehicleController(db)
	planetController := controllers.NewPlanetController(db)
	favoriteController := controllers.NewFavoriteController(db)

	r.GET("/", sitemap(r))

	r.GET("/users", userController.List)
	r.GET("/users/:user_id", userController.Get)

	favoritesGroup := r.Group("/users/:user_id/favorites")
	{
		favoritesGroup.GET("", favoriteController.List)
		favoritesGroup.POST("/people/:person_id", favoriteController.AddPerson)
		favoritesGroup.DELETE("/people/:person_id", favoriteController.RemovePerson)
		favoritesGroup.POST("/vehicles/:vehicle_id", favoriteController.AddVehicle)
		favoritesGroup.DELETE("/vehicles/:vehicle_id", favoriteController.RemoveVehicle)
		favoritesGroup.POST("/planets/:planet_id", favoriteController.AddPlanet)
		favoritesGroup.DELETE("/planets/:planet_id", favoriteController.RemovePlanet)
	}

	r.GET("/people", personController.List)
	r.GET("/people/:person_id", personController.Get)
	r.GET("/vehicles", vehicleController.List)
	r.GET("/vehicles/:vehicle_id", vehicleController.Get)
	r.GET("/planets", planetController.List)
	r.GET("/planets/:planet_id", planetController.Get)

	return r
}

// sitemap answers the root path with a listing of every registered route.
func sitemap(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		registered := r.Routes()
		listing := make([]string, 0, len(registered))
		for _, route := range registered {
			listing = append(listing, route.Method+" "+route.Path)
		}
		sort.Strings(listing)

		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Star Wars REST API",
			"routes":  listing,
		})
	}
}
