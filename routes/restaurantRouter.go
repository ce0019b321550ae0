package routes

import (
	"github.com/gin-gonic/gin"

	"food-delivery-api/controllers"
)

func RestaurantRoutes(incomingRoutes *gin.Engine, restaurantController *controllers.RestaurantController) {
	incomingRoutes.GET("/restaurants", restaurantController.GetRestaurants())
	incomingRoutes.GET("/restaurants/:restaurant_id", restaurantController.GetRestaurant())
	incomingRoutes.GET("/restaurants/:restaurant_id/menu", restaurantController.GetRestaurantMenu())
}
