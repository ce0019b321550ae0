package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"food-delivery-api/services"
)

type RestaurantController struct {
	catalog *services.CatalogService
}

func NewRestaurantController(catalog *services.CatalogService) *RestaurantController {
	return &RestaurantController{catalog: catalog}
}

func (ctl *RestaurantController) GetRestaurants() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		restaurants, err := ctl.catalog.ListRestaurants(ctx)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, restaurants)
	}
}

func (ctl *RestaurantController) GetRestaurant() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		restaurantId := c.Param("restaurant_id")

		restaurant, err := ctl.catalog.GetRestaurant(ctx, restaurantId)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, restaurant)
	}
}

// GetRestaurantMenu lists the menu items referencing the given restaurant id.
// An unknown or malformed id yields an empty list, not an error.
func (ctl *RestaurantController) GetRestaurantMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		restaurantId := c.Param("restaurant_id")

		items, err := ctl.catalog.MenuForRestaurant(ctx, restaurantId)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
