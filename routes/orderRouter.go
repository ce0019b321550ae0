package routes

import (
	"github.com/gin-gonic/gin"

	"food-delivery-api/controllers"
)

func OrderRoutes(incomingRoutes *gin.Engine, orderController *controllers.OrderController) {
	incomingRoutes.POST("/orders", orderController.CreateOrder())
	incomingRoutes.GET("/orders", orderController.GetOrders())
	incomingRoutes.GET("/orders/:order_id", orderController.GetOrder())
}
