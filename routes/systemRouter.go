package routes

import (
	"github.com/gin-gonic/gin"

	"food-delivery-api/controllers"
)

func SystemRoutes(
	incomingRoutes *gin.Engine,
	healthController *controllers.HealthController,
	seedController *controllers.SeedController,
	schemaController *controllers.SchemaController,
) {
	incomingRoutes.GET("/", healthController.Root())
	incomingRoutes.GET("/test", healthController.TestDatabase())
	incomingRoutes.POST("/seed", seedController.SeedData())
	incomingRoutes.GET("/schema", schemaController.GetSchema())
}
