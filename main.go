package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"food-delivery-api/config"
	"food-delivery-api/controllers"
	"food-delivery-api/database"
	"food-delivery-api/logger"
	"food-delivery-api/routes"
	"food-delivery-api/services"
	"food-delivery-api/storage"
)

func main() {
	cfg := config.Load()
	log := logger.New("food-delivery-api")

	// A nil database handle is a valid degraded state: the process still
	// serves the static endpoints and reports unavailability on the rest.
	db, err := database.Connect(context.Background(), cfg)
	if err != nil {
		log.Error("db_connect", "continuing without a verified database connection", err)
	}
	if db == nil {
		log.Info("db_connect", "DATABASE_URL not set, running in degraded mode")
	}

	restaurantStore := storage.NewMongoRestaurantStore(db)
	menuItemStore := storage.NewMongoMenuItemStore(db)
	orderStore := storage.NewMongoOrderStore(db)

	catalogService := services.NewCatalogService(restaurantStore, menuItemStore)
	orderService := services.NewOrderService(orderStore)
	seedService := services.NewSeedService(restaurantStore, menuItemStore)

	router := gin.Default()
	routes.SystemRoutes(
		router,
		controllers.NewHealthController(db, cfg),
		controllers.NewSeedController(seedService, log),
		controllers.NewSchemaController(),
	)
	routes.RestaurantRoutes(router, controllers.NewRestaurantController(catalogService))
	routes.OrderRoutes(router, controllers.NewOrderController(orderService, log))

	// All origins, methods and headers; the service carries no auth and is
	// meant for trusted or demo deployments.
	handler := cors.AllowAll().Handler(router)

	log.Info("startup", "listening on port "+cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Error("startup", "server stopped", err)
	}
}
