package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"food-delivery-api/logger"
	"food-delivery-api/services"
)

type SeedController struct {
	seeder *services.SeedService
	log    *logger.Logger
}

func NewSeedController(seeder *services.SeedService, log *logger.Logger) *SeedController {
	return &SeedController{seeder: seeder, log: log}
}

// SeedData populates empty catalog collections with sample data. Re-invoking
// it against a populated catalog inserts nothing and reports zero counts.
func (ctl *SeedController) SeedData() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		result, err := ctl.seeder.Seed(ctx)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		ctl.log.Info("seed", fmt.Sprintf("seeded %d restaurants, %d menu items", result.Restaurants, result.MenuItems))
		c.JSON(http.StatusOK, gin.H{"seeded": result})
	}
}
