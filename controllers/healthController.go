package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"food-delivery-api/config"
)

type HealthController struct {
	db  *mongo.Database
	cfg *config.Config
}

func NewHealthController(db *mongo.Database, cfg *config.Config) *HealthController {
	return &HealthController{db: db, cfg: cfg}
}

func (ctl *HealthController) Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Food Delivery API is running"})
	}
}

// TestDatabase probes store connectivity for the diagnostic endpoint. Every
// probe failure is folded into a status string; this handler never returns
// an error response.
func (ctl *HealthController) TestDatabase() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		response := gin.H{
			"backend":           "✅ Running",
			"database":          "❌ Not Available",
			"database_url":      nil,
			"database_name":     nil,
			"connection_status": "Not Connected",
			"collections":       []string{},
		}

		if ctl.db != nil {
			response["database"] = "✅ Available"
			if ctl.cfg.DatabaseURL != "" {
				response["database_url"] = "✅ Set"
			} else {
				response["database_url"] = "❌ Not Set"
			}
			response["database_name"] = ctl.db.Name()
			response["connection_status"] = "Connected"

			names, err := ctl.db.ListCollectionNames(ctx, bson.M{})
			if err != nil {
				response["database"] = fmt.Sprintf("⚠️  Connected but Error: %.50s", err.Error())
			} else {
				if len(names) > 10 {
					names = names[:10]
				}
				response["collections"] = names
				response["database"] = "✅ Connected & Working"
			}
		}

		c.JSON(http.StatusOK, response)
	}
}
