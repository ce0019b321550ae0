package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"food-delivery-api/models"
)

type SchemaController struct{}

func NewSchemaController() *SchemaController {
	return &SchemaController{}
}

// GetSchema reports the known collection kinds so an external database
// viewer can introspect them. Static data, no failure modes.
func (ctl *SchemaController) GetSchema() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"collections": models.SchemaCollections})
	}
}
