package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"food-delivery-api/services"
	"food-delivery-api/storage"
)

// respondServiceError maps service failures onto the wire error taxonomy:
// unavailable store -> 503, validation -> 400, missing document -> 404,
// anything else -> 500.
func respondServiceError(c *gin.Context, err error) {
	var validationErr services.ValidationError

	switch {
	case errors.Is(err, storage.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database not configured"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
