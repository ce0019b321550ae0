package storage

import (
	"context"
	"errors"

	"food-delivery-api/models"
)

// ErrNotConfigured is returned by every store operation when the backing
// database handle was never initialized (missing DATABASE_URL).
var ErrNotConfigured = errors.New("database not configured")

// ErrNotFound is returned by single-document lookups when no document
// matches the given identifier.
var ErrNotFound = errors.New("document not found")

type RestaurantStore interface {
	Insert(ctx context.Context, restaurant *models.Restaurant) (string, error)
	List(ctx context.Context) ([]models.Restaurant, error)
	FindByID(ctx context.Context, id string) (*models.Restaurant, error)
	Count(ctx context.Context) (int64, error)
}

type MenuItemStore interface {
	Insert(ctx context.Context, item *models.MenuItem) (string, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]models.MenuItem, error)
	Count(ctx context.Context) (int64, error)
}

type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) (string, error)
	FindByID(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
}
