package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"food-delivery-api/models"
	"food-delivery-api/storage"
)

// CatalogService answers read queries over restaurants and menu items.
type CatalogService struct {
	restaurants storage.RestaurantStore
	menuItems   storage.MenuItemStore
}

func NewCatalogService(restaurants storage.RestaurantStore, menuItems storage.MenuItemStore) *CatalogService {
	return &CatalogService{
		restaurants: restaurants,
		menuItems:   menuItems,
	}
}

func (s *CatalogService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return s.restaurants.List(ctx)
}

func (s *CatalogService) GetRestaurant(ctx context.Context, restaurantID string) (*models.Restaurant, error) {
	return s.restaurants.FindByID(ctx, restaurantID)
}

// MenuForRestaurant filters menu items on the stored restaurant_id string.
// The identifier shape is checked but a malformed value is not rejected: it
// matches no stored reference and legitimately yields an empty list.
func (s *CatalogService) MenuForRestaurant(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	_, _ = primitive.ObjectIDFromHex(restaurantID)

	return s.menuItems.ListByRestaurant(ctx, restaurantID)
}
