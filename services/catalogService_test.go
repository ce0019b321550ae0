package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-delivery-api/models"
	"food-delivery-api/storage"
)

func seededCatalog(t *testing.T) (*CatalogService, []string) {
	t.Helper()

	restaurants := storage.NewMemoryRestaurantStore()
	menuItems := storage.NewMemoryMenuItemStore()

	ids := []string{}
	for _, name := range []string{"Pasta Palace", "Sushi Express"} {
		id, err := restaurants.Insert(context.Background(), &models.Restaurant{Name: name, Cuisine: "Mixed"})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	for _, item := range []models.MenuItem{
		{RestaurantId: ids[0], Name: "Spaghetti Carbonara", Price: 14.99},
		{RestaurantId: ids[0], Name: "Margherita Pizza", Price: 12.5},
		{RestaurantId: ids[1], Name: "Salmon Nigiri (6)", Price: 11.99},
	} {
		menuItem := item
		_, err := menuItems.Insert(context.Background(), &menuItem)
		require.NoError(t, err)
	}

	return NewCatalogService(restaurants, menuItems), ids
}

func TestCatalogService_ListRestaurants(t *testing.T) {
	catalog, _ := seededCatalog(t)

	restaurants, err := catalog.ListRestaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, "Pasta Palace", restaurants[0].Name)
	assert.False(t, restaurants[0].ID.IsZero())
}

func TestCatalogService_MenuForRestaurant_FiltersExactly(t *testing.T) {
	catalog, ids := seededCatalog(t)

	items, err := catalog.MenuForRestaurant(context.Background(), ids[0])
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, ids[0], item.RestaurantId)
	}

	items, err = catalog.MenuForRestaurant(context.Background(), ids[1])
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Salmon Nigiri (6)", items[0].Name)
}

func TestCatalogService_MenuForRestaurant_MalformedID(t *testing.T) {
	catalog, _ := seededCatalog(t)

	// Not valid ObjectID hex: the query still runs on the stored string
	// value and returns an empty list rather than failing.
	items, err := catalog.MenuForRestaurant(context.Background(), "not-an-object-id")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCatalogService_GetRestaurant(t *testing.T) {
	catalog, ids := seededCatalog(t)

	restaurant, err := catalog.GetRestaurant(context.Background(), ids[1])
	require.NoError(t, err)
	assert.Equal(t, "Sushi Express", restaurant.Name)

	_, err = catalog.GetRestaurant(context.Background(), "65f1a0000000000000000099")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCatalogService_StoreNotConfigured(t *testing.T) {
	catalog := NewCatalogService(storage.NewMongoRestaurantStore(nil), storage.NewMongoMenuItemStore(nil))

	_, err := catalog.ListRestaurants(context.Background())
	assert.ErrorIs(t, err, storage.ErrNotConfigured)

	_, err = catalog.MenuForRestaurant(context.Background(), "65f1a0000000000000000001")
	assert.ErrorIs(t, err, storage.ErrNotConfigured)
}
