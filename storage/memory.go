package storage

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"food-delivery-api/models"
)

// In-memory store implementations used by the test suites. They mirror the
// mongo stores' observable behavior: store-assigned ObjectIDs, insertion
// order on listing, and string-equality menu filtering.

type MemoryRestaurantStore struct {
	mu          sync.Mutex
	restaurants []models.Restaurant
}

func NewMemoryRestaurantStore() *MemoryRestaurantStore {
	return &MemoryRestaurantStore{}
}

func (s *MemoryRestaurantStore) Insert(_ context.Context, restaurant *models.Restaurant) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if restaurant.ID.IsZero() {
		restaurant.ID = primitive.NewObjectID()
	}
	s.restaurants = append(s.restaurants, *restaurant)
	return restaurant.ID.Hex(), nil
}

func (s *MemoryRestaurantStore) List(_ context.Context) ([]models.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Restaurant, len(s.restaurants))
	copy(out, s.restaurants)
	return out, nil
}

func (s *MemoryRestaurantStore) FindByID(_ context.Context, id string) (*models.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, restaurant := range s.restaurants {
		if restaurant.ID.Hex() == id {
			found := restaurant
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryRestaurantStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.restaurants)), nil
}

type MemoryMenuItemStore struct {
	mu    sync.Mutex
	items []models.MenuItem
}

func NewMemoryMenuItemStore() *MemoryMenuItemStore {
	return &MemoryMenuItemStore{}
}

func (s *MemoryMenuItemStore) Insert(_ context.Context, item *models.MenuItem) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	s.items = append(s.items, *item)
	return item.ID.Hex(), nil
}

func (s *MemoryMenuItemStore) ListByRestaurant(_ context.Context, restaurantID string) ([]models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []models.MenuItem{}
	for _, item := range s.items {
		if item.RestaurantId == restaurantID {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (s *MemoryMenuItemStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.items)), nil
}

type MemoryOrderStore struct {
	mu     sync.Mutex
	orders []models.Order
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{}
}

func (s *MemoryOrderStore) Insert(_ context.Context, order *models.Order) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	s.orders = append(s.orders, *order)
	return order.ID.Hex(), nil
}

func (s *MemoryOrderStore) FindByID(_ context.Context, id string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, order := range s.orders {
		if order.ID.Hex() == id {
			found := order
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryOrderStore) List(_ context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

var (
	_ RestaurantStore = (*MemoryRestaurantStore)(nil)
	_ MenuItemStore   = (*MemoryMenuItemStore)(nil)
	_ OrderStore      = (*MemoryOrderStore)(nil)
)
