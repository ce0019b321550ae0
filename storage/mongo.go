package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"food-delivery-api/database"
	"food-delivery-api/models"
)

// Collection names match the kinds reported by /schema.
const (
	restaurantCollection = "restaurant"
	menuItemCollection   = "menuitem"
	orderCollection      = "order"
)

type mongoRestaurantStore struct {
	coll *mongo.Collection
}

func NewMongoRestaurantStore(db *mongo.Database) RestaurantStore {
	return &mongoRestaurantStore{coll: database.OpenCollection(db, restaurantCollection)}
}

func (s *mongoRestaurantStore) Insert(ctx context.Context, restaurant *models.Restaurant) (string, error) {
	if s.coll == nil {
		return "", ErrNotConfigured
	}

	if restaurant.ID.IsZero() {
		restaurant.ID = primitive.NewObjectID()
	}

	if _, err := s.coll.InsertOne(ctx, restaurant); err != nil {
		return "", fmt.Errorf("error occurred while inserting the restaurant: %w", err)
	}
	return restaurant.ID.Hex(), nil
}

func (s *mongoRestaurantStore) List(ctx context.Context) ([]models.Restaurant, error) {
	if s.coll == nil {
		return nil, ErrNotConfigured
	}

	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error occurred while fetching restaurants: %w", err)
	}

	restaurants := []models.Restaurant{}
	if err = cursor.All(ctx, &restaurants); err != nil {
		return nil, fmt.Errorf("error occurred while decoding restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *mongoRestaurantStore) FindByID(ctx context.Context, id string) (*models.Restaurant, error) {
	if s.coll == nil {
		return nil, ErrNotConfigured
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var restaurant models.Restaurant
	if err := s.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&restaurant); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error occurred while fetching the restaurant: %w", err)
	}
	return &restaurant, nil
}

func (s *mongoRestaurantStore) Count(ctx context.Context) (int64, error) {
	if s.coll == nil {
		return 0, ErrNotConfigured
	}
	count, err := s.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error occurred while counting restaurants: %w", err)
	}
	return count, nil
}

type mongoMenuItemStore struct {
	coll *mongo.Collection
}

func NewMongoMenuItemStore(db *mongo.Database) MenuItemStore {
	return &mongoMenuItemStore{coll: database.OpenCollection(db, menuItemCollection)}
}

func (s *mongoMenuItemStore) Insert(ctx context.Context, item *models.MenuItem) (string, error) {
	if s.coll == nil {
		return "", ErrNotConfigured
	}

	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}

	if _, err := s.coll.InsertOne(ctx, item); err != nil {
		return "", fmt.Errorf("error occurred while inserting the menu item: %w", err)
	}
	return item.ID.Hex(), nil
}

// ListByRestaurant matches on the stored restaurant_id string value, so an
// identifier that is not valid ObjectID hex simply matches nothing.
func (s *mongoMenuItemStore) ListByRestaurant(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	if s.coll == nil {
		return nil, ErrNotConfigured
	}

	cursor, err := s.coll.Find(ctx, bson.M{"restaurant_id": restaurantID})
	if err != nil {
		return nil, fmt.Errorf("error occurred while fetching menu items: %w", err)
	}

	items := []models.MenuItem{}
	if err = cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("error occurred while decoding menu items: %w", err)
	}
	return items, nil
}

func (s *mongoMenuItemStore) Count(ctx context.Context) (int64, error) {
	if s.coll == nil {
		return 0, ErrNotConfigured
	}
	count, err := s.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error occurred while counting menu items: %w", err)
	}
	return count, nil
}

type mongoOrderStore struct {
	coll *mongo.Collection
}

func NewMongoOrderStore(db *mongo.Database) OrderStore {
	return &mongoOrderStore{coll: database.OpenCollection(db, orderCollection)}
}

func (s *mongoOrderStore) Insert(ctx context.Context, order *models.Order) (string, error) {
	if s.coll == nil {
		return "", ErrNotConfigured
	}

	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}

	if _, err := s.coll.InsertOne(ctx, order); err != nil {
		return "", fmt.Errorf("error occurred while inserting the order: %w", err)
	}
	return order.ID.Hex(), nil
}

func (s *mongoOrderStore) FindByID(ctx context.Context, id string) (*models.Order, error) {
	if s.coll == nil {
		return nil, ErrNotConfigured
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var order models.Order
	if err := s.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&order); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error occurred while fetching the order: %w", err)
	}
	return &order, nil
}

func (s *mongoOrderStore) List(ctx context.Context) ([]models.Order, error) {
	if s.coll == nil {
		return nil, ErrNotConfigured
	}

	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error occurred while fetching orders: %w", err)
	}

	orders := []models.Order{}
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("error occurred while decoding orders: %w", err)
	}
	return orders, nil
}
