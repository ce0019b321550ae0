package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusCanceled  = "canceled"
)

// OrderItem is a point-in-time snapshot of a menu item embedded in an order.
// It does not track later changes to the MenuItem it references.
type OrderItem struct {
	MenuItemId string  `bson:"menu_item_id" json:"menu_item_id"`
	Name       string  `bson:"name" json:"name"`
	Quantity   int     `bson:"quantity" json:"quantity"`
	Price      float64 `bson:"price" json:"price"`
}

// Order is a document in the "order" collection. Total is computed by the
// order service and immutable after creation.
type Order struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	RestaurantId string             `bson:"restaurant_id" json:"restaurant_id"`
	CustomerName string             `bson:"customer_name" json:"customer_name"`
	Address      string             `bson:"address" json:"address"`
	Phone        string             `bson:"phone" json:"phone"`
	Items        []OrderItem        `bson:"items" json:"items"`
	Total        float64            `bson:"total" json:"total"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// CreateOrderRequest is the wire payload for POST /orders. Any client-claimed
// total is not part of the contract and is never read.
type CreateOrderRequest struct {
	RestaurantId string             `json:"restaurant_id" validate:"required"`
	CustomerName string             `json:"customer_name" validate:"required"`
	Address      string             `json:"address" validate:"required"`
	Phone        string             `json:"phone" validate:"required"`
	Items        []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// OrderItemRequest carries one requested line item. Quantity defaults to 1
// when omitted; an explicit zero is rejected.
type OrderItemRequest struct {
	MenuItemId string   `json:"menu_item_id" validate:"required"`
	Name       string   `json:"name" validate:"required"`
	Quantity   *int     `json:"quantity" validate:"omitempty,min=1"`
	Price      *float64 `json:"price" validate:"required,gte=0"`
}
