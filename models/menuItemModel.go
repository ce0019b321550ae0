package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem is a document in the "menuitem" collection. RestaurantId holds the
// owning restaurant's ObjectID hex; it is a lookup key, not an enforced
// foreign key.
type MenuItem struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	RestaurantId string             `bson:"restaurant_id" json:"restaurant_id" validate:"required"`
	Name         string             `bson:"name" json:"name" validate:"required"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Price        float64            `bson:"price" json:"price" validate:"gte=0"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	Category     string             `bson:"category,omitempty" json:"category,omitempty"`
}
