package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Restaurant is a document in the "restaurant" collection. Restaurants are
// written by seeding or administrative tooling and are read-only afterwards.
type Restaurant struct {
	ID              primitive.ObjectID `bson:"_id" json:"_id"`
	Name            string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	Cuisine         string             `bson:"cuisine" json:"cuisine" validate:"required"`
	Rating          float64            `bson:"rating" json:"rating" validate:"gte=0,lte=5"`
	DeliveryTimeMin int                `bson:"delivery_time_min" json:"delivery_time_min" validate:"gte=5,lte=120"`
}
