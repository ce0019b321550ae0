package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User and Product are generic example collections kept so the external
// database viewer can introspect them via /schema. No endpoint logic reads
// or writes them.

type User struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Name     string             `bson:"name" json:"name" validate:"required"`
	Email    string             `bson:"email" json:"email" validate:"required,email"`
	Address  string             `bson:"address" json:"address" validate:"required"`
	Age      int                `bson:"age,omitempty" json:"age,omitempty" validate:"gte=0,lte=120"`
	IsActive bool               `bson:"is_active" json:"is_active"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price" validate:"gte=0"`
	Category    string             `bson:"category" json:"category" validate:"required"`
	InStock     bool               `bson:"in_stock" json:"in_stock"`
}

// SchemaCollections is the fixed set of collection kinds reported by /schema,
// in declaration order.
var SchemaCollections = []string{
	"user",
	"product",
	"restaurant",
	"menuitem",
	"order",
}
