package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"food-delivery-api/config"
)

// Connect builds the mongo client and returns a handle to the configured
// database. A missing DATABASE_URL is not an error here: the caller gets a
// nil handle and the service runs degraded, answering only the static
// endpoints with full responses.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Database, error) {
	if cfg.DatabaseURL == "" {
		return nil, nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// A failed ping is reported but does not discard the handle; the driver
	// reconnects lazily and per-operation errors surface on their own.
	if err := client.Ping(pingCtx, nil); err != nil {
		return client.Database(cfg.DatabaseName), fmt.Errorf("mongodb ping failed: %w", err)
	}

	return client.Database(cfg.DatabaseName), nil
}

// OpenCollection is nil-tolerant so that stores built without a database
// carry a nil collection and report unavailability per operation.
func OpenCollection(db *mongo.Database, name string) *mongo.Collection {
	if db == nil {
		return nil
	}
	return db.Collection(name)
}
