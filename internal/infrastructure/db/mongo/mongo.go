// Package mongo implements the persistence layer of the jobdeck API on
// top of the official MongoDB driver. Each repository owns one collection
// and converts between its bson document shape and the domain types.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// defaultTimeout bounds single repository operations.
	defaultTimeout = 10 * time.Second
	// connectTimeout bounds the initial dial and ping at startup.
	connectTimeout = 10 * time.Second
)

// Config carries the connection settings for the jobdeck document store.
type Config struct {
	URI      string
	Database string
}

// Connect dials the deployment, verifies it with a ping and returns the
// database handle. The client is returned alongside it so the caller can
// disconnect on shutdown; nothing else needs it.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
