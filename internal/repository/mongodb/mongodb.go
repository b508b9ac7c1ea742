// Package mongodb contains the MongoDB-backed persistence adapters. Writes are
// serialized and identities assigned by the server; no additional coordination
// happens on this side.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Client wraps a connected MongoDB client scoped to one database.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes and verifies a MongoDB connection.
func Connect(ctx context.Context, uri, dbName string) (*Client, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Client{client: client, db: client.Database(dbName)}, nil
}

// Database exposes the scoped database handle.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Close closes the MongoDB connection.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
