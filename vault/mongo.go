package vault

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// vaultDocument is a single stored key in the vault collection.
type vaultDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoBackend stores keys as documents in a MongoDB collection.
type MongoBackend struct {
	Collection *mongo.Collection
	Timeout    time.Duration
}

// NewMongoBackend returns a backend over the "vault" collection of database.
func NewMongoBackend(client *mongo.Client, database string) *MongoBackend {
	return &MongoBackend{
		Collection: client.Database(database).Collection("vault"),
		Timeout:    5 * time.Second,
	}
}

func (m *MongoBackend) Get(key string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), m.Timeout)
	defer cancel()

	var doc vaultDocument
	err := m.Collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("finding %s: %w", key, err)
	}
	return doc.Value, nil
}

func (m *MongoBackend) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), m.Timeout)
	defer cancel()

	doc := vaultDocument{Key: key, Value: value, UpdatedAt: time.Now()}
	_, err := m.Collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upserting %s: %w", key, err)
	}
	return nil
}

func (m *MongoBackend) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), m.Timeout)
	defer cancel()

	if _, err := m.Collection.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// Close disconnects the underlying client.
func (m *MongoBackend) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), m.Timeout)
	defer cancel()

	return m.Collection.Database().Client().Disconnect(ctx)
}
