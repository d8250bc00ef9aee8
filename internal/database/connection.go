package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/aashari/go-image-analysis-api/internal/logger"
)

// Connection holds the MongoDB connection and configuration
type Connection struct {
	Client   *mongo.Client
	Database *mongo.Database
	Config   *DatabaseConfig
}

var (
	instance *Connection
	once     sync.Once
)

// GetConnection returns a singleton MongoDB connection, creating it on first
// use from environment configuration
func GetConnection() (*Connection, error) {
	var err error
	once.Do(func() {
		config := GetDatabaseConfig()
		instance, err = newConnection(config)
	})
	if instance == nil && err == nil {
		err = fmt.Errorf("database connection unavailable")
	}
	return instance, err
}

// newConnection creates a new MongoDB connection
func newConnection(config *DatabaseConfig) (*Connection, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.URI)
	if config.AppName != "" {
		clientOptions.SetAppName(config.AppName)
	}

	masked := config.MaskSensitiveData()
	logger.Info("Connecting to MongoDB",
		"database", masked.DatabaseName,
		"uri", masked.URI,
	)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	connection := &Connection{
		Client:   client,
		Database: client.Database(config.DatabaseName),
		Config:   config,
	}

	logger.Info("Connected to MongoDB", "database", config.DatabaseName)

	if err := connection.createIndexes(ctx); err != nil {
		// Index creation failure is not fatal, queries just get slower
		logger.Warn("Failed to create database indexes", "error", err)
	}

	return connection, nil
}

// HealthCheck verifies the connection is alive
func (c *Connection) HealthCheck() error {
	if c.Client == nil {
		return fmt.Errorf("no MongoDB client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return c.Client.Ping(ctx, readpref.Primary())
}

// Disconnect closes the MongoDB connection
func (c *Connection) Disconnect() error {
	if c.Client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return c.Client.Disconnect(ctx)
}

// GetCollection returns a MongoDB collection
func (c *Connection) GetCollection(name string) *mongo.Collection {
	return c.Database.Collection(name)
}

// createIndexes creates indexes for the analysis-logs collection
func (c *Connection) createIndexes(ctx context.Context) error {
	collection := c.GetCollection(analysisLogCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_at_desc"),
		},
		{
			Keys:    bson.D{{Key: "request_id", Value: 1}},
			Options: options.Index().SetName("request_id"),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
