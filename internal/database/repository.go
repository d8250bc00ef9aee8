package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AnalysisLogRepository provides operations for analysis logs
type AnalysisLogRepository struct {
	conn       *Connection
	collection *mongo.Collection
}

// NewAnalysisLogRepository returns a repository bound to the singleton
// connection
func NewAnalysisLogRepository() (*AnalysisLogRepository, error) {
	conn, err := GetConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	return &AnalysisLogRepository{
		conn:       conn,
		collection: conn.GetCollection(analysisLogCollection),
	}, nil
}

// HealthCheck pings the underlying connection
func (r *AnalysisLogRepository) HealthCheck() error {
	return r.conn.HealthCheck()
}

// Insert stores a new analysis log
func (r *AnalysisLogRepository) Insert(ctx context.Context, log *AnalysisLog) error {
	log.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to insert analysis log: %w", err)
	}

	return nil
}

// GetByRequestID retrieves an analysis log by request ID
func (r *AnalysisLogRepository) GetByRequestID(ctx context.Context, requestID string) (*AnalysisLog, error) {
	var log AnalysisLog
	err := r.collection.FindOne(ctx, bson.M{"request_id": requestID}).Decode(&log)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis log: %w", err)
	}

	return &log, nil
}

// GetRecent retrieves recent analysis logs with pagination, newest first
func (r *AnalysisLogRepository) GetRecent(ctx context.Context, limit, offset int64) ([]*AnalysisLog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find analysis logs: %w", err)
	}
	defer cursor.Close(ctx)

	var logs []*AnalysisLog
	for cursor.Next(ctx) {
		var log AnalysisLog
		if err := cursor.Decode(&log); err != nil {
			return nil, fmt.Errorf("failed to decode analysis log: %w", err)
		}
		logs = append(logs, &log)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return logs, nil
}
