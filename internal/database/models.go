package database

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aashari/go-image-analysis-api/internal/analyzer"
)

// analysisLogCollection is where completed analyses are stored
const analysisLogCollection = "analysis-logs"

// AnalysisLog records a completed image analysis for later inspection
type AnalysisLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AnalysisID string             `bson:"analysis_id" json:"analysis_id"`
	RequestID  string             `bson:"request_id" json:"request_id"`

	// Input details (the image itself is not stored, only its shape)
	ImageFormat   string `bson:"image_format,omitempty" json:"image_format,omitempty"`
	ImageBytes    int    `bson:"image_bytes" json:"image_bytes"`
	ImageWidth    int    `bson:"image_width,omitempty" json:"image_width,omitempty"`
	ImageHeight   int    `bson:"image_height,omitempty" json:"image_height,omitempty"`
	VariableCount int    `bson:"variable_count" json:"variable_count"`

	// Analysis outcome
	Model       string            `bson:"model" json:"model"`
	Results     []analyzer.Result `bson:"results" json:"results"`
	ResultCount int               `bson:"result_count" json:"result_count"`
	DurationMs  int64             `bson:"duration_ms" json:"duration_ms"`

	// Error details (if any)
	ErrorMessage string `bson:"error_message,omitempty" json:"error_message,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
