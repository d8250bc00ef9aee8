package utils

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// IDGenerator provides centralized ID generation functionality
type IDGenerator struct{}

// NewIDGenerator creates a new ID generator
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// GenerateRequestID generates a unique request ID (16 hex characters)
func (g *IDGenerator) GenerateRequestID() string {
	return g.generateHex(8)
}

// GenerateCorrelationID generates a UUID for correlation tracking
func (g *IDGenerator) GenerateCorrelationID() string {
	return uuid.New().String()
}

// GenerateAnalysisID generates an ID for a single analysis run
func (g *IDGenerator) GenerateAnalysisID() string {
	return "calc_" + g.generateHex(12)
}

// generateHex generates a random hex string of the given byte length
func (g *IDGenerator) generateHex(byteLength int) string {
	bytes := make([]byte, byteLength)
	if _, err := rand.Read(bytes); err != nil {
		// crypto/rand failure leaves us with no entropy source worth trusting
		return uuid.New().String()[:byteLength*2]
	}
	return hex.EncodeToString(bytes)
}

// Package-level convenience wrappers using a shared generator
var defaultGenerator = NewIDGenerator()

// GenerateRequestID generates a unique request ID
func GenerateRequestID() string {
	return defaultGenerator.GenerateRequestID()
}

// GenerateCorrelationID generates a UUID for correlation tracking
func GenerateCorrelationID() string {
	return defaultGenerator.GenerateCorrelationID()
}

// GenerateAnalysisID generates an ID for a single analysis run
func GenerateAnalysisID() string {
	return defaultGenerator.GenerateAnalysisID()
}
