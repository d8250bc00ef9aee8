package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateRequestID(t *testing.T) {
	id := GenerateRequestID()
	assert.Len(t, id, 16)

	// Two consecutive IDs should not collide
	assert.NotEqual(t, id, GenerateRequestID())
}

func TestGenerateCorrelationID(t *testing.T) {
	id := GenerateCorrelationID()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestGenerateAnalysisID(t *testing.T) {
	id := GenerateAnalysisID()
	assert.True(t, strings.HasPrefix(id, "calc_"))
	assert.Len(t, id, len("calc_")+24)
}
