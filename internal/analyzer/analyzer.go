// Package analyzer sends canvas images to a generative vision backend and
// turns the model's reply into structured calculation results.
package analyzer

import (
	"context"

	"github.com/aashari/go-image-analysis-api/internal/imaging"
)

// Result is a single expression the vision model extracted from the canvas.
// Result values are pass-through: numbers, strings, whatever the model
// produced for the expression.
type Result struct {
	Expr   string `json:"expr"`
	Result any    `json:"result"`
	Assign bool   `json:"assign,omitempty"`
}

// Analyzer analyzes a decoded canvas image with a caller-supplied variable
// mapping and returns the extracted results in emission order.
type Analyzer interface {
	Analyze(ctx context.Context, img *imaging.ImageData, vars map[string]any) ([]Result, error)
}
