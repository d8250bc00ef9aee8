// Package imaging decodes the data-URL image payloads submitted to the
// calculate endpoint into in-memory images.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"

	// Registered decoders for the formats drawing clients submit
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// DefaultMaxBytes caps the decoded payload size
const DefaultMaxBytes = 20 * 1024 * 1024 // 20MB

// ImageData holds a decoded image together with its raw bytes and metadata.
// The raw bytes are kept because the analysis vendor wants the original
// encoding, not a re-encode of the parsed bitmap.
type ImageData struct {
	Image    image.Image
	Raw      []byte
	MimeType string
	Format   string
}

// ParseDataURL splits a data-URL image string on the first comma and decodes
// the base64 payload. The prefix is expected to look like
// "data:image/png;base64". maxBytes of 0 applies DefaultMaxBytes.
func ParseDataURL(dataURL string, maxBytes int64) ([]byte, string, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	prefix, payload, found := strings.Cut(dataURL, ",")
	if !found {
		return nil, "", fmt.Errorf("invalid data URL: missing comma separator")
	}

	mimeType := mimeFromPrefix(prefix)

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("invalid base64 image payload: %w", err)
	}

	if int64(len(raw)) > maxBytes {
		return nil, "", fmt.Errorf("image exceeds maximum size of %d bytes", maxBytes)
	}

	return raw, mimeType, nil
}

// Decode parses a data-URL image string into an ImageData
func Decode(dataURL string, maxBytes int64) (*ImageData, error) {
	raw, mimeType, err := ParseDataURL(dataURL, maxBytes)
	if err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("unable to decode image bytes: %w", err)
	}

	if mimeType == "" {
		mimeType = "image/" + format
	}

	return &ImageData{
		Image:    img,
		Raw:      raw,
		MimeType: mimeType,
		Format:   format,
	}, nil
}

// mimeFromPrefix extracts the media type from a "data:image/png;base64" prefix
func mimeFromPrefix(prefix string) string {
	rest, ok := strings.CutPrefix(prefix, "data:")
	if !ok {
		return ""
	}
	if idx := strings.IndexByte(rest, ';'); idx >= 0 {
		rest = rest[:idx]
	}
	return rest
}
