package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodePNGDataURL builds a data-URL string from a freshly encoded PNG
func encodePNGDataURL(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestParseDataURL(t *testing.T) {
	dataURL := encodePNGDataURL(t, 2, 2)

	raw, mimeType, err := ParseDataURL(dataURL, 0)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.NotEmpty(t, raw)
}

func TestParseDataURL_MissingComma(t *testing.T) {
	_, _, err := ParseDataURL("data:image/png;base64", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing comma")
}

func TestParseDataURL_InvalidBase64(t *testing.T) {
	_, _, err := ParseDataURL("data:image/png;base64,!!!not-base64!!!", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64")
}

func TestParseDataURL_SizeCap(t *testing.T) {
	dataURL := encodePNGDataURL(t, 16, 16)

	_, _, err := ParseDataURL(dataURL, 8)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum size")
}

func TestDecode_PNG(t *testing.T) {
	dataURL := encodePNGDataURL(t, 4, 3)

	data, err := Decode(dataURL, 0)
	require.NoError(t, err)
	assert.Equal(t, "png", data.Format)
	assert.Equal(t, "image/png", data.MimeType)
	assert.Equal(t, 4, data.Image.Bounds().Dx())
	assert.Equal(t, 3, data.Image.Bounds().Dy())
	assert.NotEmpty(t, data.Raw)
}

func TestDecode_JPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	data, err := Decode(dataURL, 0)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", data.Format)
	assert.Equal(t, "image/jpeg", data.MimeType)
}

func TestDecode_WebP(t *testing.T) {
	// 1x1 lossless WebP (RIFF/VP8L container)
	dataURL := "data:image/webp;base64,UklGRhoAAABXRUJQVlA4TA0AAAAvAAAAEAcQERGIiP4HAA=="

	data, err := Decode(dataURL, 0)
	require.NoError(t, err)
	assert.Equal(t, "webp", data.Format)
	assert.Equal(t, "image/webp", data.MimeType)
	assert.Equal(t, 1, data.Image.Bounds().Dx())
	assert.Equal(t, 1, data.Image.Bounds().Dy())
}

func TestDecode_UndecodableBytes(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("definitely not an image"))
	_, err := Decode("data:image/png;base64,"+payload, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode image bytes")
}

func TestDecode_MimeFallsBackToFormat(t *testing.T) {
	// Prefix without a recognizable data: scheme still decodes; the mime type
	// comes from the detected format
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	dataURL := "base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	data, err := Decode(dataURL, 0)
	require.NoError(t, err)
	assert.Equal(t, "image/png", data.MimeType)
}
