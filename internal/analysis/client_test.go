package analysis

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/vital/internal/logging"
	"github.com/dmitrijs2005/vital/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const soupJSON = `{"title":"Tomato Soup","description":"Rich and warm.","quantityEstimation":"4 bowls","category":"Prepared Meal"}`

func pngURI(payload []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)
}

func TestAnalyze_Success(t *testing.T) {
	var got Request
	model := ModelFunc(func(ctx context.Context, req Request) (string, error) {
		got = req
		return soupJSON, nil
	})
	c := NewClient(model, time.Second, nil)

	res := c.Analyze(context.Background(), pngURI([]byte("pixels")))

	assert.Equal(t, models.FoodAnalysis{
		Title: "Tomato Soup", Description: "Rich and warm.", QuantityEstimate: "4 bowls", Category: "Prepared Meal",
	}, res)
	assert.Equal(t, []byte("pixels"), got.Image)
	assert.Equal(t, "image/png", got.MIMEType)
	assert.Equal(t, Prompt, got.Prompt)
}

func TestAnalyze_RawBase64DefaultsToJPEG(t *testing.T) {
	var got Request
	model := ModelFunc(func(ctx context.Context, req Request) (string, error) {
		got = req
		return soupJSON, nil
	})
	c := NewClient(model, time.Second, nil)

	c.Analyze(context.Background(), base64.StdEncoding.EncodeToString([]byte("raw")))

	assert.Equal(t, []byte("raw"), got.Image)
	assert.Equal(t, DefaultMIMEType, got.MIMEType)
}

func TestAnalyze_Fallbacks(t *testing.T) {
	tests := []struct {
		name  string
		image string
		model ModelFunc
	}{
		{"transport error", pngURI([]byte("x")), func(context.Context, Request) (string, error) {
			return "", errors.New("connection reset")
		}},
		{"empty text", pngURI([]byte("x")), func(context.Context, Request) (string, error) {
			return "  ", nil
		}},
		{"malformed json", pngURI([]byte("x")), func(context.Context, Request) (string, error) {
			return "{not json", nil
		}},
		{"null json", pngURI([]byte("x")), func(context.Context, Request) (string, error) {
			return "null", nil
		}},
		{"empty object", pngURI([]byte("x")), func(context.Context, Request) (string, error) {
			return "{}", nil
		}},
		{"all fields blank", pngURI([]byte("x")), func(context.Context, Request) (string, error) {
			return `{"title":"","description":"","quantityEstimation":"","category":""}`, nil
		}},
		{"bad base64", "data:image/png;base64,!!!", func(context.Context, Request) (string, error) {
			return soupJSON, nil
		}},
		{"empty image", "", func(context.Context, Request) (string, error) {
			return soupJSON, nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			c := NewClient(tt.model, time.Second, logging.New(logging.FormatJSON, "debug", &buf))

			res := c.Analyze(context.Background(), tt.image)

			assert.Equal(t, Fallback, res)
			assert.Contains(t, buf.String(), `"level":"WARN"`)
		})
	}
}

func TestAnalyze_NilModelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	c := NewClient(nil, time.Second, logging.New(logging.FormatJSON, "debug", &buf))

	require.NotPanics(t, func() {
		assert.Equal(t, Fallback, c.Analyze(context.Background(), pngURI([]byte("x"))))
	})
	assert.Contains(t, buf.String(), ErrNoModel.Error())
}

func TestAnalyze_LenientBase64(t *testing.T) {
	padded := base64.StdEncoding.EncodeToString([]byte("pixels!"))
	tests := []struct {
		name  string
		image string
	}{
		{"unpadded", "data:image/png;base64," + base64.RawStdEncoding.EncodeToString([]byte("pixels!"))},
		{"line breaks", "data:image/png;base64," + padded[:4] + "\r\n" + padded[4:] + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Request
			model := ModelFunc(func(ctx context.Context, req Request) (string, error) {
				got = req
				return soupJSON, nil
			})
			c := NewClient(model, time.Second, nil)

			res := c.Analyze(context.Background(), tt.image)

			assert.Equal(t, "Tomato Soup", res.Title)
			assert.Equal(t, []byte("pixels!"), got.Image)
		})
	}
}

func TestAnalyze_TimeoutFallsBack(t *testing.T) {
	model := ModelFunc(func(ctx context.Context, req Request) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	c := NewClient(model, 20*time.Millisecond, nil)

	start := time.Now()
	res := c.Analyze(context.Background(), pngURI([]byte("x")))

	assert.Equal(t, Fallback, res)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestSplitDataURI(t *testing.T) {
	tests := []struct {
		in, payload, mime string
	}{
		{"data:image/webp;base64,QUJD", "QUJD", "image/webp"},
		{"QUJD", "QUJD", DefaultMIMEType},
		{"data:;base64,QUJD", "QUJD", DefaultMIMEType},
		{"header,", "header,", DefaultMIMEType},
	}
	for _, tt := range tests {
		p, m := splitDataURI(tt.in)
		assert.Equal(t, tt.payload, p, tt.in)
		assert.Equal(t, tt.mime, m, tt.in)
	}
}

func TestEncodeImageFile(t *testing.T) {
	pngHeader := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	path := filepath.Join(t.TempDir(), "food.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

	uri, err := EncodeImageFile(path)
	require.NoError(t, err)

	payload, mime := splitDataURI(uri)
	assert.Equal(t, "image/png", mime)
	decoded, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, decoded)

	_, err = EncodeImageFile(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
}

func TestEncodeImage_NonImageDefaultsToJPEG(t *testing.T) {
	_, mime := splitDataURI(EncodeImage([]byte("plain text")))
	assert.Equal(t, DefaultMIMEType, mime)
}

func TestNewGeminiModel_RequiresKey(t *testing.T) {
	_, err := NewGeminiModel(context.Background(), "", "")
	require.ErrorIs(t, err, ErrMissingAPIKey)
}
