package analysis

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/vital/internal/logging"
	"github.com/dmitrijs2005/vital/internal/models"
)

const (
	Prompt = "Analyze this image of food. Identify the item, provide a short appetizing description, " +
		"estimate the quantity visible, and categorize it (e.g., Bakery, Produce, Prepared Meal). Return JSON."

	DefaultMIMEType = "image/jpeg"
	DefaultTimeout  = 30 * time.Second
)

var (
	ErrEmptyResponse = errors.New("empty analysis response")
	ErrEmptyImage    = errors.New("empty image")
	ErrNoModel       = errors.New("no analysis model configured")
)

// Fallback is returned whenever analysis fails.
var Fallback = models.FoodAnalysis{
	Title:            "Unknown Item",
	Description:      "Could not analyze image automatically. Please enter details manually.",
	QuantityEstimate: "Unknown",
	Category:         "General",
}

// Request is one image-analysis call.
type Request struct {
	Image    []byte
	MIMEType string
	Prompt   string
}

// Model performs the remote call and returns the raw JSON text.
type Model interface {
	GenerateJSON(ctx context.Context, req Request) (string, error)
}

// ModelFunc adapts a function to Model.
type ModelFunc func(ctx context.Context, req Request) (string, error)

func (f ModelFunc) GenerateJSON(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// Client wraps a Model with payload preparation, a per-call timeout and the
// fallback policy.
type Client struct {
	model   Model
	timeout time.Duration
	log     logging.Logger
}

// NewClient returns a Client over model. A nil model fails every call, so
// Analyze always yields Fallback.
func NewClient(model Model, timeout time.Duration, log logging.Logger) *Client {
	if model == nil {
		model = ModelFunc(func(context.Context, Request) (string, error) {
			return "", ErrNoModel
		})
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Client{model: model, timeout: timeout, log: log}
}

// Analyze describes the image. image is a base64 payload, optionally with a
// data-URI header.
func (c *Client) Analyze(ctx context.Context, image string) models.FoodAnalysis {
	res, err := c.analyze(ctx, image)
	if err != nil {
		c.log.Warn(ctx, "image analysis failed, using fallback", "error", err)
		return Fallback
	}
	return res
}

func (c *Client) analyze(ctx context.Context, image string) (models.FoodAnalysis, error) {
	payload, mime := splitDataURI(image)
	if payload == "" {
		return models.FoodAnalysis{}, ErrEmptyImage
	}

	data, err := decodePayload(payload)
	if err != nil {
		return models.FoodAnalysis{}, fmt.Errorf("decode image: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.model.GenerateJSON(ctx, Request{Image: data, MIMEType: mime, Prompt: Prompt})
	if err != nil {
		return models.FoodAnalysis{}, fmt.Errorf("generate: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return models.FoodAnalysis{}, ErrEmptyResponse
	}

	var res *models.FoodAnalysis
	if err := json.Unmarshal([]byte(text), &res); err != nil {
		return models.FoodAnalysis{}, fmt.Errorf("parse response: %w", err)
	}
	if res == nil || *res == (models.FoodAnalysis{}) {
		return models.FoodAnalysis{}, ErrEmptyResponse
	}
	return *res, nil
}

// decodePayload accepts padded or unpadded base64 with embedded whitespace.
func decodePayload(payload string) ([]byte, error) {
	payload = strings.Join(strings.Fields(payload), "")
	if payload == "" {
		return nil, ErrEmptyImage
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
}

// splitDataURI drops everything up to the first comma. When the header names
// a MIME type ("data:image/png;base64") it is returned, else DefaultMIMEType.
func splitDataURI(image string) (payload, mime string) {
	mime = DefaultMIMEType

	header, rest, found := strings.Cut(image, ",")
	if !found || rest == "" {
		return image, mime
	}

	if m, ok := strings.CutPrefix(header, "data:"); ok {
		m, _, _ = strings.Cut(m, ";")
		if m != "" {
			mime = m
		}
	}
	return rest, mime
}
