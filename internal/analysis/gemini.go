package analysis

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.5-flash"

var ErrMissingAPIKey = errors.New("gemini API key is required")

// GeminiModel implements Model with the Gemini API.
type GeminiModel struct {
	client *genai.Client
	model  string
}

// NewGeminiModel creates a GeminiModel. An empty model selects
// DefaultGeminiModel.
func NewGeminiModel(ctx context.Context, apiKey, model string) (*GeminiModel, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiModel{client: client, model: model}, nil
}

func (g *GeminiModel) Name() string {
	return g.model
}

func (g *GeminiModel) GenerateJSON(ctx context.Context, req Request) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(req.Image, req.MIMEType),
			genai.NewPartFromText(req.Prompt),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema(),
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":              {Type: genai.TypeString, Description: "A short, clear title of the food item"},
			"description":        {Type: genai.TypeString, Description: "A 1-2 sentence appetizing description"},
			"quantityEstimation": {Type: genai.TypeString, Description: "Estimated quantity (e.g., '3 boxes', '5 kg')"},
			"category":           {Type: genai.TypeString, Description: "Category of food"},
		},
	}
}
