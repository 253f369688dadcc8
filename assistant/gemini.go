package assistant

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

// DefaultModel is used when GEMINI_MODEL is unset.
const DefaultModel = "gemini-3-flash-preview"

// Gemini is a Provider backed by the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Generate(ctx context.Context, req Request) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), generateConfig(req))
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", errors.New("empty response from model")
	}
	return resp.Text(), nil
}

func generateConfig(req Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.WebSearch {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	if req.Format == FormatReviews {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = reviewsSchema
	}
	return cfg
}

var reviewsSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":    {Type: genai.TypeString},
			"comment": {Type: genai.TypeString},
			"rating":  {Type: genai.TypeNumber},
			"date":    {Type: genai.TypeString},
		},
		Required: []string{"name", "comment", "rating"},
	},
}
