package roadmap

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GenAIClient calls Gemini through the Google GenAI SDK.
type GenAIClient struct {
	client *genai.Client
	model  string
}

// NewGenAIClient creates an SDK client. An empty baseURL uses the SDK default.
func NewGenAIClient(ctx context.Context, apiKey, model, baseURL string) (*GenAIClient, error) {
	if apiKey == "" {
		return nil, ErrConfigurationMissing
	}

	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GenAIClient{client: client, model: model}, nil
}

func (g *GenAIClient) Name() string { return "genai:" + g.model }

func (g *GenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   StrategySchema(),
	})
	if err != nil {
		return "", fmt.Errorf("%w: GenAI generate failed: %w", ErrUpstreamUnavailable, err)
	}
	return resp.Text(), nil
}
