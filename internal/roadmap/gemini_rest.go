package roadmap

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"google.golang.org/genai"
)

// DefaultBaseURL is the public Gemini API host.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// GeminiClient calls the Gemini generateContent REST endpoint directly.
type GeminiClient struct {
	client  *resty.Client
	apiKey  string
	model   string
	baseURL string
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string        `json:"responseMimeType"`
	ResponseSchema   *genai.Schema `json:"responseSchema"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

type geminiError struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// NewGeminiClient returns a REST client. An empty baseURL uses DefaultBaseURL.
// Calls are bounded only by the caller's context deadline.
func NewGeminiClient(apiKey, model, baseURL string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrConfigurationMissing
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &GeminiClient{
		client:  resty.New(),
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimSuffix(baseURL, "/") + "/v1beta/models",
	}, nil
}

func (g *GeminiClient) Name() string { return "gemini-rest:" + g.model }

// Generate posts prompt with JSON mode and the strategy schema enabled.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/%s:generateContent", g.baseURL, g.model)

	req := geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: prompt}},
		}},
		GenerationConfig: geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   StrategySchema(),
		},
	}

	var resp geminiResponse
	var apiErr geminiError
	res, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", g.apiKey).
		SetBody(req).
		SetResult(&resp).
		SetError(&apiErr).
		Post(url)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	if res.IsError() {
		msg := res.Status()
		if apiErr.Error != nil && apiErr.Error.Message != "" {
			msg = apiErr.Error.Message
		}
		return "", fmt.Errorf("%w: API error: %s", ErrUpstreamUnavailable, msg)
	}

	if len(resp.Candidates) == 0 {
		return "", nil
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String(), nil
}
