// Package gemini provides a tag generation client backed by the Google
// Gemini API.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"wallpaper_backend/internal/feature/curation/usecase"
)

const (
	// DefaultModel is the Gemini model used for tag generation.
	DefaultModel = "gemini-2.5-flash"
)

// TagClient generates wallpaper tags through the Gemini API.
type TagClient struct {
	client *genai.Client
	model  string
}

// Compile-time check that TagClient implements TagGenerator.
var _ usecase.TagGenerator = (*TagClient)(nil)

// NewTagClient creates a new TagClient using ADC credentials. The environment
// variables GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT and
// GOOGLE_CLOUD_LOCATION must be set.
func NewTagClient(ctx context.Context) (*TagClient, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &TagClient{client: client, model: DefaultModel}, nil
}

// Generate produces free-form text from a prompt.
func (g *TagClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	return resp.Text(), nil
}
