// openai_provider.go implements Provider for the OpenAI DALL-E API.
package imagegen

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements Provider using DALL-E 3.
//
// DALL-E does not accept seeds or negative prompts, so those job
// fields are ignored. Reproducibility is weaker than the Replicate
// backends; the orchestrator still records seeds in metadata.
//
// Thread safety: safe for concurrent use. The underlying client
// handles connection pooling.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// OpenAIProviderConfig holds configuration for the OpenAI provider.
type OpenAIProviderConfig struct {
	// APIKey is the OpenAI API key (required).
	APIKey string

	// BaseURL overrides the API endpoint. Default is the public API.
	BaseURL string

	// Model is the image model. Default: dall-e-3.
	Model string

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// NewOpenAIProvider creates a DALL-E image generation provider.
func NewOpenAIProvider(cfg OpenAIProviderConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("imagegen: OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		clientConfig.HTTPClient = cfg.HTTPClient
	}

	model := cfg.Model
	if model == "" {
		model = "dall-e-3"
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}, nil
}

// Generate creates an image and returns its temporary URL. DALL-E
// URLs expire after about an hour, so callers should download
// promptly.
func (p *OpenAIProvider) Generate(ctx context.Context, job GenerationJob) (string, error) {
	if job.Prompt == "" {
		return "", fmt.Errorf("imagegen: prompt cannot be empty")
	}

	req := openai.ImageRequest{
		Prompt:         job.Prompt,
		Model:          p.model,
		ResponseFormat: openai.CreateImageResponseFormatURL,
		N:              1,
		Size:           dalleSize(job.Width, job.Height),
	}
	if p.model == "dall-e-3" {
		req.Style = openai.CreateImageStyleVivid
	}

	response, err := p.client.CreateImage(ctx, req)
	if err != nil {
		return "", fmt.Errorf("imagegen: OpenAI image generation failed: %w", err)
	}
	if len(response.Data) == 0 {
		return "", fmt.Errorf("imagegen: OpenAI returned empty Data array")
	}
	if response.Data[0].URL == "" {
		return "", fmt.Errorf("imagegen: OpenAI returned empty image URL")
	}
	return response.Data[0].URL, nil
}

// dalleSize picks the closest DALL-E 3 size for the requested
// dimensions. DALL-E only offers square, wide, and tall.
func dalleSize(width, height int) string {
	switch {
	case width == height:
		return openai.CreateImageSize1024x1024
	case width > height:
		return openai.CreateImageSize1792x1024
	default:
		return openai.CreateImageSize1024x1792
	}
}

// Name returns the configured image model name.
func (p *OpenAIProvider) Name() string {
	return p.model
}

// SupportsImageReference reports false; DALL-E 3 has no img2img mode
// in the images API.
func (p *OpenAIProvider) SupportsImageReference() bool {
	return false
}

var _ Provider = (*OpenAIProvider)(nil)
