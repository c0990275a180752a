// Package imagegen orchestrates the card image generation pipeline.
//
// provider.go defines the Provider interface that generation backends
// implement, so Replicate-hosted models and OpenAI DALL-E are
// swappable behind the same orchestrator.
package imagegen

import "context"

// GenerationJob describes a single image to generate.
type GenerationJob struct {
	// Prompt is the full positive prompt.
	Prompt string

	// NegativePrompt lists terms the model should avoid. Ignored by
	// backends that do not support negative prompts.
	NegativePrompt string

	// Seed pins the sampler for reproducible output. Ignored by
	// backends without seed support.
	Seed int64

	// AspectRatio is the target proportion name, e.g. "2:3".
	AspectRatio string

	// Width and Height are the generation dimensions for backends
	// that take explicit sizes instead of a ratio name.
	Width  int
	Height int

	// ReferenceImage is an optional data URI or URL used for img2img
	// style anchoring. Empty means pure text-to-image.
	ReferenceImage string

	// PromptStrength controls how far img2img may drift from the
	// reference image. Only used when ReferenceImage is set.
	PromptStrength float64
}

// Provider is the interface for image generation backends.
//
// Generate returns the URL of the generated image. Downloading and
// post-processing are handled separately by the Generator.
type Provider interface {
	Generate(ctx context.Context, job GenerationJob) (string, error)

	// Name identifies the backend for logging and run metadata.
	Name() string

	// SupportsImageReference reports whether the backend honors
	// GenerationJob.ReferenceImage.
	SupportsImageReference() bool
}
