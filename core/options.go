// options.go holds the flat per-run configuration bag.
package core

import (
	"fmt"
	"time"
)

// Known model aliases. Anything else is passed through as a raw model
// identifier.
const (
	ModelFluxSchnell = "flux-schnell"
	ModelSDXL        = "sdxl"
	ModelDallE3      = "dall-e-3"
)

// Diversity tier names accepted by the --diversity flag. The imaging
// package interprets them.
const (
	DiversityLow    = "low"
	DiversityMedium = "medium"
	DiversityHigh   = "high"
)

// Options is the flat configuration bag for a single generation run.
// There is no lifecycle beyond Validate before use.
type Options struct {
	// Style is the art style prompt, e.g. "dark gothic ink wash style".
	Style string

	// Model selects the generation backend: flux-schnell, sdxl,
	// dall-e-3, or a raw "owner/name[:version]" model ID.
	Model string

	// OutputDir receives the generated images.
	OutputDir string

	// Subset selects which cards to generate: all, major, minor, sample.
	Subset string

	// CardIndex selects a single card by its catalog index (numeral).
	// -1 means the whole subset.
	CardIndex int

	// CardsFile optionally overrides the builtin catalog with a YAML
	// tarot deck definition.
	CardsFile string

	// OracleFile optionally generates a user-supplied oracle deck
	// instead of the tarot catalog.
	OracleFile string

	// BaseSeed anchors per-card seed derivation for reproducible runs.
	BaseSeed int64

	// Parallel is the worker pool size; 1 means sequential.
	Parallel int

	// AspectRatio is the target card proportion, e.g. "2:3".
	AspectRatio string

	// Diversity controls how much seeded crop jitter is allowed.
	Diversity string

	// PromptStrength is the img2img strength for key-card guided
	// generation (0 exclusive to 1 inclusive).
	PromptStrength float64

	// NegativeExtra appends user terms to the default negative prompt.
	NegativeExtra string

	// KeyCardPath optionally supplies the img2img reference image.
	// Empty means the first card is auto-generated as the key.
	KeyCardPath string

	// Decks is the number of deck variants to generate.
	Decks int

	// MaxRetries is the per-image attempt ceiling against the API.
	MaxRetries int

	// RateLimitDelay is the fixed wait after a rate-limited attempt.
	RateLimitDelay time.Duration
}

// DefaultOptions returns options with sensible defaults. Generation
// tuning can be overridden through the environment
// (DECKFORGE_MAX_RETRIES, DECKFORGE_RATE_LIMIT_DELAY_SECONDS,
// DECKFORGE_PROMPT_STRENGTH).
func DefaultOptions() Options {
	return Options{
		Model:          ModelFluxSchnell,
		OutputDir:      "output",
		Subset:         "all",
		CardIndex:      -1,
		BaseSeed:       42,
		Parallel:       1,
		AspectRatio:    DefaultAspectRatio,
		Diversity:      DiversityMedium,
		PromptStrength: ParseFloat64Env("DECKFORGE_PROMPT_STRENGTH", 0.47),
		Decks:          1,
		MaxRetries:     ParseIntEnv("DECKFORGE_MAX_RETRIES", 5),
		RateLimitDelay: ParseDurationEnv("DECKFORGE_RATE_LIMIT_DELAY_SECONDS", 60),
	}
}

// Validate checks the options bag for a single run. Returns a
// ConfigError naming the first offending option.
func (o *Options) Validate() error {
	if o.Style == "" {
		return ErrInvalidOption("style", "style prompt cannot be empty")
	}
	if o.Model == "" {
		return ErrInvalidOption("model", "model cannot be empty")
	}
	if o.OutputDir == "" {
		return ErrInvalidOption("output", "output directory cannot be empty")
	}
	if !SupportedAspectRatio(o.AspectRatio) {
		return ErrInvalidOption("aspect-ratio", fmt.Sprintf("unsupported ratio %q", o.AspectRatio))
	}
	switch o.Diversity {
	case DiversityLow, DiversityMedium, DiversityHigh:
	default:
		return ErrInvalidOption("diversity", fmt.Sprintf("unknown tier %q (use low, medium, or high)", o.Diversity))
	}
	if o.CardIndex < -1 {
		return ErrInvalidOption("card", "card index cannot be negative")
	}
	if o.Parallel < 1 {
		return ErrInvalidOption("parallel", "must be at least 1")
	}
	if o.Parallel > 16 {
		return ErrInvalidOption("parallel", "more than 16 concurrent API calls invites rate limiting")
	}
	if o.PromptStrength <= 0 || o.PromptStrength > 1 {
		return ErrInvalidOption("prompt-strength", "must be in (0, 1]")
	}
	if o.Decks < 1 {
		return ErrInvalidOption("decks", "must be at least 1")
	}
	if o.Decks > 20 {
		return ErrInvalidOption("decks", "more than 20 deck variants per run is not supported")
	}
	if o.MaxRetries < 1 {
		return ErrInvalidOption("max-retries", "must be at least 1")
	}
	if o.CardsFile != "" && o.OracleFile != "" {
		return ErrInvalidOption("oracle-file", "cannot combine --cards-file and --oracle-file")
	}
	return nil
}
