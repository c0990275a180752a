package core

import (
	"testing"
	"time"
)

func validOptions() Options {
	opts := DefaultOptions()
	opts.Style = "dark gothic ink wash style"
	return opts
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Model != ModelFluxSchnell {
		t.Errorf("expected default model %s, got %s", ModelFluxSchnell, opts.Model)
	}
	if opts.AspectRatio != DefaultAspectRatio {
		t.Errorf("expected default aspect %s, got %s", DefaultAspectRatio, opts.AspectRatio)
	}
	if opts.MaxRetries != 5 {
		t.Errorf("expected 5 retries, got %d", opts.MaxRetries)
	}
	if opts.RateLimitDelay != 60*time.Second {
		t.Errorf("expected 60s rate limit delay, got %v", opts.RateLimitDelay)
	}
	if opts.PromptStrength != 0.47 {
		t.Errorf("expected prompt strength 0.47, got %v", opts.PromptStrength)
	}
	if opts.CardIndex != -1 {
		t.Errorf("expected card index -1, got %d", opts.CardIndex)
	}
}

func TestDefaultOptions_EnvOverride(t *testing.T) {
	t.Setenv("DECKFORGE_MAX_RETRIES", "3")
	t.Setenv("DECKFORGE_RATE_LIMIT_DELAY_SECONDS", "10")
	t.Setenv("DECKFORGE_PROMPT_STRENGTH", "0.6")
	opts := DefaultOptions()
	if opts.MaxRetries != 3 {
		t.Errorf("expected 3 retries from env, got %d", opts.MaxRetries)
	}
	if opts.RateLimitDelay != 10*time.Second {
		t.Errorf("expected 10s delay from env, got %v", opts.RateLimitDelay)
	}
	if opts.PromptStrength != 0.6 {
		t.Errorf("expected prompt strength 0.6 from env, got %v", opts.PromptStrength)
	}
}

func TestOptionsValidate_Valid(t *testing.T) {
	opts := validOptions()
	if err := opts.Validate(); err != nil {
		t.Fatalf("valid options rejected: %v", err)
	}
}

func TestOptionsValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Options)
	}{
		{"empty style", func(o *Options) { o.Style = "" }},
		{"empty model", func(o *Options) { o.Model = "" }},
		{"empty output", func(o *Options) { o.OutputDir = "" }},
		{"bad aspect", func(o *Options) { o.AspectRatio = "7:5" }},
		{"bad diversity", func(o *Options) { o.Diversity = "extreme" }},
		{"negative card index", func(o *Options) { o.CardIndex = -2 }},
		{"zero parallel", func(o *Options) { o.Parallel = 0 }},
		{"excessive parallel", func(o *Options) { o.Parallel = 17 }},
		{"zero prompt strength", func(o *Options) { o.PromptStrength = 0 }},
		{"prompt strength above one", func(o *Options) { o.PromptStrength = 1.5 }},
		{"zero decks", func(o *Options) { o.Decks = 0 }},
		{"excessive decks", func(o *Options) { o.Decks = 21 }},
		{"zero retries", func(o *Options) { o.MaxRetries = 0 }},
		{"both deck files", func(o *Options) {
			o.CardsFile = "cards.yaml"
			o.OracleFile = "oracle.yaml"
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := validOptions()
			tc.mutate(&opts)
			err := opts.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			var cfgErr *ConfigError
			if !asConfigError(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %T", err)
			}
		})
	}
}

func asConfigError(err error, target **ConfigError) bool {
	ce, ok := err.(*ConfigError)
	if ok {
		*target = ce
	}
	return ok
}
