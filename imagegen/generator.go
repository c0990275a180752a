// generator.go implements the Generator that orchestrates the full
// pipeline: prompt construction, seeded generation with retry,
// download, aspect crop, and file naming. Multi-deck runs get
// per-deck subdirectories and shifted seed spaces.
package imagegen

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"deckforge/core"
	"deckforge/deck"
	"deckforge/imaging"
	"deckforge/logging"
	"deckforge/metrics"
	"deckforge/prompt"
	"deckforge/replicate"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CardBackFilename is the output name for the symmetric deck back.
const CardBackFilename = "card_back.png"

// Generator runs the end-to-end deck generation pipeline.
//
// Thread safety: a Generator is safe for concurrent use, but a single
// Run already fans out internally, so callers normally run one at a
// time.
type Generator struct {
	provider   Provider
	downloader *Downloader
	logger     *logging.Logger
	opts       core.Options
	stats      *metrics.Store

	// backoffUnit scales the exponential retry delay. One second in
	// production; tests shrink it.
	backoffUnit time.Duration
}

// CardResult records one generated card image.
type CardResult struct {
	Card     deck.Card
	Path     string
	Seed     int64
	Attempts int
}

// RunResult summarizes a completed generation run.
type RunResult struct {
	RunID    string
	Results  []CardResult
	Archived string
	Duration time.Duration
}

// NewGenerator creates a generator. Options must already be
// validated.
func NewGenerator(provider Provider, downloader *Downloader, logger *logging.Logger, opts core.Options) (*Generator, error) {
	if provider == nil {
		return nil, fmt.Errorf("imagegen: provider cannot be nil")
	}
	if downloader == nil {
		return nil, fmt.Errorf("imagegen: downloader cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("imagegen: logger cannot be nil")
	}
	return &Generator{
		provider:    provider,
		downloader:  downloader,
		logger:      logger.Named("generator"),
		opts:        opts,
		stats:       metrics.NewStore(metrics.DefaultHistoryCapacity),
		backoffUnit: time.Second,
	}, nil
}

// Stats returns the aggregated generation statistics recorded so far.
func (g *Generator) Stats() metrics.RunStats {
	return g.stats.Stats()
}

// Run generates every card in the list, once per requested deck
// variant, and writes run metadata into the output directory.
//
// A card's permanent failure aborts that card only: the other cards
// run to completion and their files are written. When any card failed,
// Run returns the partial result together with the joined per-card
// errors.
func (g *Generator) Run(ctx context.Context, d deck.Deck, cards []deck.Card) (*RunResult, error) {
	if len(cards) == 0 {
		return nil, fmt.Errorf("imagegen: no cards to generate")
	}

	start := time.Now()
	runID := uuid.NewString()[:8]

	archived, err := core.ArchiveOutputDir(g.opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if archived != "" {
		g.logger.Info("Archived previous output",
			zap.String("archive_dir", archived))
	}

	g.logger.Info("Starting generation run",
		zap.String("run_id", runID),
		zap.String("deck", d.Name),
		zap.String("model", g.provider.Name()),
		zap.Int("cards", len(cards)),
		zap.Int("decks", g.opts.Decks),
		zap.Int64("base_seed", g.opts.BaseSeed))

	result := &RunResult{RunID: runID, Archived: archived}
	var failures []error
	for deckIdx := 0; deckIdx < g.opts.Decks; deckIdx++ {
		outDir := g.opts.OutputDir
		if g.opts.Decks > 1 {
			outDir = filepath.Join(outDir, fmt.Sprintf("deck_%02d", deckIdx+1))
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return nil, fmt.Errorf("imagegen: creating output dir: %w", err)
		}

		baseSeed := DeckBaseSeed(g.opts.BaseSeed, deckIdx)
		results, err := g.generateDeck(ctx, cards, outDir, baseSeed)
		result.Results = append(result.Results, results...)
		if err != nil {
			failures = append(failures, err)
		}
		if ctx.Err() != nil {
			break
		}
	}

	result.Duration = time.Since(start)
	meta := core.RunMetadata{
		RunID:       runID,
		DeckName:    d.Name,
		Style:       g.opts.Style,
		Model:       g.provider.Name(),
		AspectRatio: g.opts.AspectRatio,
		BaseSeed:    g.opts.BaseSeed,
		Diversity:   g.opts.Diversity,
		CardCount:   len(cards),
		Decks:       g.opts.Decks,
		StartedAt:   start,
		Duration:    result.Duration,
	}
	if err := core.WriteRunMetadata(g.opts.OutputDir, meta); err != nil {
		return nil, err
	}

	if len(failures) > 0 {
		g.logger.Warn("Generation run finished with failures",
			zap.String("run_id", runID),
			zap.Int("images", len(result.Results)),
			zap.Int("failed_decks", len(failures)))
		return result, errors.Join(failures...)
	}

	g.logger.Info("Generation run complete",
		zap.String("run_id", runID),
		zap.Int("images", len(result.Results)),
		zap.Duration("duration", result.Duration))
	return result, nil
}

// generateDeck produces one deck variant into outDir. When the
// provider supports img2img, the first card (or a user-supplied key
// card image) anchors the style of the rest of the deck.
//
// Card failures are isolated: every card runs to completion and the
// successes are returned alongside the joined errors. Only a key card
// failure aborts the deck, since the remaining cards would have no
// style anchor.
func (g *Generator) generateDeck(ctx context.Context, cards []deck.Card, outDir string, baseSeed int64) ([]CardResult, error) {
	dims, err := core.AspectDimensions(g.opts.AspectRatio)
	if err != nil {
		return nil, err
	}

	reference := ""
	results := make([]CardResult, len(cards))
	done := make([]bool, len(cards))

	if g.provider.SupportsImageReference() {
		if g.opts.KeyCardPath != "" {
			reference, err = encodeImageDataURI(g.opts.KeyCardPath)
			if err != nil {
				return nil, err
			}
			g.logger.Info("Using key card image",
				zap.String("path", g.opts.KeyCardPath))
		} else {
			// Generate the first card unanchored and use it as the
			// style key for the rest of the deck.
			first, err := g.generateCard(ctx, cards[0], baseSeed, "", dims, outDir)
			if err != nil {
				return nil, err
			}
			results[0] = first
			done[0] = true
			reference, err = encodeImageDataURI(first.Path)
			if err != nil {
				return nil, err
			}
			g.logger.Info("Generated key card",
				zap.String("card", cards[0].Name),
				zap.String("path", first.Path))
		}
	}

	var group errgroup.Group
	group.SetLimit(g.opts.Parallel)
	errs := make([]error, len(cards))
	for i, card := range cards {
		if done[i] {
			continue
		}
		i, card := i, card
		group.Go(func() error {
			seed := DeriveSeed(baseSeed, i)
			res, err := g.generateCard(ctx, card, seed, reference, dims, outDir)
			if err != nil {
				errs[i] = fmt.Errorf("card %s: %w", card.Name, err)
				return nil
			}
			results[i] = res
			return nil
		})
	}
	group.Wait()

	completed := results[:0:0]
	for i := range results {
		if errs[i] == nil && results[i].Path != "" {
			completed = append(completed, results[i])
		}
	}
	return completed, errors.Join(errs...)
}

// generateCard produces a single card image: generate with retry,
// download, crop to the target aspect with seeded jitter, and write
// <numeral>_<slug>.png.
func (g *Generator) generateCard(ctx context.Context, card deck.Card, seed int64, reference string, dims core.Dimensions, outDir string) (CardResult, error) {
	start := time.Now()
	result, err := g.generateCardImage(ctx, card, seed, reference, dims, outDir)

	rec := metrics.CardRecord{
		Card:     card.Name,
		Seed:     seed,
		Attempts: result.Attempts,
		Duration: time.Since(start),
		Status:   metrics.CardStatusSuccess,
	}
	if err != nil {
		rec.Status = metrics.CardStatusError
		rec.ErrorMsg = err.Error()
	}
	g.stats.Record(rec)
	return result, err
}

func (g *Generator) generateCardImage(ctx context.Context, card deck.Card, seed int64, reference string, dims core.Dimensions, outDir string) (CardResult, error) {
	job := GenerationJob{
		Prompt:         prompt.Build(card, prompt.StylePrefix(g.opts.Style)),
		NegativePrompt: prompt.BuildNegative(g.opts.NegativeExtra),
		Seed:           seed,
		AspectRatio:    g.opts.AspectRatio,
		Width:          dims.Width,
		Height:         dims.Height,
		ReferenceImage: reference,
		PromptStrength: g.opts.PromptStrength,
	}
	if err := prompt.Validate(job.Prompt); err != nil {
		return CardResult{}, err
	}

	data, attempts, err := g.generateWithRetry(ctx, card.Name, job)
	if err != nil {
		return CardResult{Attempts: attempts}, err
	}

	cropped, err := imaging.CropBytes(data, dims.Width, dims.Height, &seed, imaging.Diversity(g.opts.Diversity))
	if err != nil {
		return CardResult{Attempts: attempts}, err
	}

	path := filepath.Join(outDir, card.Filename())
	if err := os.WriteFile(path, cropped, 0o644); err != nil {
		return CardResult{Attempts: attempts}, fmt.Errorf("imagegen: writing card image: %w", err)
	}

	g.logger.Info("Generated card",
		zap.String("card", card.Name),
		zap.Int64("seed", seed),
		zap.Int("attempts", attempts),
		zap.String("path", path))
	return CardResult{Card: card, Path: path, Seed: seed, Attempts: attempts}, nil
}

// generateWithRetry produces one image's bytes under the run's retry
// policy: rate-limited attempts wait a fixed delay, other retryable
// failures back off exponentially, and non-retryable errors fail
// immediately. Each attempt covers both the prediction and the
// download, since output URLs are temporary and a failed download
// needs a fresh prediction.
func (g *Generator) generateWithRetry(ctx context.Context, cardName string, job GenerationJob) ([]byte, int, error) {
	var lastErr error
	for attempt := 1; attempt <= g.opts.MaxRetries; attempt++ {
		data, err := g.attemptImage(ctx, job)
		if err == nil {
			return data, attempt, nil
		}
		lastErr = err

		if !replicate.IsRetryable(err) {
			return nil, attempt, err
		}
		if attempt == g.opts.MaxRetries {
			break
		}

		delay := time.Duration(1<<uint(attempt)) * g.backoffUnit
		if replicate.IsRateLimited(err) {
			delay = g.opts.RateLimitDelay
		}
		g.logger.Warn("Generation attempt failed, retrying",
			zap.String("card", cardName),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, attempt, ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil, g.opts.MaxRetries, fmt.Errorf("imagegen: giving up after %d attempts: %w", g.opts.MaxRetries, lastErr)
}

// attemptImage runs a single generate-and-download attempt.
func (g *Generator) attemptImage(ctx context.Context, job GenerationJob) ([]byte, error) {
	url, err := g.provider.Generate(ctx, job)
	if err != nil {
		return nil, err
	}
	data, _, err := g.downloader.DownloadBytes(ctx, url)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// GenerateCardBack produces the shared deck back: one generated
// image, cropped to the target aspect, then mirrored into 4-way
// symmetry. Returns the written file path.
func (g *Generator) GenerateCardBack(ctx context.Context, seed int64) (string, error) {
	dims, err := core.AspectDimensions(g.opts.AspectRatio)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(g.opts.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("imagegen: creating output dir: %w", err)
	}

	job := GenerationJob{
		Prompt:         prompt.BuildCardBack(prompt.StylePrefix(g.opts.Style)),
		NegativePrompt: prompt.BuildNegative(g.opts.NegativeExtra),
		Seed:           seed,
		AspectRatio:    g.opts.AspectRatio,
		Width:          dims.Width,
		Height:         dims.Height,
	}

	data, attempts, err := g.generateWithRetry(ctx, "card back", job)
	if err != nil {
		return "", err
	}

	cropped, err := imaging.CropBytes(data, dims.Width, dims.Height, &seed, imaging.Diversity(g.opts.Diversity))
	if err != nil {
		return "", err
	}
	mirrored, err := imaging.SymmetrizeBytes(cropped)
	if err != nil {
		return "", err
	}

	path := filepath.Join(g.opts.OutputDir, CardBackFilename)
	if err := os.WriteFile(path, mirrored, 0o644); err != nil {
		return "", fmt.Errorf("imagegen: writing card back: %w", err)
	}

	g.logger.Info("Generated card back",
		zap.Int64("seed", seed),
		zap.Int("attempts", attempts),
		zap.String("path", path))
	return path, nil
}

// encodeImageDataURI reads a local image file and encodes it as a
// data URI suitable for img2img reference input.
func encodeImageDataURI(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", core.ErrMissingInput(path, err.Error())
	}
	mime := "image/jpeg"
	if imaging.IsPNG(data) {
		mime = "image/png"
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)), nil
}
