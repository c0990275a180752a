// metadata.go records run parameters next to the generated images.
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MetadataFilename is the per-run parameter record written into the
// output directory.
const MetadataFilename = "run_metadata.txt"

// RunMetadata captures the parameters of a completed generation run so
// it can be reproduced later.
type RunMetadata struct {
	RunID       string
	DeckName    string
	Style       string
	Model       string
	AspectRatio string
	BaseSeed    int64
	Diversity   string
	CardCount   int
	Decks       int
	StartedAt   time.Time
	Duration    time.Duration
}

// WriteRunMetadata writes the metadata record into dir as a plain text
// key: value file.
func WriteRunMetadata(dir string, meta RunMetadata) error {
	var b strings.Builder
	fmt.Fprintf(&b, "run_id: %s\n", meta.RunID)
	fmt.Fprintf(&b, "deck_name: %s\n", meta.DeckName)
	fmt.Fprintf(&b, "style: %s\n", meta.Style)
	fmt.Fprintf(&b, "model: %s\n", meta.Model)
	fmt.Fprintf(&b, "aspect_ratio: %s\n", meta.AspectRatio)
	fmt.Fprintf(&b, "base_seed: %d\n", meta.BaseSeed)
	fmt.Fprintf(&b, "diversity: %s\n", meta.Diversity)
	fmt.Fprintf(&b, "card_count: %d\n", meta.CardCount)
	fmt.Fprintf(&b, "decks: %d\n", meta.Decks)
	fmt.Fprintf(&b, "started_at: %s\n", meta.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "duration: %s\n", meta.Duration.Round(time.Millisecond))

	path := filepath.Join(dir, MetadataFilename)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("core: writing run metadata: %w", err)
	}
	return nil
}
