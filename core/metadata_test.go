package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWriteRunMetadata(t *testing.T) {
	dir := t.TempDir()
	meta := RunMetadata{
		RunID:       "f7b2c1e0",
		DeckName:    "Rider-Waite Tarot",
		Style:       "dark gothic ink wash style",
		Model:       ModelFluxSchnell,
		AspectRatio: "2:3",
		BaseSeed:    42,
		Diversity:   DiversityMedium,
		CardCount:   78,
		Decks:       1,
		StartedAt:   time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC),
		Duration:    3*time.Minute + 12*time.Second,
	}

	if err := WriteRunMetadata(dir, meta); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, MetadataFilename))
	if err != nil {
		t.Fatalf("reading metadata file: %v", err)
	}
	content := string(data)

	for _, want := range []string{
		"run_id: f7b2c1e0",
		"style: dark gothic ink wash style",
		"base_seed: 42",
		"card_count: 78",
		"started_at: 2026-08-23T10:00:00Z",
		"duration: 3m12s",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("metadata missing %q:\n%s", want, content)
		}
	}
}

func TestWriteRunMetadata_MissingDir(t *testing.T) {
	err := WriteRunMetadata(filepath.Join(t.TempDir(), "nope"), RunMetadata{})
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
