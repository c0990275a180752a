package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"deckforge/core"
)

func TestLoadDeck_Builtin(t *testing.T) {
	opts := core.DefaultOptions()
	d, cards, err := loadDeck(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Name != "Tarot" {
		t.Errorf("builtin deck name = %q, want Tarot", d.Name)
	}
	if len(cards) != 78 {
		t.Errorf("expected 78 cards, got %d", len(cards))
	}
}

func TestLoadDeck_SampleSubset(t *testing.T) {
	opts := core.DefaultOptions()
	opts.Subset = "sample"
	_, cards, err := loadDeck(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 17 {
		t.Errorf("expected 17 sample cards, got %d", len(cards))
	}
}

func TestLoadDeck_SingleCardByIndex(t *testing.T) {
	opts := core.DefaultOptions()
	opts.CardIndex = 1
	_, cards, err := loadDeck(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("expected a single card, got %d", len(cards))
	}
	if cards[0].Name != "The Magician" {
		t.Errorf("card = %q, want The Magician", cards[0].Name)
	}
}

func TestLoadDeck_CardIndexOutOfRange(t *testing.T) {
	opts := core.DefaultOptions()
	opts.CardIndex = 99
	if _, _, err := loadDeck(opts); err == nil {
		t.Error("expected error for out of range card index")
	}
}

func TestLoadDeck_UnknownSubset(t *testing.T) {
	opts := core.DefaultOptions()
	opts.Subset = "court"
	if _, _, err := loadDeck(opts); err == nil {
		t.Error("expected error for unknown subset")
	}
}

func TestLoadDeck_OracleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oracle.yaml")
	content := `deck_name: Moon Phases
cards:
  - name: New Moon
    description: a dark sky holding a faint silver circle
  - name: Full Moon
    description: a luminous full moon over still water
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := core.DefaultOptions()
	opts.OracleFile = path
	d, cards, err := loadDeck(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Name != "Moon Phases" {
		t.Errorf("deck name = %q", d.Name)
	}
	if len(cards) != 2 {
		t.Errorf("expected 2 oracle cards, got %d", len(cards))
	}
}

func TestBuildProvider_MissingReplicateToken(t *testing.T) {
	t.Setenv("REPLICATE_API_TOKEN", "")
	opts := core.DefaultOptions()
	_, err := buildProvider(opts)
	if err == nil {
		t.Fatal("expected error without API token")
	}
	var cfgErr *core.ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Code != core.ErrCodeMissingAuth {
		t.Errorf("expected missing auth config error, got %v", err)
	}
}

func TestBuildProvider_MissingOpenAIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	opts := core.DefaultOptions()
	opts.Model = core.ModelDallE3
	_, err := buildProvider(opts)
	if err == nil {
		t.Fatal("expected error without API key")
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("error should name the env var: %v", err)
	}
}

func TestBuildProvider_Replicate(t *testing.T) {
	t.Setenv("REPLICATE_API_TOKEN", "r8_test")
	opts := core.DefaultOptions()
	provider, err := buildProvider(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.Name() != core.ModelFluxSchnell {
		t.Errorf("provider name = %q", provider.Name())
	}
}

func TestPromptForStyle(t *testing.T) {
	cmd := generateCmd
	cmd.SetIn(strings.NewReader("dark gothic ink wash style\n"))
	cmd.SetOut(&bytes.Buffer{})

	style, err := promptForStyle(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if style != "dark gothic ink wash style" {
		t.Errorf("style = %q", style)
	}
}

func TestPromptForStyle_Empty(t *testing.T) {
	cmd := generateCmd
	cmd.SetIn(strings.NewReader("\n"))
	cmd.SetOut(&bytes.Buffer{})

	if _, err := promptForStyle(cmd); err == nil {
		t.Error("expected error for empty style")
	}
}

func TestCardsCommand_ListsCatalog(t *testing.T) {
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs([]string{"cards", "--cards", "major"})

	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	listing := out.String()
	for _, want := range []string{"The Fool", "00_the_fool.png", "The World"} {
		if !strings.Contains(listing, want) {
			t.Errorf("listing missing %q", want)
		}
	}
	if strings.Contains(listing, "Ace of Wands") {
		t.Error("major subset should not list minor arcana")
	}
}
