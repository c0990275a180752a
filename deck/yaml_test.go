package deck

import (
	"os"
	"path/filepath"
	"testing"
)

const testDeckYAML = `
deck_name: Custom Tarot
major_arcana:
  - name: The Fool
    numeral: "00"
    description: A wanderer at the edge of a cliff
    key_symbols: [cliff, dog]
  - name: The Magician
    numeral: "01"
    description: A conjurer at a table
    key_symbols: [wand, table]
    composition: centered full-body figure
minor_arcana:
  wands:
    pips:
      "1": {description: A single wand, key_symbols: [wand]}
      "2": {description: Two wands, key_symbols: [two wands]}
    court:
      Page: {description: A page with a wand, key_symbols: [page, wand]}
  coins:
    pips:
      "1": {description: A single coin, key_symbols: [coin]}
`

func writeDeckYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write deck file: %v", err)
	}
	return path
}

// TestLoadDeckFile_MajorArcana tests major arcana field mapping.
func TestLoadDeckFile_MajorArcana(t *testing.T) {
	d, err := LoadDeckFile(writeDeckYAML(t, testDeckYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Name != "Custom Tarot" {
		t.Errorf("deck name = %q, want Custom Tarot", d.Name)
	}
	if len(d.Major) != 2 {
		t.Fatalf("expected 2 major arcana, got %d", len(d.Major))
	}
	if d.Major[0].Name != "The Fool" || d.Major[0].Numeral != "00" {
		t.Errorf("unexpected first major: %+v", d.Major[0])
	}
	if d.Major[1].Composition != "centered full-body figure" {
		t.Errorf("composition = %q", d.Major[1].Composition)
	}
}

// TestLoadDeckFile_MinorNumbering tests suit-relative sequential numbering.
func TestLoadDeckFile_MinorNumbering(t *testing.T) {
	d, err := LoadDeckFile(writeDeckYAML(t, testDeckYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wands []Card
	for _, c := range d.Minor {
		if c.Suit == "Wands" {
			wands = append(wands, c)
		}
	}
	if len(wands) != 3 {
		t.Fatalf("expected 3 wands, got %d", len(wands))
	}
	if wands[0].Name != "Ace of Wands" || wands[0].Numeral != "22" {
		t.Errorf("first wand = %s/%s, want Ace of Wands/22", wands[0].Name, wands[0].Numeral)
	}
	if wands[1].Numeral != "23" {
		t.Errorf("second wand numeral = %q, want 23", wands[1].Numeral)
	}
	if wands[2].Name != "Page of Wands" || wands[2].Numeral != "24" {
		t.Errorf("court wand = %s/%s, want Page of Wands/24", wands[2].Name, wands[2].Numeral)
	}
}

// TestLoadDeckFile_CoinsAliasesPentacles tests the coins -> Pentacles mapping.
func TestLoadDeckFile_CoinsAliasesPentacles(t *testing.T) {
	d, err := LoadDeckFile(writeDeckYAML(t, testDeckYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var found *Card
	for i, c := range d.Minor {
		if c.Suit == "Pentacles" {
			found = &d.Minor[i]
			break
		}
	}
	if found == nil {
		t.Fatal("expected a Pentacles card from the coins suit")
	}
	if found.Name != "Ace of Pentacles" {
		t.Errorf("name = %q, want Ace of Pentacles", found.Name)
	}
	if found.Numeral != "64" {
		t.Errorf("numeral = %q, want 64", found.Numeral)
	}
}

// TestLoadDeckFile_RejectsEmptyFile tests that a card-less deck errors.
func TestLoadDeckFile_RejectsEmptyFile(t *testing.T) {
	if _, err := LoadDeckFile(writeDeckYAML(t, "deck_name: Nothing\n")); err == nil {
		t.Error("expected error for deck with no cards, got nil")
	}
}

// TestLoadDeckFile_RejectsIncompleteMajor tests validation of required fields.
func TestLoadDeckFile_RejectsIncompleteMajor(t *testing.T) {
	yaml := `
major_arcana:
  - name: Broken
    numeral: "00"
`
	if _, err := LoadDeckFile(writeDeckYAML(t, yaml)); err == nil {
		t.Error("expected error for card missing description, got nil")
	}
}
