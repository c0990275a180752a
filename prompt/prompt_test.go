package prompt

import (
	"strings"
	"testing"

	"deckforge/deck"
)

var testCard = deck.Card{
	Name:        "The Fool",
	Numeral:     "00",
	Arcana:      deck.ArcanaMajor,
	Description: "A young traveler at cliff's edge with a small dog",
	KeySymbols:  []string{"cliff", "knapsack", "white rose"},
}

// TestStylePrefix tests the shared consistency prefix.
func TestStylePrefix(t *testing.T) {
	got := StylePrefix("dark gothic ink wash style")
	want := "consistent art style, dark gothic ink wash style"
	if got != want {
		t.Errorf("StylePrefix() = %q, want %q", got, want)
	}
}

// TestBuild_ContainsAllParts tests prompt assembly order and content.
func TestBuild_ContainsAllParts(t *testing.T) {
	got := Build(testCard, "watercolor style")

	if !strings.HasPrefix(got, "watercolor style, tarot card artwork") {
		t.Errorf("prompt should start with style and medium, got %q", got)
	}
	for _, want := range []string{
		"depicting A young traveler at cliff's edge with a small dog",
		"with cliff, knapsack, white rose",
		"full bleed illustration",
		"no border",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q:\n%s", want, got)
		}
	}
}

// TestBuild_IncludesComposition tests the optional composition hint.
func TestBuild_IncludesComposition(t *testing.T) {
	card := testCard
	card.Composition = "centered full-body figure"

	got := Build(card, "oil painting")
	if !strings.Contains(got, "centered full-body figure") {
		t.Errorf("prompt missing composition hint:\n%s", got)
	}

	// Composition sits between symbols and the full-bleed suffix.
	compIdx := strings.Index(got, "centered full-body figure")
	bleedIdx := strings.Index(got, "full bleed illustration")
	if compIdx > bleedIdx {
		t.Error("composition should precede the full-bleed suffix")
	}
}

// TestBuildNegative_Default tests the bare boilerplate.
func TestBuildNegative_Default(t *testing.T) {
	if got := BuildNegative(""); got != DefaultNegative {
		t.Errorf("BuildNegative(\"\") = %q, want DefaultNegative", got)
	}
}

// TestBuildNegative_Extra tests appending user terms.
func TestBuildNegative_Extra(t *testing.T) {
	got := BuildNegative("photorealistic")
	if !strings.HasPrefix(got, DefaultNegative) {
		t.Error("extra terms should follow the default boilerplate")
	}
	if !strings.HasSuffix(got, ", photorealistic") {
		t.Errorf("expected extra suffix, got %q", got)
	}
}

// TestBuildCardBack tests the deck back prompt.
func TestBuildCardBack(t *testing.T) {
	got := BuildCardBack("art nouveau style")
	if !strings.HasPrefix(got, "art nouveau style, ornate tarot card back design") {
		t.Errorf("card back prompt should open with style and subject, got %q", got)
	}
	if !strings.Contains(got, "symmetrical") {
		t.Errorf("card back prompt should ask for symmetry, got %q", got)
	}
	if !strings.Contains(got, "no border") {
		t.Errorf("card back prompt should carry the full-bleed boilerplate, got %q", got)
	}
}

// TestValidate tests prompt validation rules.
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		prompt  string
		wantErr bool
	}{
		{"valid", "a sunset over mountains", false},
		{"empty", "", true},
		{"whitespace only", "   \t\n", true},
		{"null byte", "bad\x00prompt", true},
		{"too long", strings.Repeat("x", MaxPromptLength+1), true},
		{"at limit", strings.Repeat("x", MaxPromptLength), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.prompt)
			if tc.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// TestSanitize tests whitespace trimming.
func TestSanitize(t *testing.T) {
	if got := Sanitize("  padded prompt \n"); got != "padded prompt" {
		t.Errorf("Sanitize() = %q", got)
	}
}
