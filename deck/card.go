// Package deck defines the card catalog for deck generation.
//
// card.go contains the Card record and its derived naming atoms.
// Cards are immutable value types; the catalog in catalog.go and the
// YAML loaders in yaml.go and oracle.go are the only producers.
package deck

import (
	"fmt"
	"strings"
)

// Arcana classifies a card within a deck.
type Arcana string

const (
	// ArcanaMajor is one of the 22 major arcana (The Fool .. The World).
	ArcanaMajor Arcana = "major"

	// ArcanaMinor is one of the 56 suited minor arcana.
	ArcanaMinor Arcana = "minor"

	// ArcanaOracle is a card from a user-supplied oracle deck.
	ArcanaOracle Arcana = "oracle"
)

// Card is an immutable card definition.
//
// Numeral is a two-digit string assigned sequentially within fixed
// ranges (majors 00-21, then 14 per suit). Uniqueness of the numeral
// within a deck is the only structural invariant.
type Card struct {
	// Name is the display name, e.g. "The Fool" or "Ace of Cups".
	Name string

	// Numeral is the two-digit position within the deck, e.g. "00".
	Numeral string

	// Arcana is the card classification (major, minor, oracle).
	Arcana Arcana

	// Suit is the minor arcana suit ("Wands", "Cups", "Swords",
	// "Pentacles"). Empty for major arcana and oracle cards.
	Suit string

	// Description is the scene/imagery description fed to the prompt
	// builder.
	Description string

	// KeySymbols is the ordered list of symbols the image should contain.
	KeySymbols []string

	// Composition is an optional framing hint, e.g. "centered full-body
	// figure".
	Composition string

	// Meaning is an optional divinatory meaning. Only populated for
	// oracle decks; it is recorded in run metadata but never sent to
	// the image model.
	Meaning string
}

// Slug returns a filesystem-safe identifier derived from the card name.
// This is a pure function with no side effects.
//
// Example:
//
//	Card{Name: "The Fool"}.Slug()      // "the_fool"
//	Card{Name: "Cliff's Edge"}.Slug()  // "cliffs_edge"
func (c Card) Slug() string {
	s := strings.ToLower(c.Name)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "'", "")
	return s
}

// Filename returns the output filename for the card image,
// "<numeral>_<slug>.png".
func (c Card) Filename() string {
	return fmt.Sprintf("%s_%s.png", c.Numeral, c.Slug())
}

// numeral formats a deck index as a two-digit numeral string.
func numeral(index int) string {
	return fmt.Sprintf("%02d", index)
}
