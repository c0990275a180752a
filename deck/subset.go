// subset.go implements card subset selection and index lookup.
package deck

import (
	"fmt"
	"strings"
)

// Subset names accepted by Cards and the --cards CLI flag.
const (
	SubsetAll    = "all"
	SubsetMajor  = "major"
	SubsetMinor  = "minor"
	SubsetSample = "sample"
)

// Deck is a loaded set of cards split by arcana. The zero value is not
// usable; construct via Builtin, LoadDeckFile, or LoadOracleDeck.
type Deck struct {
	// Name is the deck display name. "Tarot" for the builtin catalog.
	Name string

	// Major holds the major arcana (or all cards for oracle decks).
	Major []Card

	// Minor holds the suited minor arcana. Empty for oracle decks.
	Minor []Card
}

// Builtin returns the built-in Rider-Waite style tarot deck.
func Builtin() *Deck {
	return &Deck{
		Name:  "Tarot",
		Major: MajorArcana(),
		Minor: MinorArcana(),
	}
}

// All returns every card in the deck in numeral order.
func (d *Deck) All() []Card {
	return append(append([]Card{}, d.Major...), d.Minor...)
}

// Cards returns the cards matching the subset filter: "all", "major",
// "minor", or "sample".
//
// "sample" is a small representative cut used for cheap style trials:
// the first five majors plus the Ace, Two, and King of each suit.
func (d *Deck) Cards(subset string) ([]Card, error) {
	switch strings.ToLower(subset) {
	case SubsetAll, "":
		return d.All(), nil
	case SubsetMajor:
		return append([]Card{}, d.Major...), nil
	case SubsetMinor:
		return append([]Card{}, d.Minor...), nil
	case SubsetSample:
		return d.sample(), nil
	default:
		return nil, fmt.Errorf("deck: unknown card subset %q (use all, major, minor, or sample)", subset)
	}
}

// sample returns the first 5 majors plus the first two pips and the
// King of each suit that is present in the deck.
func (d *Deck) sample() []Card {
	n := 5
	if len(d.Major) < n {
		n = len(d.Major)
	}
	cards := append([]Card{}, d.Major[:n]...)

	for _, suit := range []string{"Wands", "Cups", "Swords", "Pentacles"} {
		var pips []Card
		var king []Card
		for _, c := range d.Minor {
			if c.Suit != suit {
				continue
			}
			if strings.Contains(c.Name, "King") {
				king = append(king, c)
			} else {
				pips = append(pips, c)
			}
		}
		if len(pips) > 2 {
			pips = pips[:2]
		}
		cards = append(cards, pips...)
		cards = append(cards, king...)
	}
	return cards
}

// ByIndex returns the card whose numeral matches the given index
// (0 -> "00"). Returns an error if no card carries that numeral.
func (d *Deck) ByIndex(index int) (Card, error) {
	want := numeral(index)
	for _, c := range d.All() {
		if c.Numeral == want {
			return c, nil
		}
	}
	return Card{}, fmt.Errorf("deck: no card with index %d", index)
}
