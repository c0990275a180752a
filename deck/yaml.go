// yaml.go loads full tarot deck definitions from YAML files.
//
// A deck file overrides the builtin catalog while keeping the same
// numbering scheme. Expected shape:
//
//	major_arcana:
//	  - name: The Fool
//	    numeral: "00"
//	    description: ...
//	    key_symbols: [cliff, knapsack]
//	    composition: ...        # optional
//	minor_arcana:
//	  wands:
//	    pips:
//	      "1": {description: ..., key_symbols: [...]}
//	    court:
//	      Page: {description: ..., key_symbols: [...]}
//
// The suit key "coins" is accepted as an alias of Pentacles.
package deck

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type deckFile struct {
	Name        string                  `yaml:"deck_name"`
	MajorArcana []deckFileCard          `yaml:"major_arcana"`
	MinorArcana map[string]deckFileSuit `yaml:"minor_arcana"`
}

type deckFileCard struct {
	Name        string   `yaml:"name"`
	Numeral     string   `yaml:"numeral"`
	Description string   `yaml:"description"`
	KeySymbols  []string `yaml:"key_symbols"`
	Composition string   `yaml:"composition"`
}

type deckFileSuit struct {
	Pips  map[string]deckFileCard `yaml:"pips"`
	Court map[string]deckFileCard `yaml:"court"`
}

// suitStartIndices maps lowercase suit keys to their numeral range start.
var suitStartIndices = map[string]int{
	"wands":     wandsStart,
	"cups":      cupsStart,
	"swords":    swordsStart,
	"pentacles": pentaclesStart,
	"coins":     pentaclesStart,
}

// suitTitles maps lowercase suit keys to the Suit field value.
var suitTitles = map[string]string{
	"wands":     "Wands",
	"cups":      "Cups",
	"swords":    "Swords",
	"pentacles": "Pentacles",
	"coins":     "Pentacles",
}

// LoadDeckFile loads a tarot deck definition from a YAML file.
//
// Major arcana keep the numerals declared in the file. Minor arcana are
// numbered sequentially from each suit's fixed start index, pips first
// (rank order 1..10) then court (Page, Knight, Queen, King), matching
// the builtin catalog.
func LoadDeckFile(path string) (*Deck, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("deck: failed to read deck file: %w", err)
	}

	var file deckFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("deck: failed to parse deck file %s: %w", path, err)
	}

	name := file.Name
	if name == "" {
		name = "Tarot"
	}
	d := &Deck{Name: name}

	for _, c := range file.MajorArcana {
		if c.Name == "" || c.Description == "" {
			return nil, fmt.Errorf("deck: major arcana card missing name or description in %s", path)
		}
		d.Major = append(d.Major, Card{
			Name:        c.Name,
			Numeral:     c.Numeral,
			Arcana:      ArcanaMajor,
			Description: c.Description,
			KeySymbols:  c.KeySymbols,
			Composition: c.Composition,
		})
	}

	for _, suitKey := range []string{"wands", "cups", "swords", "pentacles", "coins"} {
		suit, ok := file.MinorArcana[suitKey]
		if !ok {
			continue
		}
		cards, err := suitFromFile(suitKey, suit)
		if err != nil {
			return nil, fmt.Errorf("deck: %s in %s: %w", suitKey, path, err)
		}
		d.Minor = append(d.Minor, cards...)
	}

	if len(d.Major) == 0 && len(d.Minor) == 0 {
		return nil, fmt.Errorf("deck: deck file %s contains no cards", path)
	}
	return d, nil
}

// suitFromFile builds one suit's cards with sequential numbering from
// the suit's fixed start index.
func suitFromFile(suitKey string, suit deckFileSuit) ([]Card, error) {
	start, ok := suitStartIndices[suitKey]
	if !ok {
		return nil, fmt.Errorf("unknown suit %q", suitKey)
	}
	title := suitTitles[suitKey]

	var cards []Card
	i := 0
	for _, rank := range pipRanks {
		spec, ok := suit.Pips[rank]
		if !ok {
			continue
		}
		num, err := strconv.Atoi(rank)
		if err != nil {
			return nil, fmt.Errorf("invalid pip rank %q", rank)
		}
		name := fmt.Sprintf("%d of %s", num, title)
		if num == 1 {
			name = "Ace of " + title
		}
		cards = append(cards, Card{
			Name:        name,
			Numeral:     numeral(start + i),
			Arcana:      ArcanaMinor,
			Suit:        title,
			Description: spec.Description,
			KeySymbols:  spec.KeySymbols,
			Composition: spec.Composition,
		})
		i++
	}
	for _, rank := range courtRanks {
		spec, ok := suit.Court[rank]
		if !ok {
			continue
		}
		cards = append(cards, Card{
			Name:        fmt.Sprintf("%s of %s", rank, title),
			Numeral:     numeral(start + i),
			Arcana:      ArcanaMinor,
			Suit:        title,
			Description: spec.Description,
			KeySymbols:  spec.KeySymbols,
			Composition: spec.Composition,
		})
		i++
	}
	return cards, nil
}
