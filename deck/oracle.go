// oracle.go loads user-supplied oracle decks from YAML files.
//
// Oracle decks are free-form card sets without suits or fixed size.
// Expected shape:
//
//	deck_name: Moonlight Oracle
//	cards:
//	  - name: The Dawn
//	    description: A sunrise over the sea
//	    keywords: [sunrise, sea]
//	    meaning: New beginnings    # optional
//	    composition: wide shot     # optional
package deck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Oracle deck size limits. The upper bound keeps a single run within a
// sane API budget.
const (
	MinOracleCards = 1
	MaxOracleCards = 100
)

type oracleFile struct {
	DeckName string           `yaml:"deck_name"`
	Cards    []oracleFileCard `yaml:"cards"`
}

type oracleFileCard struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
	Meaning     string   `yaml:"meaning"`
	Composition string   `yaml:"composition"`
}

// LoadOracleDeck loads an oracle deck from a YAML file.
//
// Cards get sequential two-digit numerals from "00" based on their
// position in the file. Decks must contain between MinOracleCards and
// MaxOracleCards cards.
func LoadOracleDeck(path string) (*Deck, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("deck: failed to read oracle file: %w", err)
	}

	var file oracleFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("deck: failed to parse oracle file %s: %w", path, err)
	}

	if len(file.Cards) < MinOracleCards {
		return nil, fmt.Errorf("deck: oracle deck must contain at least %d card, got %d", MinOracleCards, len(file.Cards))
	}
	if len(file.Cards) > MaxOracleCards {
		return nil, fmt.Errorf("deck: oracle deck must contain at most %d cards, got %d", MaxOracleCards, len(file.Cards))
	}

	name := file.DeckName
	if name == "" {
		name = "Oracle"
	}

	d := &Deck{Name: name}
	for i, c := range file.Cards {
		if c.Name == "" {
			return nil, fmt.Errorf("deck: oracle card %d is missing a name", i)
		}
		if c.Description == "" {
			return nil, fmt.Errorf("deck: oracle card %q is missing a description", c.Name)
		}
		d.Major = append(d.Major, Card{
			Name:        c.Name,
			Numeral:     numeral(i),
			Arcana:      ArcanaOracle,
			Description: c.Description,
			KeySymbols:  c.Keywords,
			Composition: c.Composition,
			Meaning:     c.Meaning,
		})
	}
	return d, nil
}
