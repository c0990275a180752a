package deck

import (
	"fmt"
	"testing"
)

// TestAllCards_Count tests the full catalog has exactly 78 cards.
func TestAllCards_Count(t *testing.T) {
	cards := AllCards()
	if len(cards) != 78 {
		t.Fatalf("expected 78 cards, got %d", len(cards))
	}
	if len(MajorArcana()) != 22 {
		t.Errorf("expected 22 major arcana, got %d", len(MajorArcana()))
	}
	if len(MinorArcana()) != 56 {
		t.Errorf("expected 56 minor arcana, got %d", len(MinorArcana()))
	}
}

// TestAllCards_NumeralsSequentialAndUnique tests the only structural
// invariant: numerals are unique and run 00..77 in order.
func TestAllCards_NumeralsSequentialAndUnique(t *testing.T) {
	cards := AllCards()
	seen := make(map[string]string, len(cards))

	for i, c := range cards {
		want := fmt.Sprintf("%02d", i)
		if c.Numeral != want {
			t.Errorf("card %d (%s): numeral = %q, want %q", i, c.Name, c.Numeral, want)
		}
		if prev, ok := seen[c.Numeral]; ok {
			t.Errorf("duplicate numeral %q: %s and %s", c.Numeral, prev, c.Name)
		}
		seen[c.Numeral] = c.Name
	}
}

// TestMinorArcana_SuitRanges tests each suit occupies its fixed numeral range.
func TestMinorArcana_SuitRanges(t *testing.T) {
	ranges := map[string]int{
		"Wands":     wandsStart,
		"Cups":      cupsStart,
		"Swords":    swordsStart,
		"Pentacles": pentaclesStart,
	}

	for suit, start := range ranges {
		t.Run(suit, func(t *testing.T) {
			var suited []Card
			for _, c := range MinorArcana() {
				if c.Suit == suit {
					suited = append(suited, c)
				}
			}
			if len(suited) != 14 {
				t.Fatalf("expected 14 %s cards, got %d", suit, len(suited))
			}
			if suited[0].Numeral != fmt.Sprintf("%02d", start) {
				t.Errorf("first %s numeral = %q, want %q", suit, suited[0].Numeral, fmt.Sprintf("%02d", start))
			}
			if suited[0].Name != "Ace of "+suit {
				t.Errorf("first %s card = %q, want Ace", suit, suited[0].Name)
			}
			if suited[13].Name != "King of "+suit {
				t.Errorf("last %s card = %q, want King", suit, suited[13].Name)
			}
		})
	}
}

// TestAllCards_HaveDescriptionsAndSymbols tests catalog completeness.
func TestAllCards_HaveDescriptionsAndSymbols(t *testing.T) {
	for _, c := range AllCards() {
		if c.Description == "" {
			t.Errorf("%s has empty description", c.Name)
		}
		if len(c.KeySymbols) == 0 {
			t.Errorf("%s has no key symbols", c.Name)
		}
	}
}
