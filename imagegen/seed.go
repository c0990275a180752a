// seed.go derives per-card sampler seeds.
package imagegen

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// deckSeedStride separates the seed spaces of deck variants so cards
// across decks never share a seed.
const deckSeedStride = 1000

// DeriveSeed returns the seed for a card at the given catalog index.
// The mapping is base + index, so a run is fully reproducible from
// its base seed alone. This is a pure function with no side effects.
func DeriveSeed(baseSeed int64, cardIndex int) int64 {
	return baseSeed + int64(cardIndex)
}

// DeckBaseSeed returns the base seed for the nth deck variant
// (0-based) of a multi-deck run.
func DeckBaseSeed(baseSeed int64, deckIndex int) int64 {
	return baseSeed + int64(deckIndex)*deckSeedStride
}

// RandomSeed returns a non-negative random base seed from the OS
// entropy source.
func RandomSeed() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("imagegen: reading random seed: %w", err)
	}
	seed := int64(binary.BigEndian.Uint64(buf[:]) >> 1)
	return seed, nil
}
