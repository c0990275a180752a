// Package prompt builds the positive/negative prompt pair for each card.
//
// Prompts are plain string joins: a shared style prefix, the card's
// imagery description, its key symbols, an optional composition hint,
// and fixed boilerplate discouraging borders and text. The same style
// prefix is used for every card in a run to maximize stylistic
// coherence across the deck.
package prompt

import (
	"fmt"
	"strings"

	"deckforge/deck"
)

// MaxPromptLength is the maximum accepted prompt length in bytes.
// Hosted models reject or silently truncate far shorter prompts, but
// the bound mainly guards against runaway user input.
const MaxPromptLength = 4096

// DefaultNegative is the boilerplate negative prompt applied to every
// card. It discourages text, borders, and common generation artifacts
// so the output works as full-bleed card art.
const DefaultNegative = "text, letters, words, title, label, card name, typography, font, " +
	"watermark, signature, blurry, low quality, deformed, ugly, duplicate, " +
	"cropped, out of frame, bad anatomy, border, frame, card border, " +
	"decorative border, ornate frame, white border, black border, any border, " +
	"edge decoration, margin, matting"

// fullBleedSuffix is appended to every positive prompt to push the
// model toward edge-to-edge artwork.
const fullBleedSuffix = "full bleed illustration extending to all edges, " +
	"no border, no frame, no text, no title, seamless edge-to-edge artwork"

// StylePrefix wraps the user's style string into the shared prefix
// prepended to every card prompt.
// This is a pure function with no side effects.
func StylePrefix(style string) string {
	return fmt.Sprintf("consistent art style, %s", style)
}

// Build constructs the positive prompt for a card.
//
// Layout: "<style>, tarot card artwork, depicting <description>,
// with <symbols>[, <composition>], <full bleed boilerplate>".
func Build(card deck.Card, style string) string {
	parts := []string{
		fmt.Sprintf("%s, tarot card artwork", style),
		fmt.Sprintf("depicting %s", card.Description),
		fmt.Sprintf("with %s", strings.Join(card.KeySymbols, ", ")),
	}
	if card.Composition != "" {
		parts = append(parts, card.Composition)
	}
	parts = append(parts, fullBleedSuffix)
	return strings.Join(parts, ", ")
}

// BuildCardBack constructs the positive prompt for the shared deck
// back. The design brief asks for a pattern that survives the 4-way
// mirror applied afterwards.
func BuildCardBack(style string) string {
	return strings.Join([]string{
		fmt.Sprintf("%s, ornate tarot card back design", style),
		"intricate symmetrical pattern, mandala-like geometry",
		"rich repeating motifs",
		fullBleedSuffix,
	}, ", ")
}

// BuildNegative constructs the negative prompt, appending any extra
// user-supplied terms to the default boilerplate.
func BuildNegative(extra string) string {
	if extra == "" {
		return DefaultNegative
	}
	return fmt.Sprintf("%s, %s", DefaultNegative, extra)
}

// Validate checks a prompt string before it is sent to a provider.
// Returns an error for empty prompts, embedded NUL bytes, or prompts
// over MaxPromptLength.
func Validate(p string) error {
	if strings.TrimSpace(p) == "" {
		return fmt.Errorf("prompt: prompt cannot be empty")
	}
	if strings.ContainsRune(p, '\x00') {
		return fmt.Errorf("prompt: prompt contains null bytes")
	}
	if len(p) > MaxPromptLength {
		return fmt.Errorf("prompt: prompt length %d exceeds maximum %d", len(p), MaxPromptLength)
	}
	return nil
}

// Sanitize trims surrounding whitespace from a prompt.
// This is a pure function that transforms input to output.
func Sanitize(p string) string {
	return strings.TrimSpace(p)
}
