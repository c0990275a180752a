// crop.go implements aspect-ratio-aware cropping with optional
// deterministic jitter.
//
// The crop window is taken along the longer axis so the result matches
// the target ratio, then scaled to the exact target size. When a seed
// and diversity tier are supplied, the window offset is seed mod the
// usable range; the usable window is centered within the full slack so
// offsets never clip.
package imaging

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Diversity controls how much of the crop slack the seeded offset may
// use. Higher tiers produce more varied framings across seeds.
type Diversity string

const (
	DiversityLow    Diversity = "low"
	DiversityMedium Diversity = "medium"
	DiversityHigh   Diversity = "high"
)

// fraction returns the usable share of the crop slack for the tier.
// Unknown tiers fall back to medium.
func (d Diversity) fraction() float64 {
	switch d {
	case DiversityLow:
		return 0.25
	case DiversityHigh:
		return 1.0
	default:
		return 0.60
	}
}

// Valid reports whether d names a known tier.
func (d Diversity) Valid() bool {
	switch d {
	case DiversityLow, DiversityMedium, DiversityHigh:
		return true
	}
	return false
}

// CropToAspect crops img along its longer axis to match the target
// ratio, then scales it to exactly targetW x targetH using CatmullRom
// resampling.
//
// The crop offset is deterministic:
//   - seed == nil: exact center crop.
//   - seed != nil: offset = margin + seed mod (usable+1), where usable
//     is the diversity tier's fraction of the slack and margin centers
//     the usable window within the slack.
//   - Sources at or below the target size in both dimensions always
//     center-crop, regardless of seed.
//
// Same seed and tier always produce byte-identical output for the same
// input.
func CropToAspect(img image.Image, targetW, targetH int, seed *int64, diversity Diversity) (image.Image, error) {
	if targetW <= 0 || targetH <= 0 {
		return nil, fmt.Errorf("%w: target %dx%d", ErrInvalidSize, targetW, targetH)
	}

	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return nil, fmt.Errorf("%w: source %dx%d", ErrInvalidSize, srcW, srcH)
	}

	// Small sources always center-crop; jitter on an upscale would
	// just amplify resampling noise.
	if srcW <= targetW && srcH <= targetH {
		seed = nil
	}

	var window image.Rectangle
	switch {
	case srcW*targetH > targetW*srcH:
		// Source is wider than the target ratio: crop width.
		cropW := srcH * targetW / targetH
		slack := srcW - cropW
		x := bounds.Min.X + cropOffset(slack, seed, diversity)
		window = image.Rect(x, bounds.Min.Y, x+cropW, bounds.Max.Y)
	case srcW*targetH < targetW*srcH:
		// Source is taller than the target ratio: crop height.
		cropH := srcW * targetH / targetW
		slack := srcH - cropH
		y := bounds.Min.Y + cropOffset(slack, seed, diversity)
		window = image.Rect(bounds.Min.X, y, bounds.Max.X, y+cropH)
	default:
		// Already at target ratio; resize only.
		window = bounds
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, window, draw.Src, nil)
	return dst, nil
}

// cropOffset computes the crop window offset within [0, slack].
// This is a pure function with no side effects.
func cropOffset(slack int, seed *int64, diversity Diversity) int {
	if slack <= 0 {
		return 0
	}
	if seed == nil {
		return slack / 2
	}

	usable := int(float64(slack) * diversity.fraction())
	margin := (slack - usable) / 2

	s := *seed
	if s < 0 {
		s = -s
	}
	return margin + int(s%int64(usable+1))
}

// CropBytes decodes image bytes, applies CropToAspect, and re-encodes
// the result as PNG. This is the form the generator pipeline consumes.
func CropBytes(data []byte, targetW, targetH int, seed *int64, diversity Diversity) ([]byte, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	cropped, err := CropToAspect(img, targetW, targetH, seed, diversity)
	if err != nil {
		return nil, err
	}
	return EncodePNG(cropped)
}
