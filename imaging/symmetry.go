// symmetry.go builds exactly 4-way symmetric images for card backs.
package imaging

import (
	"fmt"
	"image"
)

// Symmetrize takes the top-left quadrant of img, mirrors it
// horizontally to build the top half, then mirrors that vertically to
// build the full image. The result is exactly 4-way symmetric
// regardless of any asymmetry in the source:
//
//	pixel(x, y) == pixel(w-1-x, y) == pixel(x, h-1-y) == pixel(w-1-x, h-1-y)
//
// Output dimensions are 2*(w/2) x 2*(h/2); odd sources lose the center
// row/column.
func Symmetrize(img image.Image) (image.Image, error) {
	bounds := img.Bounds()
	qw := bounds.Dx() / 2
	qh := bounds.Dy() / 2
	if qw == 0 || qh == 0 {
		return nil, fmt.Errorf("%w: source %dx%d too small to symmetrize", ErrInvalidSize, bounds.Dx(), bounds.Dy())
	}

	w := qw * 2
	h := qh * 2
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < qh; y++ {
		for x := 0; x < qw; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			dst.Set(x, y, c)
			dst.Set(w-1-x, y, c)
			dst.Set(x, h-1-y, c)
			dst.Set(w-1-x, h-1-y, c)
		}
	}
	return dst, nil
}

// SymmetrizeBytes decodes image bytes, applies Symmetrize, and
// re-encodes the result as PNG.
func SymmetrizeBytes(data []byte) ([]byte, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	sym, err := Symmetrize(img)
	if err != nil {
		return nil, err
	}
	return EncodePNG(sym)
}
