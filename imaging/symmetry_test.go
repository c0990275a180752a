package imaging

import (
	"image"
	"testing"
)

// TestSymmetrize_FourWaySymmetry tests the defining property: every
// pixel equals its horizontal, vertical, and diagonal mirror.
func TestSymmetrize_FourWaySymmetry(t *testing.T) {
	// Deliberately asymmetric source.
	src := gradientImage(64, 48)

	got, err := Symmetrize(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b := got.Bounds()
	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := got.At(x, y)
			if p != got.At(w-1-x, y) {
				t.Fatalf("pixel (%d,%d) != horizontal mirror (%d,%d)", x, y, w-1-x, y)
			}
			if p != got.At(x, h-1-y) {
				t.Fatalf("pixel (%d,%d) != vertical mirror (%d,%d)", x, y, x, h-1-y)
			}
			if p != got.At(w-1-x, h-1-y) {
				t.Fatalf("pixel (%d,%d) != diagonal mirror (%d,%d)", x, y, w-1-x, h-1-y)
			}
		}
	}
}

// TestSymmetrize_PreservesTopLeftQuadrant tests that the source
// quadrant passes through unchanged.
func TestSymmetrize_PreservesTopLeftQuadrant(t *testing.T) {
	src := gradientImage(64, 64)

	got, err := Symmetrize(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rgba := got.(*image.RGBA)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			sr, sg, sb, sa := src.At(x, y).RGBA()
			gr, gg, gb, ga := rgba.At(x, y).RGBA()
			if sr != gr || sg != gg || sb != gb || sa != ga {
				t.Fatalf("quadrant pixel (%d,%d) changed", x, y)
			}
		}
	}
}

// TestSymmetrize_OddDimensions tests that odd sources shrink by one.
func TestSymmetrize_OddDimensions(t *testing.T) {
	got, err := Symmetrize(gradientImage(65, 49))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := got.Bounds()
	if b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("output size = %dx%d, want 64x48", b.Dx(), b.Dy())
	}
}

// TestSymmetrize_TooSmall tests the error path for 1-pixel sources.
func TestSymmetrize_TooSmall(t *testing.T) {
	if _, err := Symmetrize(gradientImage(1, 1)); err == nil {
		t.Error("expected error for 1x1 source, got nil")
	}
}

// TestSymmetrizeBytes_RoundTrip tests the bytes pipeline end to end.
func TestSymmetrizeBytes_RoundTrip(t *testing.T) {
	src := mustPNG(t, gradientImage(100, 100))

	out, err := SymmetrizeBytes(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !IsPNG(out) {
		t.Error("output should be PNG encoded")
	}

	img, err := Decode(out)
	if err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 100 {
		t.Errorf("output size = %dx%d, want 100x100", img.Bounds().Dx(), img.Bounds().Dy())
	}
}
