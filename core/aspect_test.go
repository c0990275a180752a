package core

import "testing"

func TestAspectDimensions_Known(t *testing.T) {
	d, err := AspectDimensions("2:3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Width != 768 || d.Height != 1152 {
		t.Errorf("expected 768x1152, got %dx%d", d.Width, d.Height)
	}
}

func TestAspectDimensions_Unknown(t *testing.T) {
	if _, err := AspectDimensions("7:5"); err == nil {
		t.Error("expected error for unsupported ratio")
	}
}

func TestAspectDimensions_ProportionsMatch(t *testing.T) {
	// Width/height ordering must follow the ratio name.
	wide, _ := AspectDimensions("16:9")
	tall, _ := AspectDimensions("9:16")
	if wide.Width <= wide.Height {
		t.Errorf("16:9 should be landscape, got %dx%d", wide.Width, wide.Height)
	}
	if tall.Width >= tall.Height {
		t.Errorf("9:16 should be portrait, got %dx%d", tall.Width, tall.Height)
	}
	if wide.Width != tall.Height || wide.Height != tall.Width {
		t.Errorf("16:9 and 9:16 should be transposes: %v vs %v", wide, tall)
	}
}

func TestSupportedAspectRatio(t *testing.T) {
	if !SupportedAspectRatio(DefaultAspectRatio) {
		t.Error("default aspect ratio must be supported")
	}
	if SupportedAspectRatio("") {
		t.Error("empty ratio should not be supported")
	}
}
