package lensdemo

import (
	"testing"
)

func TestMakeSceneDimensions(t *testing.T) {
	for _, size := range []struct{ w, h int }{
		{DefaultSceneWidth, DefaultSceneHeight},
		{64, 40},
		{1, 1},
	} {
		img, depth := MakeScene(size.w, size.h)
		if img.Width() != size.w || img.Height() != size.h {
			t.Errorf("image = %dx%d, want %dx%d", img.Width(), img.Height(), size.w, size.h)
		}
		if !depth.Matches(img) {
			t.Errorf("depth %dx%d does not match image %dx%d",
				depth.Width(), depth.Height(), img.Width(), img.Height())
		}
	}
}

func TestMakeSceneRegions(t *testing.T) {
	img, depth := MakeScene(DefaultSceneWidth, DefaultSceneHeight)

	tests := []struct {
		name  string
		x, y  int
		color Color
		depth float32
	}{
		{"sky top-left", 5, 0, RGB(0.65, 0.85, 1.0), skyDepth},
		{"sun center", 320, 50, RGB(1.0, 0.9, 0.4), sunDepth},
		{"block corner", 61, 88, RGB(0.2, 0.4, 0.9), blockDepth},
		{"highlight center", 120, 137, Gray(0.97), highlightDepth},
		{"stripe", 300, 82, Gray(0.1), stripeDepth},
		{"ground even tile", 240, 240, Gray(0.75), groundDepth},
		{"ground odd tile", 200, 245, Gray(0.55), groundDepth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.Get(tt.x, tt.y); got != tt.color {
				t.Errorf("color at (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.color)
			}
			if got := depth.At(tt.x, tt.y); got != tt.depth {
				t.Errorf("depth at (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.depth)
			}
		})
	}
}

func TestMakeSceneSunDepthIsSquare(t *testing.T) {
	img, depth := MakeScene(DefaultSceneWidth, DefaultSceneHeight)

	// Corner of the sun's bounding square: outside the disc, still at sun depth.
	x, y := 320-49, 50-49
	if got := img.Get(x, y); got == RGB(1.0, 0.9, 0.4) {
		t.Errorf("pixel (%d, %d) should be sky, got sun color", x, y)
	}
	if got := depth.At(x, y); got != sunDepth {
		t.Errorf("depth at (%d, %d) = %v, want %v", x, y, got, sunDepth)
	}
}

func TestMakeSceneHasNearAndFarPixels(t *testing.T) {
	_, depth := MakeScene(DefaultSceneWidth, DefaultSceneHeight)
	bands, err := NewDefocus().Classify(depth, DefaultSceneFocus)
	if err != nil {
		t.Fatal(err)
	}

	counts := make(map[int]int)
	for _, b := range bands {
		counts[b]++
	}
	if counts[0] == 0 {
		t.Error("scene has no pixel in the sharp band")
	}
	if counts[2] == 0 {
		t.Error("scene has no pixel in the far band")
	}
	if got := counts[0] + counts[1] + counts[2]; got != len(bands) {
		t.Errorf("bands cover %d of %d pixels", got, len(bands))
	}
}
