package core

import "testing"

func mustAspect(t *testing.T, w, h int32) AspectRatio {
	t.Helper()
	a, err := NewAspectRatio(w, h)
	if err != nil {
		t.Fatalf("NewAspectRatio(%d,%d): %v", w, h, err)
	}
	return a
}

// Concrete fit/crop/pad scenarios.

func TestSolveCropScaleCanvas(t *testing.T) {
	source := mustAspect(t, 1600, 1200)
	target := mustAspect(t, 90, 45)
	l, err := Solve(source, target, ModeCrop, ScaleCanvas, CenterAnchor)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	wantCrop := Rect{X: 0, Y: 200, W: 1600, H: 800}
	if l.Crop != wantCrop {
		t.Errorf("crop = %+v, want %+v", l.Crop, wantCrop)
	}
	if l.Canvas.W != 90 || l.Canvas.H != 45 {
		t.Errorf("canvas = %dx%d, want 90x45", l.Canvas.W, l.Canvas.H)
	}
	if l.Image.W != 90 || l.Image.H != 45 {
		t.Errorf("image = %dx%d, want 90x45", l.Image.W, l.Image.H)
	}
}

func TestSolveCropSquare(t *testing.T) {
	source := mustAspect(t, 1600, 1200)
	target := mustAspect(t, 10, 10)
	l, err := Solve(source, target, ModeCrop, ScaleDown, CenterAnchor)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	wantCrop := Rect{X: 200, Y: 0, W: 1200, H: 1200}
	if l.Crop != wantCrop {
		t.Errorf("crop = %+v, want %+v", l.Crop, wantCrop)
	}
	if l.Canvas.W != 10 || l.Canvas.H != 10 {
		t.Errorf("canvas = %dx%d, want 10x10", l.Canvas.W, l.Canvas.H)
	}
}

func TestSolveMaxShrinksWithoutCropping(t *testing.T) {
	source := mustAspect(t, 1600, 1200)
	target := mustAspect(t, 10, 10)
	l, err := Solve(source, target, ModeMax, ScaleDown, CenterAnchor)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	wantCrop := Rect{X: 0, Y: 0, W: 1600, H: 1200}
	if l.Crop != wantCrop {
		t.Errorf("crop = %+v, want %+v (Max must never crop)", l.Crop, wantCrop)
	}
	if l.Canvas.W != 10 || l.Canvas.H != 8 {
		t.Errorf("canvas = %dx%d, want 10x8", l.Canvas.W, l.Canvas.H)
	}
}

func TestFillCropNarrowsToTargetAspect(t *testing.T) {
	source := mustAspect(t, 2, 4)
	target := mustAspect(t, 1, 3)
	l := fillCrop(Layout{Crop: rectFromDims(2, 4), Canvas: source, Image: rectFromDims(2, 4)}, target, CenterAnchor)
	wantCrop := Rect{X: 0, Y: 0, W: 1, H: 4}
	if l.Crop != wantCrop {
		t.Errorf("crop = %+v, want %+v", l.Crop, wantCrop)
	}
	if l.Canvas.W != 1 || l.Canvas.H != 3 {
		t.Errorf("canvas = %dx%d, want 1x3", l.Canvas.W, l.Canvas.H)
	}
}

func TestCropAspectNarrowsOnlyTheCrop(t *testing.T) {
	source := mustAspect(t, 638, 423)
	target := mustAspect(t, 200, 133)
	l := cropAspect(Layout{Crop: rectFromDims(638, 423), Canvas: source, Image: rectFromDims(638, 423)}, target, CenterAnchor)
	wantCrop := Rect{X: 1, Y: 0, W: 636, H: 423}
	if l.Crop != wantCrop {
		t.Errorf("crop = %+v, want %+v", l.Crop, wantCrop)
	}
}

func TestMaxModeNeverCropsOrUpscales(t *testing.T) {
	source := mustAspect(t, 800, 600)
	target := mustAspect(t, 800, 600)
	l, err := Solve(source, target, ModeMax, ScaleDown, CenterAnchor)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if l.Canvas.W != source.W || l.Canvas.H != source.H {
		t.Errorf("identity target should yield canvas == source, got %dx%d", l.Canvas.W, l.Canvas.H)
	}
}

func TestCanvasNeverExceedsTarget(t *testing.T) {
	source := mustAspect(t, 1920, 1080)
	target := mustAspect(t, 300, 300)
	for _, m := range []Mode{ModeMax, ModePad, ModeCrop} {
		l, err := Solve(source, target, m, ScaleDown, CenterAnchor)
		if err != nil {
			t.Fatalf("Solve(mode=%v): %v", m, err)
		}
		if l.Canvas.W > target.W || l.Canvas.H > target.H {
			t.Errorf("mode=%v: canvas %dx%d exceeds target %dx%d", m, l.Canvas.W, l.Canvas.H, target.W, target.H)
		}
	}
}

func TestImageNeverExceedsCanvas(t *testing.T) {
	source := mustAspect(t, 1920, 1080)
	target := mustAspect(t, 500, 500)
	for _, m := range []Mode{ModeMax, ModePad, ModeCrop, ModeStretch} {
		l, err := Solve(source, target, m, ScaleDown, CenterAnchor)
		if err != nil {
			t.Fatalf("Solve(mode=%v): %v", m, err)
		}
		if l.Image.W > l.Canvas.W || l.Image.H > l.Canvas.H {
			t.Errorf("mode=%v: image %dx%d exceeds canvas %dx%d", m, l.Image.W, l.Image.H, l.Canvas.W, l.Canvas.H)
		}
	}
}

func TestCropContainedWithinSource(t *testing.T) {
	source := mustAspect(t, 1600, 1200)
	target := mustAspect(t, 37, 91)
	for _, m := range []Mode{ModeMax, ModeCrop, ModePad, ModeStretch} {
		l, err := Solve(source, target, m, ScaleDown, CenterAnchor)
		if err != nil {
			t.Fatalf("Solve(mode=%v): %v", m, err)
		}
		if l.Crop.X < 0 || l.Crop.Y < 0 || l.Crop.X2() > source.W || l.Crop.Y2() > source.H {
			t.Errorf("mode=%v: crop %+v escapes source %dx%d", m, l.Crop, source.W, source.H)
		}
	}
}

func TestAspectPreservingTargetYieldsExactMatch(t *testing.T) {
	source := mustAspect(t, 1600, 1200)
	target := mustAspect(t, 800, 600)
	l, err := Solve(source, target, ModeMax, ScaleDown, CenterAnchor)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if l.Canvas.W != 800 || l.Canvas.H != 600 || l.Image.W != 800 || l.Image.H != 600 {
		t.Errorf("aspect-preserving target: got canvas %dx%d image %dx%d, want 800x600 exactly",
			l.Canvas.W, l.Canvas.H, l.Image.W, l.Image.H)
	}
}

func TestDistortStretchesWithoutCropping(t *testing.T) {
	source := mustAspect(t, 100, 50)
	target := mustAspect(t, 30, 30)
	l, err := Solve(source, target, ModeStretch, ScaleDown, CenterAnchor)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if l.Canvas.W != 30 || l.Canvas.H != 30 {
		t.Errorf("distort canvas = %dx%d, want 30x30", l.Canvas.W, l.Canvas.H)
	}
	wantCrop := Rect{X: 0, Y: 0, W: 100, H: 50}
	if l.Crop != wantCrop {
		t.Errorf("distort must not crop, got %+v", l.Crop)
	}
}

func TestSolveRejectsNonPositiveTarget(t *testing.T) {
	source := mustAspect(t, 100, 100)
	if _, err := Solve(source, AspectRatio{W: 0, H: 10}, ModeMax, ScaleDown, CenterAnchor); err == nil {
		t.Errorf("expected error for zero target width")
	}
}
