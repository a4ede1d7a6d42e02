package core

import "testing"

func TestParseAnchorNamed(t *testing.T) {
	a, ok := ParseAnchor("bottomRight")
	if !ok {
		t.Fatalf("ParseAnchor(bottomRight): not found")
	}
	if a.XPercent != 100 || a.YPercent != 100 {
		t.Errorf("bottomRight = %+v, want {100 100}", a)
	}
}

func TestParseAnchorPercentPair(t *testing.T) {
	a, ok := ParseAnchor("25%,75%")
	if !ok {
		t.Fatalf("ParseAnchor(25%%,75%%): not found")
	}
	if a.XPercent != 25 || a.YPercent != 75 {
		t.Errorf("got %+v, want {25 75}", a)
	}
}

func TestParseAnchorRejectsGarbage(t *testing.T) {
	if _, ok := ParseAnchor("not-an-anchor"); ok {
		t.Errorf("expected ok=false for garbage anchor string")
	}
}

func TestParseColorspaceName(t *testing.T) {
	cases := map[string]Floatspace{"srgb": AsIs, "linear": Linear, "gamma": Gamma}
	for name, want := range cases {
		got, ok := ParseColorspaceName(name)
		if !ok || got != want {
			t.Errorf("ParseColorspaceName(%q) = %v,%v want %v,true", name, got, ok, want)
		}
	}
}

func TestSolveRequestDefaultsToSourceAspectWhenOnlyWidthGiven(t *testing.T) {
	req := DefaultRequest()
	req.W = 800
	l, err := SolveRequest(1600, 1200, req)
	if err != nil {
		t.Fatalf("SolveRequest: %v", err)
	}
	if l.Canvas.W != 800 || l.Canvas.H != 600 {
		t.Errorf("canvas = %dx%d, want 800x600", l.Canvas.W, l.Canvas.H)
	}
}

func TestSolveRequestHonoursExplicitCrop(t *testing.T) {
	req := DefaultRequest()
	req.W = 100
	req.H = 100
	req.Mode = ModeCrop
	req.Crop = &ExplicitCrop{X1: 0, Y1: 0, X2: 50, Y2: 100, XUnits: CropUnitsPercent, YUnits: CropUnitsPercent}
	l, err := SolveRequest(1000, 500, req)
	if err != nil {
		t.Fatalf("SolveRequest: %v", err)
	}
	if l.Crop.X < 0 || l.Crop.Y < 0 || l.Crop.X2() > 500 || l.Crop.Y2() > 500 {
		t.Errorf("crop %+v escapes the pre-cropped left half of the source", l.Crop)
	}
}

func TestEffectiveSharpenSizeDiffers(t *testing.T) {
	req := DefaultRequest()
	req.SharpenPercent = 40
	req.SharpenWhen = SharpenSizeDiffers
	if got := EffectiveSharpen(req, 100, 100); got != 0 {
		t.Errorf("same-size resize should not sharpen, got %v", got)
	}
	if got := EffectiveSharpen(req, 100, 50); got != 40 {
		t.Errorf("differing-size resize should sharpen at goal, got %v", got)
	}
}

func TestFilterForPicksDownOrUp(t *testing.T) {
	req := DefaultRequest()
	req.DownFilter = FilterMitchell
	req.UpFilter = FilterGinseng
	if got := FilterFor(req, 100, 50); got != FilterMitchell {
		t.Errorf("downscale should pick DownFilter, got %v", got)
	}
	if got := FilterFor(req, 100, 200); got != FilterGinseng {
		t.Errorf("upscale should pick UpFilter, got %v", got)
	}
}
