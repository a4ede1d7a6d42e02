package core

import "testing"

func TestAspectRatioCompare(t *testing.T) {
	a := AspectRatio{W: 16, H: 9}
	b := AspectRatio{W: 4, H: 3}
	if a.CompareW(b) != Greater {
		t.Errorf("CompareW: got %v, want Greater", a.CompareW(b))
	}
	if a.CompareH(b) != Greater {
		t.Errorf("CompareH: got %v, want Greater", a.CompareH(b))
	}
	if !a.Equals(AspectRatio{W: 16, H: 9}) {
		t.Errorf("Equals: expected equal aspect ratios to compare equal")
	}
}

func TestAspectRatioTranspose(t *testing.T) {
	a := AspectRatio{W: 16, H: 9}
	got := a.Transpose()
	if got.W != 9 || got.H != 16 {
		t.Errorf("Transpose: got %+v, want {9 16}", got)
	}
}

func TestHeightForWidthPositive(t *testing.T) {
	a := AspectRatio{W: 3, H: 7}
	for w := int32(1); w < 2000; w++ {
		h := a.HeightForWidth(w)
		if h < 1 {
			t.Fatalf("HeightForWidth(%d) = %d, want >= 1", w, h)
		}
	}
}

func TestBestRoundedDimensionMinimizesLoss(t *testing.T) {
	cases := []struct {
		exact float64
		want  int32
	}{
		{7.5, 8},
		{7.4, 7},
		{7.6, 8},
		{0.3, 1},
	}
	for _, c := range cases {
		got := bestRoundedDimension(c.exact)
		if got != c.want {
			t.Errorf("bestRoundedDimension(%v) = %d, want %d", c.exact, got, c.want)
		}
	}
}

func TestInscribeInPreservesBoundOnOneAxis(t *testing.T) {
	a := AspectRatio{W: 1600, H: 1200}
	bound := AspectRatio{W: 10, H: 10}
	got := a.InscribeIn(bound)
	if got.W > bound.W || got.H > bound.H {
		t.Errorf("InscribeIn(%+v) = %+v exceeds bound %+v", bound, got, bound)
	}
}

func TestCircumscribeAboutNeverShrinksBelowBound(t *testing.T) {
	a := AspectRatio{W: 1600, H: 1200}
	bound := AspectRatio{W: 90, H: 45}
	got := a.CircumscribeAbout(bound)
	if got.W < bound.W || got.H < bound.H {
		t.Errorf("CircumscribeAbout(%+v) = %+v smaller than bound %+v", bound, got, bound)
	}
}
