package core

import (
	"math"
	"testing"
)

func TestWeightsNormalizeToOne(t *testing.T) {
	d := CreateInterpolationDetails(FilterLanczos3)
	for _, tc := range []struct{ out, in int }{
		{100, 1200}, {1200, 100}, {640, 640}, {7, 1000}, {1000, 7},
	} {
		w, err := CreatePixelRowWeights(d, tc.out, tc.in)
		if err != nil {
			t.Fatalf("CreatePixelRowWeights(%d,%d): %v", tc.out, tc.in, err)
		}
		for u, c := range w.Contribs {
			var sum float64
			for i := c.LeftWeightIdx; i <= c.RightWeightIdx; i++ {
				sum += float64(w.Weights[i])
			}
			if math.Abs(sum-1) >= 1e-5 {
				t.Errorf("out=%d in=%d pixel %d: |sum-1|=%v >= 1e-5 (sum=%v)", tc.out, tc.in, u, math.Abs(sum-1), sum)
			}
		}
	}
}

func TestWeightSpanWithinAllocatedSpan(t *testing.T) {
	d := CreateInterpolationDetails(FilterMitchell)
	w, err := CreatePixelRowWeights(d, 50, 400)
	if err != nil {
		t.Fatalf("CreatePixelRowWeights: %v", err)
	}
	for u, c := range w.Contribs {
		span := c.RightPixel - c.LeftPixel + 1
		if span > w.AllocatedSpan {
			t.Errorf("pixel %d: span %d exceeds allocated span %d", u, span, w.AllocatedSpan)
		}
		if c.LeftPixel < 0 || c.RightPixel >= 400 {
			t.Errorf("pixel %d: span (%d,%d) escapes input range [0,400)", u, c.LeftPixel, c.RightPixel)
		}
	}
}

func TestCreatePixelRowWeightsRejectsNonPositive(t *testing.T) {
	d := CreateInterpolationDetails(FilterBox)
	if _, err := CreatePixelRowWeights(d, 0, 10); err == nil {
		t.Errorf("expected error for outputLen=0")
	}
	if _, err := CreatePixelRowWeights(d, 10, 0); err == nil {
		t.Errorf("expected error for inputLen=0")
	}
}

func TestMitchellHasNativeNegativeLobes(t *testing.T) {
	d := CreateInterpolationDetails(FilterMitchell)
	w, err := CreatePixelRowWeights(d, 50, 200)
	if err != nil {
		t.Fatalf("CreatePixelRowWeights: %v", err)
	}
	var sawNegative bool
	for _, wt := range w.Weights {
		if wt < 0 {
			sawNegative = true
			break
		}
	}
	if !sawNegative {
		t.Errorf("Mitchell is expected to have native negative lobes on a 4x downscale, saw none")
	}
}
