package core

// Ordering is the result of comparing two dimensions independently.
type Ordering int

const (
	Less Ordering = iota
	Equal
	Greater
)

func compare(a, b int32) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

// AspectRatio is a strictly positive (w, h) pair, used both as concrete
// dimensions and as a proportion.
type AspectRatio struct {
	W, H int32
}

// NewAspectRatio validates w and h are strictly positive.
func NewAspectRatio(w, h int32) (AspectRatio, error) {
	if w <= 0 || h <= 0 {
		return AspectRatio{}, errf(InvalidArgument, "aspect ratio must be positive, got %dx%d", w, h)
	}
	return AspectRatio{W: w, H: h}, nil
}

func (a AspectRatio) Equals(b AspectRatio) bool {
	return a.W == b.W && a.H == b.H
}

// CompareW and CompareH order the two ratios independently on each axis.
func (a AspectRatio) CompareW(b AspectRatio) Ordering { return compare(a.W, b.W) }
func (a AspectRatio) CompareH(b AspectRatio) Ordering { return compare(a.H, b.H) }

// Transpose swaps width and height.
func (a AspectRatio) Transpose() AspectRatio {
	return AspectRatio{W: a.H, H: a.W}
}

func (a AspectRatio) ratio() float64 {
	return float64(a.W) / float64(a.H)
}

// roundTieAwayFromZero matches the round-half-up convention used
// throughout this package (including byte/float colour conversion).
func roundTieAwayFromZero(v float64) int32 {
	if v >= 0 {
		return int32(v + 0.5)
	}
	return -int32(-v + 0.5)
}

// HeightForWidth returns the height that best preserves a's aspect ratio
// for the given width, minimizing |height - round(width/ratio)| with a
// positive-integer floor (see bestRoundedDimension).
func (a AspectRatio) HeightForWidth(width int32) int32 {
	if width <= 0 {
		return 1
	}
	exact := float64(width) * float64(a.H) / float64(a.W)
	return bestRoundedDimension(exact)
}

// WidthForHeight is the symmetric counterpart of HeightForWidth.
func (a AspectRatio) WidthForHeight(height int32) int32 {
	if height <= 0 {
		return 1
	}
	exact := float64(height) * float64(a.W) / float64(a.H)
	return bestRoundedDimension(exact)
}

// bestRoundedDimension rounds to the nearest integer >= 1, preferring the
// candidate that minimizes absolute rounding loss against the exact real
// value. Because the round-half-up base is already the nearest integer,
// the +/-1 neighbours can at most tie with it and never replace it: the
// result is round-half-up clamped to a minimum of 1.
func bestRoundedDimension(exact float64) int32 {
	base := roundTieAwayFromZero(exact)
	if base < 1 {
		base = 1
	}
	best := base
	bestLoss := absF(float64(base) - exact)
	for _, candidate := range [2]int32{base - 1, base + 1} {
		if candidate < 1 {
			continue
		}
		loss := absF(float64(candidate) - exact)
		if loss < bestLoss {
			best = candidate
			bestLoss = loss
		}
	}
	return best
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// InscribeIn returns the largest AspectRatio <= bound on both axes that
// preserves a's proportion exactly in floating point, then rounds. Used
// by ScaleToInner.
func (a AspectRatio) InscribeIn(bound AspectRatio) AspectRatio {
	widthFromH := a.WidthForHeight(bound.H)
	if widthFromH <= bound.W {
		return AspectRatio{W: widthFromH, H: bound.H}
	}
	return AspectRatio{W: bound.W, H: a.HeightForWidth(bound.W)}
}

// CircumscribeAbout returns the smallest AspectRatio >= bound on both axes
// that preserves a's proportion. Used by ScaleToOuter.
func (a AspectRatio) CircumscribeAbout(bound AspectRatio) AspectRatio {
	widthFromH := a.WidthForHeight(bound.H)
	if widthFromH >= bound.W {
		return AspectRatio{W: widthFromH, H: bound.H}
	}
	return AspectRatio{W: bound.W, H: a.HeightForWidth(bound.W)}
}
