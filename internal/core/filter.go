package core

import "math"

// Filter names one member of the parameterised 1-D filter family.
type Filter int

const (
	FilterBox Filter = iota
	FilterTriangle
	FilterHermite
	FilterCubicBSpline
	FilterCatmullRom
	FilterMitchell
	FilterRobidoux
	FilterRobidouxSharp
	FilterLanczos2
	FilterLanczos3
	FilterGinseng
	FilterJinc
	FilterNCubic
	FilterNCubicSharp
)

// cubicCoeffs holds the piecewise-cubic polynomial coefficients derived
// from a Mitchell-Netravali (B, C) pair by newCubicCoeffs.
type cubicCoeffs struct {
	p0, p2, p3 float64
	q0, q1, q2, q3 float64
}

func newCubicCoeffs(b, c float64) cubicCoeffs {
	return cubicCoeffs{
		p0: (6 - 2*b) / 6,
		p2: (-18 + 12*b + 6*c) / 6,
		p3: (12 - 9*b - 6*c) / 6,
		q0: (8*b + 24*c) / 6,
		q1: (-12*b - 48*c) / 6,
		q2: (6*b + 30*c) / 6,
		q3: (-b - 6*c) / 6,
	}
}

func (c cubicCoeffs) eval(x float64) float64 {
	ax := math.Abs(x)
	switch {
	case ax < 1:
		return c.p0 + c.p2*ax*ax + c.p3*ax*ax*ax
	case ax < 2:
		return c.q0 + c.q1*ax + c.q2*ax*ax + c.q3*ax*ax*ax
	default:
		return 0
	}
}

// InterpolationDetails is a 1-D filter descriptor built per resize axis.
type InterpolationDetails struct {
	Filter             Filter
	Window             float64
	Blur               float64
	cubic              cubicCoeffs
	hasCubic           bool
	SharpenPercentGoal float64 // [0,100]
}

// filterParams returns the (window, blur, cubic?) parameter set for a
// named preset.
func filterParams(f Filter) (window, blur float64, cubic cubicCoeffs, hasCubic bool) {
	switch f {
	case FilterBox:
		return 0.5, 1, cubicCoeffs{}, false
	case FilterTriangle:
		return 1, 1, cubicCoeffs{}, false
	case FilterHermite:
		return 1, 1, newCubicCoeffs(0, 0), true
	case FilterCubicBSpline:
		return 2, 1, newCubicCoeffs(1, 0), true
	case FilterCatmullRom:
		return 2, 1, newCubicCoeffs(0, 0.5), true
	case FilterMitchell:
		return 2, 1, newCubicCoeffs(1.0/3.0, 1.0/3.0), true
	case FilterRobidoux:
		return 2, 1, newCubicCoeffs(0.3782, 0.3109), true
	case FilterRobidouxSharp:
		return 2, 1, newCubicCoeffs(0.2620, 0.3690), true
	case FilterLanczos2:
		return 2, 1, cubicCoeffs{}, false
	case FilterLanczos3:
		return 3, 1, cubicCoeffs{}, false
	case FilterGinseng:
		return 3, 1, cubicCoeffs{}, false
	case FilterJinc:
		return 6, 1, cubicCoeffs{}, false
	case FilterNCubic:
		return 2.5, 0.856, cubicCoeffs{}, false
	case FilterNCubicSharp:
		return 2.5, 0.904, cubicCoeffs{}, false
	default:
		return 2, 1, newCubicCoeffs(1.0/3.0, 1.0/3.0), true
	}
}

// CreateInterpolationDetails builds the descriptor for a named preset.
func CreateInterpolationDetails(f Filter) *InterpolationDetails {
	window, blur, cubic, hasCubic := filterParams(f)
	return &InterpolationDetails{
		Filter:   f,
		Window:   window,
		Blur:     blur,
		cubic:    cubic,
		hasCubic: hasCubic,
	}
}

func (d *InterpolationDetails) SetSharpenPercentGoal(goal float64) {
	if goal < 0 {
		goal = 0
	}
	if goal > 100 {
		goal = 100
	}
	d.SharpenPercentGoal = goal
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// jinc is the Bessel-J1-based radial analogue of sinc, normalised to 1 at
// x=0, built from Go's standard math.J1.
func jinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return 2 * math.J1(px) / px
}

// Eval samples the filter function at t, pre-scaling by blur first (a
// "Sharp" preset's reduced blur stretches the same window/coefficients
// over a narrower input span, which is how it differs from its
// unsharpened counterpart).
func (d *InterpolationDetails) Eval(t float64) float64 {
	x := t / d.Blur
	switch d.Filter {
	case FilterBox:
		if math.Abs(x) <= d.Window {
			return 1
		}
		return 0
	case FilterTriangle:
		ax := math.Abs(x)
		if ax >= d.Window {
			return 0
		}
		return 1 - ax/d.Window
	case FilterHermite, FilterCubicBSpline, FilterCatmullRom, FilterMitchell, FilterRobidoux, FilterRobidouxSharp:
		if math.Abs(x) >= d.Window {
			return 0
		}
		return d.cubic.eval(x)
	case FilterLanczos2, FilterLanczos3:
		if math.Abs(x) >= d.Window {
			return 0
		}
		return sinc(x) * sinc(x/d.Window)
	case FilterGinseng:
		if math.Abs(x) >= d.Window {
			return 0
		}
		return sinc(x) * jinc(x/d.Window)
	case FilterJinc, FilterNCubic, FilterNCubicSharp:
		if math.Abs(x) >= d.Window {
			return 0
		}
		return jinc(x) * jinc(x/d.Window)
	default:
		return 0
	}
}

// filterNames maps the preset names used in the declarative request
// (down.filter / up.filter) to Filter values.
var filterNames = map[string]Filter{
	"box":            FilterBox,
	"triangle":       FilterTriangle,
	"linear":         FilterTriangle,
	"hermite":        FilterHermite,
	"cubicbspline":   FilterCubicBSpline,
	"bspline":        FilterCubicBSpline,
	"catmullrom":     FilterCatmullRom,
	"catrom":         FilterCatmullRom,
	"mitchell":       FilterMitchell,
	"robidoux":       FilterRobidoux,
	"robidouxsharp":  FilterRobidouxSharp,
	"lanczos2":       FilterLanczos2,
	"lanczos3":       FilterLanczos3,
	"lanczos":        FilterLanczos3,
	"ginseng":        FilterGinseng,
	"jinc":           FilterJinc,
	"ncubic":         FilterNCubic,
	"ncubicsharp":    FilterNCubicSharp,
}

// ParseFilterName resolves a preset name (case already normalized by the
// caller) to a Filter. ok is false for unrecognised names.
func ParseFilterName(name string) (f Filter, ok bool) {
	f, ok = filterNames[name]
	return
}
