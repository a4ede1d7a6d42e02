package core

import (
	"strconv"
	"strings"
)

// SharpenWhen controls when f.sharpen is applied relative to the solved
// scale factor.
type SharpenWhen int

const (
	SharpenAlways SharpenWhen = iota
	SharpenDownscaling
	SharpenSizeDiffers
)

// CropUnits selects how the four numbers in an explicit `crop` are
// interpreted.
type CropUnits int

const (
	CropUnitsPixels CropUnits = iota
	CropUnitsPercent
)

// ExplicitCrop is a caller-supplied crop rectangle in either pixel or
// fractional units, overriding anchor-based crop placement.
type ExplicitCrop struct {
	X1, Y1, X2, Y2 float64
	XUnits, YUnits CropUnits
}

// Request is the fully-parsed declarative sizing request
// section 6. A query-string layer upstream of this package is
// responsible for producing one of these from `?w=&h=&mode=...`.
type Request struct {
	W, H int32 // 0 means "unspecified" on that axis

	Mode  Mode
	Scale ScaleMode

	Anchor Anchor
	Crop   *ExplicitCrop

	DownFilter, UpFilter           Filter
	DownColorspace, UpColorspace   Floatspace
	SharpenPercent                 float64
	SharpenWhen                    SharpenWhen
}

// DefaultRequest returns a Request with the documented defaults: mode
// Max, scale DownscaleOnly, center anchor, Robidoux down-filter,
// Ginseng up-filter, linear working space, no sharpening.
func DefaultRequest() Request {
	return Request{
		Mode:           ModeMax,
		Scale:          ScaleDown,
		Anchor:         CenterAnchor,
		DownFilter:     FilterRobidoux,
		UpFilter:       FilterGinseng,
		DownColorspace: Linear,
		UpColorspace:   Linear,
		SharpenWhen:    SharpenSizeDiffers,
	}
}

// ParseAnchor resolves a 9-point compass name or an "x%,y%" pair.
func ParseAnchor(s string) (Anchor, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if a, ok := named9[s]; ok {
		return a, true
	}
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return Anchor{}, false
	}
	x, errX := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(parts[0]), "%"), 64)
	y, errY := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(parts[1]), "%"), 64)
	if errX != nil || errY != nil {
		return Anchor{}, false
	}
	return Anchor{XPercent: x, YPercent: y}, true
}

// ParseColorspaceName resolves `srgb | linear | gamma` to a Floatspace.
func ParseColorspaceName(s string) (Floatspace, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "srgb":
		return AsIs, true
	case "linear":
		return Linear, true
	case "gamma":
		return Gamma, true
	default:
		return 0, false
	}
}

// ParseModeName resolves `max | pad | crop | stretch | aspectcrop` (and
// the scale-qualified variants used internally by a query-string layer)
// to a Mode.
func ParseModeName(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max":
		return ModeMax, true
	case "pad":
		return ModePad, true
	case "pad_downscale_only":
		return ModePadDownscaleOnly, true
	case "pad_or_aspect":
		return ModePadOrAspect, true
	case "crop":
		return ModeCrop, true
	case "crop_or_aspect":
		return ModeCropOrAspect, true
	case "crop_downscale_only":
		return ModeCropDownscaleOnly, true
	case "stretch":
		return ModeStretch, true
	case "aspectcrop":
		return ModeAspectCrop, true
	default:
		return 0, false
	}
}

// ParseScaleName resolves `down | up | both | canvas` to a ScaleMode.
func ParseScaleName(s string) (ScaleMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "down":
		return ScaleDown, true
	case "up":
		return ScaleUp, true
	case "both":
		return ScaleBoth, true
	case "canvas":
		return ScaleCanvas, true
	default:
		return 0, false
	}
}

// explicitCropRect resolves an ExplicitCrop against source dims into a
// pixel Rect, clamped to the source.
func explicitCropRect(c *ExplicitCrop, source AspectRatio) Rect {
	toPixelsX := func(v float64, units CropUnits) int32 {
		if units == CropUnitsPercent {
			return int32(v / 100.0 * float64(source.W))
		}
		return int32(v)
	}
	toPixelsY := func(v float64, units CropUnits) int32 {
		if units == CropUnitsPercent {
			return int32(v / 100.0 * float64(source.H))
		}
		return int32(v)
	}
	x1 := clampI32(toPixelsX(c.X1, c.XUnits), 0, source.W-1)
	y1 := clampI32(toPixelsY(c.Y1, c.YUnits), 0, source.H-1)
	x2 := clampI32(toPixelsX(c.X2, c.XUnits), x1+1, source.W)
	y2 := clampI32(toPixelsY(c.Y2, c.YUnits), y1+1, source.H)
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

func clampI32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SolveRequest resolves a Request against a source's dims, honouring an
// explicit crop (applied before the fit/pad/crop mode solve runs over
// the narrowed source) and defaulting any unspecified target axis to
// preserve source aspect.
func SolveRequest(sourceW, sourceH int32, req Request) (Layout, error) {
	source, err := NewAspectRatio(sourceW, sourceH)
	if err != nil {
		return Layout{}, err
	}

	effectiveSource := source
	preCrop := rectFromDims(source.W, source.H)
	if req.Crop != nil {
		preCrop = explicitCropRect(req.Crop, source)
		effectiveSource = AspectRatio{W: preCrop.W, H: preCrop.H}
	}

	target := req.W != 0 && req.H != 0
	w, h := req.W, req.H
	switch {
	case target:
	case req.W != 0:
		h = effectiveSource.HeightForWidth(req.W)
	case req.H != 0:
		w = effectiveSource.WidthForHeight(req.H)
	default:
		w, h = effectiveSource.W, effectiveSource.H
	}
	targetAspect, err := NewAspectRatio(w, h)
	if err != nil {
		return Layout{}, err
	}

	l, err := Solve(effectiveSource, targetAspect, req.Mode, req.Scale, req.Anchor)
	if err != nil {
		return Layout{}, err
	}

	// Compose the explicit pre-crop back into source-space coordinates.
	l.Crop = Rect{
		X: preCrop.X + l.Crop.X,
		Y: preCrop.Y + l.Crop.Y,
		W: l.Crop.W,
		H: l.Crop.H,
	}
	return l, nil
}

// EffectiveSharpen decides whether f.sharpen applies for a given solved
// scale, per f.sharpen_when.
func EffectiveSharpen(req Request, srcDim, dstDim int32) float64 {
	switch req.SharpenWhen {
	case SharpenAlways:
		return req.SharpenPercent
	case SharpenDownscaling:
		if dstDim < srcDim {
			return req.SharpenPercent
		}
		return 0
	case SharpenSizeDiffers:
		if dstDim != srcDim {
			return req.SharpenPercent
		}
		return 0
	default:
		return 0
	}
}

// FilterFor picks the up- or down-scaling filter preset based on the
// solved axis scale factor.
func FilterFor(req Request, srcDim, dstDim int32) Filter {
	if dstDim < srcDim {
		return req.DownFilter
	}
	return req.UpFilter
}

// ColorspaceFor picks the up- or down-scaling working colour space.
func ColorspaceFor(req Request, srcDim, dstDim int32) Floatspace {
	if dstDim < srcDim {
		return req.DownColorspace
	}
	return req.UpColorspace
}
