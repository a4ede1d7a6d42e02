package core

// Rect is an axis-aligned integer rectangle, used both for the source
// crop (within the source raster) and the image rect (within the
// canvas).
type Rect struct {
	X, Y, W, H int32
}

func (r Rect) X2() int32 { return r.X + r.W }
func (r Rect) Y2() int32 { return r.Y + r.H }

func rectFromDims(w, h int32) Rect { return Rect{X: 0, Y: 0, W: w, H: h} }

// Anchor is a 2-D fractional position in [0,100] on each axis used to
// place a smaller rect within a larger one; 50,50 is centered.
type Anchor struct {
	XPercent, YPercent float64
}

// CenterAnchor is the default anchor used when a request specifies none.
var CenterAnchor = Anchor{XPercent: 50, YPercent: 50}

// named9 maps the nine compass-point anchor names used in declarative
// requests (the `anchor` field) to percentages.
var named9 = map[string]Anchor{
	"topleft":      {0, 0},
	"top":          {50, 0},
	"topright":     {100, 0},
	"left":         {0, 50},
	"center":       {50, 50},
	"middle":       {50, 50},
	"right":        {100, 50},
	"bottomleft":   {0, 100},
	"bottom":       {50, 100},
	"bottomright":  {100, 100},
}

// Layout is the solved geometry: a crop rect within the source, a canvas
// size, and the image rect (the resampled crop) placed within the
// canvas.
type Layout struct {
	Crop   Rect
	Canvas AspectRatio
	Image  Rect
}

// validate returns an error unless the canvas is positive, the image fits
// within the canvas, and the source crop lies within source.
func (l Layout) validate(source AspectRatio) error {
	if l.Canvas.W <= 0 || l.Canvas.H <= 0 {
		return errf(ValueScalingFailed, "canvas dims must be positive, got %dx%d", l.Canvas.W, l.Canvas.H)
	}
	if l.Image.W > l.Canvas.W || l.Image.H > l.Canvas.H {
		return errf(InvalidInternalState, "image %dx%d exceeds canvas %dx%d", l.Image.W, l.Image.H, l.Canvas.W, l.Canvas.H)
	}
	if l.Crop.X < 0 || l.Crop.Y < 0 || l.Crop.X2() > source.W || l.Crop.Y2() > source.H {
		return errf(InvalidInternalState, "source crop (%d,%d,%d,%d) escapes source %dx%d", l.Crop.X, l.Crop.Y, l.Crop.X2(), l.Crop.Y2(), source.W, source.H)
	}
	return nil
}

// axisOffset centers a span of length newLen within a span of length
// oldLen, weighted by an anchor percentage; 50 yields exact centering.
func axisOffset(oldLen, newLen int32, percent float64) int32 {
	diff := oldLen - newLen
	return int32(float64(diff) * percent / 100.0)
}

// --- Step primitives ---

// scaleToInner sizes the canvas (and image, identical to canvas since no
// crop narrowing occurs) to the largest rect <= target in both dims that
// preserves the current crop's aspect ratio.
func scaleToInner(l Layout, target AspectRatio) Layout {
	cropAspect := AspectRatio{W: l.Crop.W, H: l.Crop.H}
	dims := cropAspect.InscribeIn(target)
	l.Canvas = dims
	l.Image = rectFromDims(dims.W, dims.H)
	return l
}

// scaleToOuter sizes the canvas to the smallest rect >= target in both
// dims that preserves the current crop's aspect ratio.
func scaleToOuter(l Layout, target AspectRatio) Layout {
	cropAspect := AspectRatio{W: l.Crop.W, H: l.Crop.H}
	dims := cropAspect.CircumscribeAbout(target)
	l.Canvas = dims
	l.Image = rectFromDims(dims.W, dims.H)
	return l
}

// narrowCropToAspect inscribes target's aspect ratio within the current
// crop rect, then re-centers it using anchor, returning the new crop.
func narrowCropToAspect(crop Rect, target AspectRatio, anchor Anchor) Rect {
	bound := AspectRatio{W: crop.W, H: crop.H}
	dims := target.InscribeIn(bound)
	dx := axisOffset(crop.W, dims.W, anchor.XPercent)
	dy := axisOffset(crop.H, dims.H, anchor.YPercent)
	return Rect{X: crop.X + dx, Y: crop.Y + dy, W: dims.W, H: dims.H}
}

// fillCrop narrows the source crop to target's aspect ratio (maximal
// area within the current crop) and sets canvas = image = target
// exactly, i.e. a "cover" crop-and-scale in one step.
func fillCrop(l Layout, target AspectRatio, anchor Anchor) Layout {
	l.Crop = narrowCropToAspect(l.Crop, target, anchor)
	l.Canvas = target
	l.Image = rectFromDims(target.W, target.H)
	return l
}

// cropAspect narrows the source crop to target's aspect ratio without
// touching canvas or image.
func cropAspect(l Layout, target AspectRatio, anchor Anchor) Layout {
	l.Crop = narrowCropToAspect(l.Crop, target, anchor)
	return l
}

// pad enlarges the canvas to target on both axes; the image keeps its
// dims and is re-centered within the larger canvas.
func pad(l Layout, target AspectRatio, anchor Anchor) Layout {
	oldImage := l.Image
	l.Canvas = target
	dx := axisOffset(target.W, oldImage.W, anchor.XPercent)
	dy := axisOffset(target.H, oldImage.H, anchor.YPercent)
	l.Image = Rect{X: dx, Y: dy, W: oldImage.W, H: oldImage.H}
	return l
}

// padAspect enlarges the canvas minimally so its aspect matches target,
// never shrinking either axis.
func padAspect(l Layout, target AspectRatio, anchor Anchor) Layout {
	newCanvas := target.CircumscribeAbout(l.Canvas)
	return pad(l, newCanvas, anchor)
}

// cropIntersection intersects the canvas (and image) with target,
// componentwise-minimum on each axis.
func cropIntersection(l Layout, target AspectRatio, anchor Anchor) Layout {
	w, h := l.Canvas.W, l.Canvas.H
	if target.W < w {
		w = target.W
	}
	if target.H < h {
		h = target.H
	}
	newCanvas := AspectRatio{W: w, H: h}
	// Narrow the image to the new canvas and trim the source crop by the
	// same proportion (placed by anchor) so the image is not distorted.
	img, crop := l.Image, l.Crop
	if img.W > w {
		cw := int32(int64(crop.W) * int64(w) / int64(img.W))
		crop.X += axisOffset(crop.W, cw, anchor.XPercent)
		crop.W, img.W = cw, w
	}
	if img.H > h {
		ch := int32(int64(crop.H) * int64(h) / int64(img.H))
		crop.Y += axisOffset(crop.H, ch, anchor.YPercent)
		crop.H, img.H = ch, h
	}
	return pad(Layout{Crop: crop, Canvas: newCanvas, Image: img}, newCanvas, anchor)
}

// distort sets canvas = image = target directly with no source crop
// adjustment: a non-uniform stretch.
func distort(l Layout, target AspectRatio) Layout {
	l.Canvas = target
	l.Image = rectFromDims(target.W, target.H)
	return l
}

// --- Conditions (SkipIf/SkipUnless) ---

func axesOrdering(source, target AspectRatio) (w, h Ordering) {
	return source.CompareW(target), source.CompareH(target)
}

func condEqual(source, target AspectRatio) bool {
	w, h := axesOrdering(source, target)
	return w == Equal && h == Equal
}

func condEither(source, target AspectRatio, ord Ordering) bool {
	w, h := axesOrdering(source, target)
	return w == ord || h == ord
}

func condBoth(source, target AspectRatio, ord Ordering) bool {
	w, h := axesOrdering(source, target)
	return w == ord && h == ord
}

func condNeither(source, target AspectRatio, ord Ordering) bool {
	w, h := axesOrdering(source, target)
	return w != ord && h != ord
}

func condSmaller2D(source, target AspectRatio) bool { return condBoth(source, target, Less) }
func condLarger2D(source, target AspectRatio) bool  { return condBoth(source, target, Greater) }

func condLarger1DSmaller1D(source, target AspectRatio) bool {
	w, h := axesOrdering(source, target)
	return (w == Greater && h == Less) || (w == Less && h == Greater)
}

// --- Mode compilation ---

// Mode selects the fit strategy of a declarative request.
type Mode int

const (
	ModeMax Mode = iota
	ModePad
	ModePadDownscaleOnly
	ModePadOrAspect
	ModeCrop
	ModeCropOrAspect
	ModeCropDownscaleOnly
	ModeStretch
	ModeAspectCrop
)

// ScaleMode restricts whether a solve may upscale, downscale, or both.
type ScaleMode int

const (
	ScaleDown ScaleMode = iota
	ScaleUp
	ScaleBoth
	ScaleCanvas
)

// Solve runs the step sequence named by mode against source, producing a
// Layout satisfying the fit/crop/pad invariants.
func Solve(source AspectRatio, target AspectRatio, mode Mode, scale ScaleMode, anchor Anchor) (Layout, error) {
	if target.W <= 0 || target.H <= 0 {
		return Layout{}, errf(ValueScalingFailed, "target dims must be positive, got %dx%d", target.W, target.H)
	}

	initial := Layout{
		Crop:   rectFromDims(source.W, source.H),
		Canvas: source,
		Image:  rectFromDims(source.W, source.H),
	}

	l := solveMode(initial, source, target, mode, anchor)
	l = applyScaleMode(l, initial, source, target, scale)

	if err := l.validate(source); err != nil {
		return Layout{}, err
	}
	return l, nil
}

func solveMode(l Layout, source, target AspectRatio, mode Mode, anchor Anchor) Layout {
	switch mode {
	case ModeMax:
		if !condEither(source, target, Greater) {
			return l
		}
		return scaleToInner(l, target)

	case ModePad:
		return pad(scaleToInner(l, target), target, anchor)

	case ModePadDownscaleOnly:
		if condBoth(source, target, Less) {
			return l
		}
		return pad(scaleToInner(l, target), target, anchor)

	case ModePadOrAspect:
		if !condBoth(source, target, Less) {
			return pad(scaleToInner(l, target), target, anchor)
		}
		return padAspect(l, target, anchor)

	case ModeCrop:
		return fillCrop(l, target, anchor)

	case ModeCropOrAspect:
		if condEither(source, target, Less) {
			return cropAspect(l, target, anchor)
		}
		return fillCrop(l, target, anchor)

	case ModeCropDownscaleOnly:
		if condEither(source, target, Less) {
			if condLarger1DSmaller1D(source, target) {
				return cropIntersection(l, target, anchor)
			}
			return l
		}
		return fillCrop(l, target, anchor)

	case ModeStretch:
		return distort(l, target)

	case ModeAspectCrop:
		return cropAspect(l, target, anchor)

	default:
		return scaleToInner(l, target)
	}
}

// applyScaleMode enforces the `scale` knob: DownscaleOnly (default)
// reverts to the untouched source crop when the solved image would
// upscale; UpscaleOnly reverts when it would downscale; Both performs no
// correction; Canvas also performs no correction: canvas and image are
// kept exactly as the mode solved them, so neither is clamped against
// the source crop.
func applyScaleMode(l, initial Layout, source, target AspectRatio, scale ScaleMode) Layout {
	switch scale {
	case ScaleDown:
		if l.Image.W > l.Crop.W || l.Image.H > l.Crop.H {
			return initial
		}
	case ScaleUp:
		if l.Image.W < l.Crop.W || l.Image.H < l.Crop.H {
			return initial
		}
	case ScaleCanvas:
		// No correction.
	case ScaleBoth:
	}
	return l
}
