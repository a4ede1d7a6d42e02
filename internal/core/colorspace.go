package core

import "math"

// Floatspace selects the working colour space used while resampling.
type Floatspace int

const (
	// AsIs performs no colour conversion; sRGB byte values are treated
	// as linear for the purposes of the weighted sum (fastest, least
	// correct near high-contrast edges).
	AsIs Floatspace = iota
	// Linear converts sRGB <-> linear-light before/after resampling.
	Linear
	// Gamma applies a caller-supplied gamma exponent instead of the
	// sRGB piecewise curve (fed by an ICC/TRC upstream of this package).
	Gamma
)

// ColorContext precomputes the byte->float lookup table used on the hot
// path of the resampler. It is immutable after construction and may be
// shared across concurrent resizes.
type ColorContext struct {
	space      Floatspace
	gamma      float32
	byteToFloat [256]float32
}

// NewColorContext builds the 256-entry LUT for the given working space.
// gamma is only consulted when space == Gamma; pass 0 otherwise.
func NewColorContext(space Floatspace, gamma float32) *ColorContext {
	cc := &ColorContext{space: space, gamma: gamma}
	for i := 0; i < 256; i++ {
		cc.byteToFloat[i] = cc.srgbToFloatspaceUncached(uint8(i))
	}
	return cc
}

func (cc *ColorContext) srgbToFloatspaceUncached(b uint8) float32 {
	v := float32(b) / 255.0
	switch cc.space {
	case Linear:
		return srgbToLinear(v)
	case Gamma:
		if cc.gamma > 0 {
			return float32(math.Pow(float64(v), float64(cc.gamma)))
		}
		return v
	default:
		return v
	}
}

// ToFloat converts a single sRGB byte sample to the working float space
// via table lookup.
func (cc *ColorContext) ToFloat(b uint8) float32 {
	return cc.byteToFloat[b]
}

// ToByte converts a working-space float sample back to an sRGB byte,
// applying the inverse TRC, round-half-up, and clamping to [0,255].
func (cc *ColorContext) ToByte(v float32) uint8 {
	switch cc.space {
	case Linear:
		return clampByte(linearToSrgbByte(v))
	case Gamma:
		if cc.gamma > 0 {
			v = float32(math.Pow(float64(v), 1.0/float64(cc.gamma)))
		}
		return clampByte(v*255.0 + 0.5)
	default:
		return clampByte(v*255.0 + 0.5)
	}
}

func clampByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// srgbToLinear applies the sRGB EOTF: v <= 0.04045 ? v/12.92 : ((v+0.055)/1.055)^2.4
func srgbToLinear(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return float32(math.Pow((float64(v)+0.055)/1.055, 2.4))
}

// linearToSrgbByte applies the inverse sRGB OETF, scaled into [0,255]
// with the round-half-up bias folded in:
// v <= 0.0031308 ? 12.92*v*255 : 1.055*255*v^(1/2.4) - 14.025, + 0.5
//
// Reference implementations favor a reciprocal-polynomial fast-pow
// approximation here; we use math.Pow directly and accept the
// documented sub-1-LSB deviation that entails.
func linearToSrgbByte(v float32) float32 {
	if v <= 0 {
		return 0.5
	}
	if v <= 0.0031308 {
		return 12.92*v*255.0 + 0.5
	}
	return float32(1.055*255.0*math.Pow(float64(v), 1.0/2.4)-14.025) + 0.5
}
