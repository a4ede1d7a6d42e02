package core

import "math"

// ResizeParams configures one call to Resize.
type ResizeParams struct {
	X, Y, W, H         int
	SharpenPercentGoal float64
	FilterPreset       Filter
	WorkingSpace       Floatspace
}

// Resize executes a two-pass separable resize
// section 4.5: source -> premultiplied-linear float, vertical accumulate,
// horizontal accumulate, composite back into the destination canvas
// sub-rectangle [X,X+W) x [Y,Y+H).
//
// src must be BGR or BGRA u8; dst must be BGR or BGRA u8.
func Resize(src *BitmapWindow[uint8], dst *BitmapWindow[uint8], params ResizeParams) error {
	if src.Info().Layout != BGR && src.Info().Layout != BGRA {
		return errf(UnsupportedPixelFormat, "source layout must be BGR or BGRA")
	}
	if dst.Info().Layout != BGR && dst.Info().Layout != BGRA {
		return errf(UnsupportedPixelFormat, "destination layout must be BGR or BGRA")
	}
	if params.X+params.W > dst.W() || params.Y+params.H > dst.H() {
		return errf(InvalidArgument, "destination rectangle (%d,%d,%d,%d) out of bounds for %dx%d canvas",
			params.X, params.Y, params.W, params.H, dst.W(), dst.H())
	}
	if params.W <= 0 || params.H <= 0 {
		return errf(InvalidArgument, "target dims must be positive, got %dx%d", params.W, params.H)
	}

	cc := NewColorContext(params.WorkingSpace, 0)

	details := CreateInterpolationDetails(params.FilterPreset)
	details.SetSharpenPercentGoal(params.SharpenPercentGoal)

	wy, err := CreatePixelRowWeights(details, params.H, src.H())
	if err != nil {
		return err
	}
	wx, err := CreatePixelRowWeights(details, params.W, src.W())
	if err != nil {
		return err
	}

	srcW := src.W()
	accumulator := make([]float32, srcW*4)
	converted := make([]float32, srcW*4)
	hscaled := make([]float32, params.W*4)

	srcAlphaMeaningful := src.Info().Layout == BGRA && src.Info().AlphaMeaningful

	for r := 0; r < params.H; r++ {
		contrib := wy.Contribs[r]
		for i := range accumulator {
			accumulator[i] = 0
		}

		for sy := contrib.LeftPixel; sy <= contrib.RightPixel; sy++ {
			widx := contrib.LeftWeightIdx + (sy - contrib.LeftPixel)
			weight := wy.Weights[widx]
			if math.Abs(float64(weight)) <= weightZeroThreshold {
				continue
			}
			row, err := src.Row(sy)
			if err != nil {
				return err
			}
			convertRowToPremulLinear(cc, row, src.Info().Layout, srcAlphaMeaningful, converted)
			for i, v := range converted {
				accumulator[i] += weight * v
			}
		}

		scaleRowBGRAf32(accumulator, srcW, hscaled, params.W, wx)

		dstRow, err := dst.RowMut(params.Y + r)
		if err != nil {
			return err
		}
		dstSlice := dstRow[params.X*dst.Info().Channels() : (params.X+params.W)*dst.Info().Channels()]
		if err := compositeRow(cc, hscaled, dstSlice, dst.Info()); err != nil {
			return err
		}
	}

	return nil
}

// convertRowToPremulLinear converts one sRGB u8 row into premultiplied
// working-space float. Alpha is taken
// from the source if BGRA and alpha-meaningful, else treated as 1.0.
func convertRowToPremulLinear(cc *ColorContext, row []uint8, layout PixelLayout, alphaMeaningful bool, out []float32) {
	ch := layout.Channels()
	n := len(row) / ch
	for x := 0; x < n; x++ {
		px := row[x*ch : x*ch+ch]
		var alpha float32 = 1.0
		if layout == BGRA && alphaMeaningful {
			alpha = float32(px[3]) / 255.0
		}
		o := out[x*4 : x*4+4]
		o[0] = alpha * cc.ToFloat(px[0])
		o[1] = alpha * cc.ToFloat(px[1])
		o[2] = alpha * cc.ToFloat(px[2])
		o[3] = alpha
	}
}

// scaleRowBGRAf32 applies the horizontal contribution weights to one
// premultiplied-linear accumulator row, producing the resampled row at
// the target width.
func scaleRowBGRAf32(source []float32, sourceWidth int, target []float32, targetWidth int, weights *PixelRowWeights) {
	_ = sourceWidth
	for dstX, contrib := range weights.Contribs {
		var sum [4]float32
		for sx := contrib.LeftPixel; sx <= contrib.RightPixel; sx++ {
			widx := contrib.LeftWeightIdx + (sx - contrib.LeftPixel)
			w := weights.Weights[widx]
			px := source[sx*4 : sx*4+4]
			sum[0] += px[0] * w
			sum[1] += px[1] * w
			sum[2] += px[2] * w
			sum[3] += px[3] * w
		}
		o := target[dstX*4 : dstX*4+4]
		o[0], o[1], o[2], o[3] = sum[0], sum[1], sum[2], sum[3]
	}
	_ = targetWidth
}
