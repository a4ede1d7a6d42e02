package core

import "math"

// Contribution describes one output pixel's mapping back to a contiguous
// span of input pixels, as indices into PixelRowWeights.Weights.
type Contribution struct {
	LeftPixel, RightPixel       int
	LeftWeightIdx, RightWeightIdx int
}

// PixelRowWeights holds, for one output axis, every output pixel's
// contribution span plus the flat weight table those spans index into.
type PixelRowWeights struct {
	Contribs     []Contribution
	Weights      []float32
	AllocatedSpan int
}

const weightZeroThreshold = 2e-8

// nativeSharpenRatio numerically integrates the positive and negative
// areas of the filter over [-window, window] at 50 subintervals and
// returns neg/pos.
func nativeSharpenRatio(d *InterpolationDetails) float64 {
	const subintervals = 50
	lo, hi := -d.Window, d.Window
	step := (hi - lo) / subintervals
	var pos, neg float64
	for i := 0; i < subintervals; i++ {
		x := lo + (float64(i)+0.5)*step
		v := d.Eval(x) * step
		if v > 0 {
			pos += v
		} else {
			neg += v
		}
	}
	if pos == 0 {
		return 0
	}
	return -neg / pos
}

// CreatePixelRowWeights builds the contribution table mapping inputLen
// source samples to outputLen output samples along one axis.
func CreatePixelRowWeights(d *InterpolationDetails, outputLen, inputLen int) (*PixelRowWeights, error) {
	if outputLen <= 0 || inputLen <= 0 {
		return nil, errf(InvalidArgument, "output/input length must be positive, got %d/%d", outputLen, inputLen)
	}

	nativeSharpen := nativeSharpenRatio(d)
	desiredSharpen := math.Max(nativeSharpen, d.SharpenPercentGoal/100.0)
	if desiredSharpen < nativeSharpen {
		desiredSharpen = nativeSharpen
	}
	if desiredSharpen > 0.999999999 {
		desiredSharpen = 0.999999999
	}

	scale := float64(outputLen) / float64(inputLen)
	downscale := math.Min(1, scale)
	halfWindow := (d.Window + 0.5) / downscale
	allocatedSpan := 2*int(math.Ceil(halfWindow-1e-9)) + 1

	contribs := make([]Contribution, outputLen)
	var weights []float32

	for u := 0; u < outputLen; u++ {
		centerSrc := (float64(u)+0.5)/scale - 0.5
		leftEdge := int(math.Floor(centerSrc)) - (allocatedSpan-1)/2
		rightEdge := leftEdge + allocatedSpan - 1

		leftSrc := leftEdge
		if leftSrc < 0 {
			leftSrc = 0
		}
		rightSrc := rightEdge
		if rightSrc > inputLen-1 {
			rightSrc = inputLen - 1
		}
		if rightSrc < leftSrc {
			rightSrc = leftSrc
		}

		span := rightSrc - leftSrc + 1
		if span > allocatedSpan {
			return nil, errf(InvalidInternalState, "contribution span %d exceeds allocated span %d", span, allocatedSpan)
		}

		rowWeights := make([]float64, span)
		var total, totalPos, totalNeg float64
		for i := 0; i < span; i++ {
			ix := leftSrc + i
			t := downscale * (float64(ix) - centerSrc)
			v := d.Eval(t)
			if math.Abs(v) <= weightZeroThreshold {
				v = 0
			}
			rowWeights[i] = v
			total += v
			if v > 0 {
				totalPos += v
			} else {
				totalNeg += v
			}
		}

		switch {
		case total > 0 && desiredSharpen <= nativeSharpen:
			inv := 1.0 / total
			for i := range rowWeights {
				rowWeights[i] *= inv
			}
		case totalNeg < 0 && desiredSharpen < 1:
			targetPos := 1.0 / (1.0 - desiredSharpen)
			targetNeg := -desiredSharpen * targetPos
			var posScale, negScale float64
			if totalPos != 0 {
				posScale = targetPos / totalPos
			}
			if totalNeg != 0 {
				negScale = targetNeg / totalNeg
			}
			for i, v := range rowWeights {
				if v > 0 {
					rowWeights[i] = v * posScale
				} else if v < 0 {
					rowWeights[i] = v * negScale
				}
			}
		}

		// Trim leading/trailing exact zeros.
		trimLeft, trimRight := 0, span
		for trimLeft < trimRight && rowWeights[trimLeft] == 0 {
			trimLeft++
		}
		for trimRight > trimLeft && rowWeights[trimRight-1] == 0 {
			trimRight--
		}
		if trimLeft >= trimRight {
			// Degenerate (all-zero) contribution: keep a single zero-weight
			// sample so every output pixel still has a valid span.
			trimLeft, trimRight = 0, 1
			if span == 0 {
				rowWeights = []float64{0}
			}
		}

		leftWeightIdx := len(weights)
		for i := trimLeft; i < trimRight; i++ {
			weights = append(weights, float32(rowWeights[i]))
		}
		rightWeightIdx := len(weights) - 1

		contribs[u] = Contribution{
			LeftPixel:      leftSrc + trimLeft,
			RightPixel:     leftSrc + trimRight - 1,
			LeftWeightIdx:  leftWeightIdx,
			RightWeightIdx: rightWeightIdx,
		}
	}

	return &PixelRowWeights{Contribs: contribs, Weights: weights, AllocatedSpan: allocatedSpan}, nil
}
