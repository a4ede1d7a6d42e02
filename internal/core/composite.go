package core

// compositeRow converts one premultiplied working-space float row back to
// sRGB bytes and writes it into dst according to dst.Compose,
// section 4.6. src holds 4 floats (premultiplied B,G,R,A) per pixel
// regardless of dst's channel count.
func compositeRow(cc *ColorContext, src []float32, dst []uint8, info BitmapInfo) error {
	ch := info.Channels()
	n := len(dst) / ch
	if n*4 > len(src) {
		return errf(InvalidInternalState, "composite row length mismatch: dst has %d pixels, src has %d", n, len(src)/4)
	}

	switch info.Compose {
	case ReplaceSelf:
		for x := 0; x < n; x++ {
			writeReplace(cc, src[x*4:x*4+4], dst[x*ch:x*ch+ch], info)
		}
	case BlendWithSelf:
		for x := 0; x < n; x++ {
			blendOverExisting(cc, src[x*4:x*4+4], dst[x*ch:x*ch+ch], info)
		}
	case BlendWithMatte:
		matte := matteAsPremulLinear(cc, info.MatteColor)
		for x := 0; x < n; x++ {
			px := src[x*4 : x*4+4]
			var blended [4]float32
			a := px[3]
			blended[0] = px[0] + matte[0]*(1-a)
			blended[1] = px[1] + matte[1]*(1-a)
			blended[2] = px[2] + matte[2]*(1-a)
			blended[3] = a + matte[3]*(1-a)
			writeReplace(cc, blended[:], dst[x*ch:x*ch+ch], info)
		}
	default:
		return errf(InvalidArgument, "unknown compositing mode %d", info.Compose)
	}
	return nil
}

// writeReplace demultiplies premultiplied working-space px and writes it
// as sRGB bytes, unconditionally overwriting dst.
func writeReplace(cc *ColorContext, px []float32, dst []uint8, info BitmapInfo) {
	b, g, r, a := demultiply(px)
	dst[0] = cc.ToByte(b)
	dst[1] = cc.ToByte(g)
	dst[2] = cc.ToByte(r)
	if info.Layout == BGRA {
		if info.AlphaMeaningful {
			dst[3] = clampByte(a*255.0 + 0.5)
		} else {
			dst[3] = 255
		}
	}
}

// blendOverExisting composites premultiplied px (source) over the pixel
// already in dst (destination), using the standard "over" operator, and
// writes the result back into dst.
func blendOverExisting(cc *ColorContext, px []float32, dst []uint8, info BitmapInfo) {
	dstAlpha := float32(1.0)
	if info.Layout == BGRA && info.AlphaMeaningful {
		dstAlpha = float32(dst[3]) / 255.0
	}
	dstPremul := [3]float32{
		dstAlpha * cc.ToFloat(dst[0]),
		dstAlpha * cc.ToFloat(dst[1]),
		dstAlpha * cc.ToFloat(dst[2]),
	}

	srcAlpha := px[3]
	outAlpha := srcAlpha + dstAlpha*(1-srcAlpha)
	var out [4]float32
	out[0] = px[0] + dstPremul[0]*(1-srcAlpha)
	out[1] = px[1] + dstPremul[1]*(1-srcAlpha)
	out[2] = px[2] + dstPremul[2]*(1-srcAlpha)
	out[3] = outAlpha

	writeReplace(cc, out[:], dst, info)
}

// demultiply divides premultiplied b,g,r by alpha. When a <= 0 it returns
// all zeros, leaving fully-transparent pixels black.
func demultiply(px []float32) (b, g, r, a float32) {
	a = px[3]
	if a <= 0 {
		return 0, 0, 0, 0
	}
	return px[0] / a, px[1] / a, px[2] / a, a
}

// matteAsPremulLinear converts a BGRA matte color (stored as sRGB bytes,
// always fully opaque) into a premultiplied working-space quad.
func matteAsPremulLinear(cc *ColorContext, matte [4]uint8) [4]float32 {
	return [4]float32{
		cc.ToFloat(matte[0]),
		cc.ToFloat(matte[1]),
		cc.ToFloat(matte[2]),
		1.0,
	}
}
