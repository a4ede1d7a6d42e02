package pipeline

import (
	"image"
	"image/color"

	"github.com/AnyUserName/tgimg-core/internal/core"
)

// toBitmap copies a decoded image.Image into an owned BGRA core.Bitmap,
// the raster format the resampling engine operates on.
func toBitmap(img image.Image) (*core.Bitmap[uint8], error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	bmp, err := core.NewBitmap[uint8](w, h, core.SurfaceInfo{
		Layout:             core.BGRA,
		Space:              core.SRGB,
		AlphaMeaningful:    true,
		AlphaPremultiplied: false,
		Compose:            core.ReplaceSelf,
	})
	if err != nil {
		return nil, err
	}
	win := bmp.Window()

	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect == bounds {
		for y := 0; y < h; y++ {
			row, _ := win.RowMut(y)
			src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
			for x := 0; x < w; x++ {
				r, g, b, a := src[x*4+0], src[x*4+1], src[x*4+2], src[x*4+3]
				row[x*4+0], row[x*4+1], row[x*4+2], row[x*4+3] = b, g, r, a
			}
		}
		return bmp, nil
	}

	for y := 0; y < h; y++ {
		row, _ := win.RowMut(y)
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			row[x*4+0], row[x*4+1], row[x*4+2], row[x*4+3] = c.B, c.G, c.R, c.A
		}
	}
	return bmp, nil
}

// fromBitmap converts a resampled BGRA canvas window back into a
// standard library image.Image for the encoder stage.
func fromBitmap(win *core.BitmapWindow[uint8]) (*image.NRGBA, error) {
	w, h := win.W(), win.H()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row, err := win.Row(y)
		if err != nil {
			return nil, err
		}
		dst := out.Pix[y*out.Stride : y*out.Stride+w*4]
		for x := 0; x < w; x++ {
			b, g, r, a := row[x*4+0], row[x*4+1], row[x*4+2], row[x*4+3]
			dst[x*4+0], dst[x*4+1], dst[x*4+2], dst[x*4+3] = r, g, b, a
		}
	}
	return out, nil
}
