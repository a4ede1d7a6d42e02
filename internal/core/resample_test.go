package core

import "testing"

func fillCheckerboard(t *testing.T, bmp *Bitmap[uint8]) {
	t.Helper()
	win := bmp.Window()
	for y := 0; y < win.H(); y++ {
		row, err := win.RowMut(y)
		if err != nil {
			t.Fatalf("RowMut(%d): %v", y, err)
		}
		for x := 0; x < win.W(); x++ {
			v := uint8(0)
			if (x+y)%2 == 0 {
				v = 255
			}
			row[x*3+0], row[x*3+1], row[x*3+2] = v, v, v
		}
	}
}

func TestResizeIdentityPreservesPixelsWithinOneLSB(t *testing.T) {
	src, err := NewBitmap[uint8](8, 8, SurfaceInfo{Layout: BGR, Space: SRGB, Compose: ReplaceSelf})
	if err != nil {
		t.Fatalf("NewBitmap src: %v", err)
	}
	fillCheckerboard(t, src)

	dst, err := NewBitmap[uint8](8, 8, SurfaceInfo{Layout: BGR, Space: SRGB, Compose: ReplaceSelf})
	if err != nil {
		t.Fatalf("NewBitmap dst: %v", err)
	}

	err = Resize(src.Window(), dst.Window(), ResizeParams{
		X: 0, Y: 0, W: 8, H: 8,
		FilterPreset: FilterBox,
		WorkingSpace: AsIs,
	})
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}

	srcWin, dstWin := src.Window(), dst.Window()
	for y := 0; y < 8; y++ {
		srcRow, _ := srcWin.Row(y)
		dstRow, _ := dstWin.Row(y)
		for i := range srcRow {
			diff := int(srcRow[i]) - int(dstRow[i])
			if diff < -1 || diff > 1 {
				t.Errorf("row %d sample %d: src=%d dst=%d, diff %d exceeds 1 LSB", y, i, srcRow[i], dstRow[i], diff)
			}
		}
	}
}

func TestResizeRejectsDestinationRectOutOfBounds(t *testing.T) {
	src, _ := NewBitmap[uint8](8, 8, SurfaceInfo{Layout: BGR})
	dst, _ := NewBitmap[uint8](8, 8, SurfaceInfo{Layout: BGR})
	err := Resize(src.Window(), dst.Window(), ResizeParams{
		X: 4, Y: 0, W: 8, H: 8, // x+w=12 > dst width 8
		FilterPreset: FilterBox,
		WorkingSpace: AsIs,
	})
	if err == nil {
		t.Errorf("expected error for out-of-bounds destination rect")
	}
}

func TestResizeRejectsUnsupportedLayout(t *testing.T) {
	src, _ := NewBitmap[uint8](4, 4, SurfaceInfo{Layout: Gray})
	dst, _ := NewBitmap[uint8](4, 4, SurfaceInfo{Layout: BGR})
	err := Resize(src.Window(), dst.Window(), ResizeParams{
		X: 0, Y: 0, W: 4, H: 4,
		FilterPreset: FilterBox,
		WorkingSpace: AsIs,
	})
	if err == nil {
		t.Errorf("expected error for Gray source layout")
	}
}

func TestResizeDownscaleProducesTargetDims(t *testing.T) {
	src, _ := NewBitmap[uint8](1200, 400, SurfaceInfo{Layout: BGR, Compose: ReplaceSelf})
	fillCheckerboard(t, src)
	dst, _ := NewBitmap[uint8](100, 33, SurfaceInfo{Layout: BGR, Compose: ReplaceSelf})

	err := Resize(src.Window(), dst.Window(), ResizeParams{
		X: 0, Y: 0, W: 100, H: 33,
		FilterPreset: FilterLanczos3,
		WorkingSpace: Linear,
	})
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if dst.Width() != 100 || dst.Height() != 33 {
		t.Errorf("dst dims = %dx%d, want 100x33", dst.Width(), dst.Height())
	}
}
