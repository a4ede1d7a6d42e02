package core

import "testing"

func TestNewBitmapStrideAligned(t *testing.T) {
	b, err := NewBitmap[uint8](7, 3, SurfaceInfo{Layout: BGRA})
	if err != nil {
		t.Fatalf("NewBitmap: %v", err)
	}
	if b.Info().Stride%64 != 0 {
		t.Errorf("stride %d is not 64-byte aligned for u8 buffer", b.Info().Stride)
	}
	if b.Info().Stride < b.Info().Width*b.Info().Channels() {
		t.Errorf("stride %d smaller than width*channels %d", b.Info().Stride, b.Info().Width*b.Info().Channels())
	}
}

func TestNewBitmapRejectsNonPositiveDims(t *testing.T) {
	if _, err := NewBitmap[uint8](0, 5, SurfaceInfo{Layout: BGR}); err == nil {
		t.Errorf("expected error for width=0")
	}
	if _, err := NewBitmap[uint8](5, -1, SurfaceInfo{Layout: BGR}); err == nil {
		t.Errorf("expected error for negative height")
	}
}

func TestBitmapCropAdjustsOriginInPlace(t *testing.T) {
	b, err := NewBitmap[uint8](10, 10, SurfaceInfo{Layout: BGR})
	if err != nil {
		t.Fatalf("NewBitmap: %v", err)
	}
	if err := b.Crop(2, 2, 8, 8); err != nil {
		t.Fatalf("Crop: %v", err)
	}
	if b.Width() != 6 || b.Height() != 6 {
		t.Errorf("after crop: got %dx%d, want 6x6", b.Width(), b.Height())
	}
}

func TestBitmapCropRejectsOutOfBounds(t *testing.T) {
	b, _ := NewBitmap[uint8](10, 10, SurfaceInfo{Layout: BGR})
	if err := b.Crop(-1, 0, 5, 5); err == nil {
		t.Errorf("expected error for negative x1")
	}
	if err := b.Crop(0, 0, 11, 5); err == nil {
		t.Errorf("expected error for x2 beyond width")
	}
}
