package core

import "testing"

func TestWindowRowLength(t *testing.T) {
	b, err := NewBitmap[uint8](5, 4, SurfaceInfo{Layout: BGRA})
	if err != nil {
		t.Fatalf("NewBitmap: %v", err)
	}
	win := b.Window()
	row, err := win.Row(0)
	if err != nil {
		t.Fatalf("Row(0): %v", err)
	}
	if len(row) != 5*4 {
		t.Errorf("row length = %d, want %d", len(row), 5*4)
	}
}

func TestWindowRowOutOfRange(t *testing.T) {
	b, _ := NewBitmap[uint8](5, 4, SurfaceInfo{Layout: BGR})
	win := b.Window()
	if _, err := win.Row(-1); err == nil {
		t.Errorf("expected error for row -1")
	}
	if _, err := win.Row(4); err == nil {
		t.Errorf("expected error for row == height")
	}
}

func TestWindowSubIsolatesPixels(t *testing.T) {
	b, _ := NewBitmap[uint8](4, 4, SurfaceInfo{Layout: BGR})
	win := b.Window()
	row0, _ := win.RowMut(0)
	for i := range row0 {
		row0[i] = 9
	}
	sub, err := win.Sub(1, 1, 3, 3)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if sub.W() != 2 || sub.H() != 2 {
		t.Errorf("sub dims = %dx%d, want 2x2", sub.W(), sub.H())
	}
	subRow0, _ := sub.Row(0)
	for _, v := range subRow0 {
		if v != 0 {
			t.Errorf("sub row should not see row 0 of parent, got %d", v)
		}
	}
}

func TestWindowSplitRowsDisjoint(t *testing.T) {
	b, _ := NewBitmap[uint8](4, 6, SurfaceInfo{Layout: BGR})
	win := b.Window()
	top, bottom, err := win.SplitRows(2)
	if err != nil {
		t.Fatalf("SplitRows: %v", err)
	}
	if top.H() != 2 || bottom.H() != 4 {
		t.Errorf("split heights = %d/%d, want 2/4", top.H(), bottom.H())
	}
}

func TestWindowClearAll(t *testing.T) {
	b, _ := NewBitmap[uint8](3, 3, SurfaceInfo{Layout: BGR})
	win := b.Window()
	row, _ := win.RowMut(0)
	for i := range row {
		row[i] = 42
	}
	win.ClearAll()
	for y := 0; y < 3; y++ {
		r, _ := win.Row(y)
		for _, v := range r {
			if v != 0 {
				t.Errorf("ClearAll left non-zero sample %d at row %d", v, y)
			}
		}
	}
}
