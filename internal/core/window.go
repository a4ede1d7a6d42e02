package core

// BitmapWindow is a non-owning view into a Bitmap (or another window):
// a typed slice anchored at the window's own (0,0), plus the BitmapInfo
// describing the window's dims and the underlying stride. Rows are
// produced by index rather than a lending iterator, since Go slices
// already give cheap, bounds-checked row sub-slices.
type BitmapWindow[T Sample] struct {
	info    BitmapInfo
	buf     []T
	origin  int
	wholeOf bool // true if this window covers its entire parent bitmap
}

func (w *BitmapWindow[T]) Info() BitmapInfo { return w.info }
func (w *BitmapWindow[T]) W() int           { return w.info.Width }
func (w *BitmapWindow[T]) H() int           { return w.info.Height }
func (w *BitmapWindow[T]) IsWhole() bool    { return w.wholeOf }

// Row returns the row-th scanline as a slice of length width*channels
// (stride padding excluded). The slice aliases the underlying buffer.
func (w *BitmapWindow[T]) Row(row int) ([]T, error) {
	if row < 0 || row >= w.info.Height {
		return nil, errf(InvalidArgument, "row %d out of range [0,%d)", row, w.info.Height)
	}
	n := w.info.Width * w.info.Channels()
	start := w.origin + row*w.info.Stride
	return w.buf[start : start+n], nil
}

// RowMut returns the row-th scanline for writing; it is the same slice
// Row returns.
func (w *BitmapWindow[T]) RowMut(row int) ([]T, error) {
	return w.Row(row)
}

// Sub returns a non-owning sub-window, validating bounds the same way
// Bitmap.Crop does.
func (w *BitmapWindow[T]) Sub(x1, y1, x2, y2 int) (*BitmapWindow[T], error) {
	if !(0 <= x1 && x1 < x2 && x2 <= w.info.Width && 0 <= y1 && y1 < y2 && y2 <= w.info.Height) {
		return nil, errf(InvalidArgument, "sub-window (%d,%d,%d,%d) invalid for %dx%d window", x1, y1, x2, y2, w.info.Width, w.info.Height)
	}
	info := w.info
	info.Width = x2 - x1
	info.Height = y2 - y1
	whole := w.wholeOf && x1 == 0 && y1 == 0 && x2 == w.info.Width && y2 == w.info.Height
	return &BitmapWindow[T]{
		info:    info,
		buf:     w.buf,
		origin:  w.origin + y1*w.info.Stride + x1*w.info.Channels(),
		wholeOf: whole,
	}, nil
}

// SplitRows splits the window at row boundary `at` into two disjoint
// windows covering [0,at) and [at,H).
func (w *BitmapWindow[T]) SplitRows(at int) (top, bottom *BitmapWindow[T], err error) {
	if at <= 0 || at >= w.info.Height {
		return nil, nil, errf(InvalidArgument, "split row %d out of range (0,%d)", at, w.info.Height)
	}
	top, err = w.Sub(0, 0, w.info.Width, at)
	if err != nil {
		return nil, nil, err
	}
	bottom, err = w.Sub(0, at, w.info.Width, w.info.Height)
	if err != nil {
		return nil, nil, err
	}
	return top, bottom, nil
}

// ClearAll zeros every sample in the window's rows (not stride padding).
func (w *BitmapWindow[T]) ClearAll() {
	var zero T
	for row := 0; row < w.info.Height; row++ {
		r, _ := w.Row(row)
		for i := range r {
			r[i] = zero
		}
	}
}
