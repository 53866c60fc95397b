package meadow

import "testing"

func TestImageBufferPixelRoundTrip(t *testing.T) {
	fb := NewImageBuffer(16, 16)
	c := RGBA(10, 20, 30, 200)

	fb.SetPixel(5, 7, c)
	if got := fb.At(5, 7); got != c {
		t.Errorf("At(5, 7) = %v, want %v", got, c)
	}
}

func TestImageBufferClipsSilently(t *testing.T) {
	fb := NewImageBuffer(8, 8)

	// None of these may panic or write anything visible.
	fb.SetPixel(-1, 0, RGB(255, 0, 0))
	fb.SetPixel(8, 8, RGB(255, 0, 0))
	fb.FillRect(Rect{X: -4, Y: -4, W: 100, H: 100}, RGB(1, 2, 3))
	fb.DrawHLine(-10, 3, 100, RGB(9, 9, 9))

	if got := fb.At(-1, 0); got != (Color{}) {
		t.Errorf("out-of-bounds At = %v, want zero", got)
	}
	if got := fb.At(0, 0); got != RGB(1, 2, 3) {
		t.Errorf("clipped fill missed in-bounds pixel: %v", got)
	}
}

func TestImageBufferClear(t *testing.T) {
	fb := NewImageBuffer(4, 4)
	fb.Clear(RGB(50, 60, 70))

	for _, p := range [][2]int{{0, 0}, {3, 3}, {1, 2}} {
		if got := fb.At(p[0], p[1]); got != RGB(50, 60, 70) {
			t.Errorf("At(%d, %d) = %v after Clear", p[0], p[1], got)
		}
	}
}

func TestImageBufferRectOutline(t *testing.T) {
	fb := NewImageBuffer(10, 10)
	c := RGB(200, 0, 0)
	fb.DrawRectOutline(Rect{X: 2, Y: 2, W: 5, H: 5}, c)

	if got := fb.At(2, 2); got != c {
		t.Errorf("corner = %v, want %v", got, c)
	}
	if got := fb.At(6, 4); got != c {
		t.Errorf("right edge = %v, want %v", got, c)
	}
	if got := fb.At(4, 4); got != (Color{}) {
		t.Errorf("interior = %v, want untouched", got)
	}
}

func TestImageBufferDrawString(t *testing.T) {
	fb := NewImageBuffer(100, 20)
	fb.DrawString(2, 2, "hi", RGB(255, 255, 255), Color{})

	touched := false
	for y := range 20 {
		for x := range 100 {
			if fb.At(x, y).A != 0 {
				touched = true
			}
		}
	}
	if !touched {
		t.Error("DrawString wrote no pixels")
	}
	if w := fb.StringWidth("hi"); w <= 0 {
		t.Errorf("StringWidth = %d, want > 0", w)
	}
	if w1, w2 := fb.StringWidth("a"), fb.StringWidth("abc"); w2 <= w1 {
		t.Errorf("longer string should be wider: %d vs %d", w1, w2)
	}
}

func TestImageBufferMinimumSize(t *testing.T) {
	fb := NewImageBuffer(0, -3)
	w, h := fb.Size()
	if w != 1 || h != 1 {
		t.Errorf("Size = %dx%d, want 1x1", w, h)
	}
}
