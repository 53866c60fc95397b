package meadow

import "testing"

func TestBlendEndpoints(t *testing.T) {
	fg := RGB(200, 100, 50)
	bg := RGB(10, 20, 30)

	if got := Blend(fg, bg, 255); got != fg {
		t.Errorf("Blend at 255 = %v, want %v", got, fg)
	}
	if got := Blend(fg, bg, 0); got != bg {
		t.Errorf("Blend at 0 = %v, want %v", got, bg)
	}
}

func TestBlendChannelMath(t *testing.T) {
	fg := RGB(255, 0, 100)
	bg := RGB(0, 255, 100)
	got := Blend(fg, bg, 128)

	// out = (fg*128 + bg*127) / 255 with integer truncation.
	if got.R != 128 {
		t.Errorf("R = %d, want 128", got.R)
	}
	if got.G != 127 {
		t.Errorf("G = %d, want 127", got.G)
	}
	if got.B != 100 {
		t.Errorf("B = %d, want 100", got.B)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 15, 25, true},
		{"top-left corner", 10, 20, true},
		{"right edge exclusive", 40, 30, false},
		{"bottom edge exclusive", 20, 60, false},
		{"outside left", 9, 30, false},
		{"negative", -5, -5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	if !a.Intersects(Rect{X: 5, Y: 5, W: 10, H: 10}) {
		t.Error("overlapping rects should intersect")
	}
	if a.Intersects(Rect{X: 10, Y: 0, W: 10, H: 10}) {
		t.Error("edge-adjacent rects should not intersect")
	}
	if a.Intersects(Rect{X: 20, Y: 20, W: 5, H: 5}) {
		t.Error("distant rects should not intersect")
	}
}

func TestRectInsetClampsToEmpty(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}.Inset(8)
	if r.W != 0 || r.H != 0 {
		t.Errorf("over-inset = %v, want zero size", r)
	}
	if !r.Empty() {
		t.Error("over-inset rect should be empty")
	}
}

func TestTransparencyAlpha(t *testing.T) {
	if got := transparencyAlpha(0); got != 255 {
		t.Errorf("opaque = %d, want 255", got)
	}
	if got := transparencyAlpha(100); got != 0 {
		t.Errorf("fully transparent = %d, want 0", got)
	}
	if got := transparencyAlpha(150); got != 0 {
		t.Errorf("out of range clamps, got %d, want 0", got)
	}
	if got := transparencyAlpha(50); got != 128 {
		t.Errorf("half = %d, want 128", got)
	}
}
