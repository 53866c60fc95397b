package meadow

import (
	"math"
	"testing"
)

func TestWallpaperDensityZeroIsEmpty(t *testing.T) {
	w := NewWallpaper(800, 564, 0)
	if got := w.ElementCount(); got != 0 {
		t.Errorf("ElementCount = %d, want 0", got)
	}
}

func TestWallpaperDensityScalesElementCount(t *testing.T) {
	low := NewWallpaper(800, 564, 1)
	high := NewWallpaper(800, 564, 3)
	if low.ElementCount() == 0 {
		t.Fatal("density 1 seeded nothing")
	}
	if high.ElementCount() <= low.ElementCount() {
		t.Errorf("density 3 (%d) should seed more than density 1 (%d)",
			high.ElementCount(), low.ElementCount())
	}
}

func TestWallpaperAddCapacity(t *testing.T) {
	w := NewWallpaper(800, 564, 0)
	for i := 0; i < maxWallpaperElements; i++ {
		if err := w.Add(NatureElement{Kind: ElementGrass}); err != nil {
			t.Fatalf("add %d failed: %v", i, err)
		}
	}
	if err := w.Add(NatureElement{Kind: ElementGrass}); err != ErrWallpaperFull {
		t.Errorf("add past capacity = %v, want ErrWallpaperFull", err)
	}
}

func TestWallpaperAddClampsDepth(t *testing.T) {
	w := NewWallpaper(800, 564, 0)
	_ = w.Add(NatureElement{Kind: ElementTree, Depth: 3.5})
	if got := w.elements[0].Depth; got != 1 {
		t.Errorf("depth = %f, want clamped to 1", got)
	}
}

func TestWallpaperCloudsDriftAndWrap(t *testing.T) {
	w := NewWallpaper(800, 564, 0)
	_ = w.Add(NatureElement{Kind: ElementCloud, X: 100, Depth: 0})
	_ = w.Add(NatureElement{Kind: ElementCloud, X: 870, Depth: 0})
	_ = w.Add(NatureElement{Kind: ElementTree, X: 100, Depth: 0})

	w.Update(1000)

	if got := w.elements[0].X; math.Abs(got-118) > 0.01 {
		t.Errorf("cloud X = %f, want 118", got)
	}
	if got := w.elements[1].X; got != -80 {
		t.Errorf("off-screen cloud X = %f, want wrapped to -80", got)
	}
	if got := w.elements[2].X; got != 100 {
		t.Errorf("tree X = %f, trees must not drift", got)
	}
}

func TestWallpaperDeepCloudsDriftSlower(t *testing.T) {
	w := NewWallpaper(800, 564, 0)
	_ = w.Add(NatureElement{Kind: ElementCloud, X: 0, Depth: 0})
	_ = w.Add(NatureElement{Kind: ElementCloud, X: 0, Depth: 1})

	w.Update(1000)

	near := w.elements[0].X
	far := w.elements[1].X
	if far >= near {
		t.Errorf("deep cloud moved %f, near cloud %f; depth should slow drift", far, near)
	}
}

func TestWallpaperSwayDepthModeration(t *testing.T) {
	w := NewWallpaper(800, 564, 0)
	near := NatureElement{Kind: ElementTree, Depth: 0, Scale: 1, Phase: 0}
	far := NatureElement{Kind: ElementTree, Depth: 1, Scale: 1, Phase: 0}
	_ = w.Add(near)
	_ = w.Add(far)

	// Advance to a point where sin is clearly nonzero.
	w.Update(2000)

	nearSway := math.Abs(w.swayOffset(&w.elements[0]))
	farSway := math.Abs(w.swayOffset(&w.elements[1]))
	if nearSway <= farSway {
		t.Errorf("near sway %f should exceed far sway %f", nearSway, farSway)
	}
}

func TestWallpaperPollenEmission(t *testing.T) {
	w := NewWallpaper(800, 564, 1)
	ps := NewParticleSystem(64)

	w.EmitPollen(ps, 2000)
	if got := ps.AliveCount(); got != 5 {
		t.Errorf("motes after 2000 ms = %d, want 5", got)
	}

	// Sub-interval deltas accumulate instead of rounding to zero.
	ps.Reset()
	for range 25 {
		w.EmitPollen(ps, 16)
	}
	if got := ps.AliveCount(); got != 1 {
		t.Errorf("motes after 25x16 ms = %d, want 1", got)
	}

	empty := NewWallpaper(800, 564, 0)
	ps.Reset()
	empty.EmitPollen(ps, 5000)
	if got := ps.AliveCount(); got != 0 {
		t.Errorf("empty scene emitted %d motes, want 0", got)
	}
}

func TestWallpaperDrawPaintsSky(t *testing.T) {
	w := NewWallpaper(32, 32, 0)
	fb := NewImageBuffer(32, 32)
	theme := MeadowTheme()

	w.Draw(fb, theme, 0, 0, 16)

	if got := fb.At(16, 0); got != theme.DesktopTop {
		t.Errorf("top sky = %v, want %v", got, theme.DesktopTop)
	}
}
