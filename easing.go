package meadow

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EaseKind selects an easing curve for Ease.
type EaseKind uint8

const (
	EaseLinear     EaseKind = iota // constant rate
	EaseQuadIn                     // accelerate from rest
	EaseQuadOut                    // decelerate to rest
	EaseQuadInOut                  // accelerate then decelerate
	EaseCubicIn                    // sharper accelerate
	EaseCubicOut                   // sharper decelerate
	EaseCubicInOut                 // sharper accelerate then decelerate
	EaseBounceIn                   // bounce at the start
	EaseBounceOut                  // bounce at the end
	EaseElasticOut                 // overshoot and settle
)

// easeFuncs maps each kind to its gween curve.
var easeFuncs = [...]ease.TweenFunc{
	EaseLinear:     ease.Linear,
	EaseQuadIn:     ease.InQuad,
	EaseQuadOut:    ease.OutQuad,
	EaseQuadInOut:  ease.InOutQuad,
	EaseCubicIn:    ease.InCubic,
	EaseCubicOut:   ease.OutCubic,
	EaseCubicInOut: ease.InOutCubic,
	EaseBounceIn:   ease.InBounce,
	EaseBounceOut:  ease.OutBounce,
	EaseElasticOut: ease.OutElastic,
}

// TweenFunc returns the gween easing function behind k, for callers that
// build their own gween.Tween values (FlyTween, camera-style scrolls).
func (k EaseKind) TweenFunc() ease.TweenFunc {
	if int(k) >= len(easeFuncs) {
		return ease.Linear
	}
	return easeFuncs[k]
}

// Ease maps a progress t through the named curve. The input is clamped to
// [0, 1] and the endpoints are exact: Ease(0, k) == 0 and Ease(1, k) == 1
// for every kind.
func Ease(t float64, k EaseKind) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return float64(k.TweenFunc()(float32(t), 0, 1, 1))
}

// Transition is the progress counter behind every time-based UI transition:
// start-menu slide, context-menu fade, switcher scale-in. It holds only a
// progress in [0, 1] and a direction; progress 1 is fully open, 0 is fully
// closed. When a closing transition saturates at 0 the OnClosed hook fires
// exactly once, so the owning subsystem can clear its visibility flag and
// callers never need a separate "still animating" check.
type Transition struct {
	progress float64
	step     float64
	closing  bool
	settled  bool // the closed rest state was already delivered

	// OnClosed fires once when a closing transition reaches 0.
	OnClosed func()
}

// NewTransition creates a transition at rest (closed) that advances by step
// per Update call.
func NewTransition(step float64) *Transition {
	return &Transition{step: clampFloat(step, 0.001, 1), closing: true, settled: true}
}

// Open drives progress toward 1.
func (t *Transition) Open() {
	t.closing = false
	t.settled = false
}

// Close drives progress toward 0.
func (t *Transition) Close() {
	t.closing = true
}

// Closing reports the current direction.
func (t *Transition) Closing() bool {
	return t.closing
}

// Progress returns the raw (uneased) progress.
func (t *Transition) Progress() float64 {
	return t.progress
}

// AtRest reports whether progress is saturated in the current direction.
func (t *Transition) AtRest() bool {
	if t.closing {
		return t.progress <= 0
	}
	return t.progress >= 1
}

// Update advances progress by one fixed step in the current direction.
// It reports whether the transition is at rest after the step.
func (t *Transition) Update() bool {
	if t.closing {
		if t.progress > 0 {
			t.progress -= t.step
			if t.progress < 0 {
				t.progress = 0
			}
		}
		if t.progress <= 0 && !t.settled {
			t.settled = true
			if t.OnClosed != nil {
				t.OnClosed()
			}
		}
		return t.progress <= 0
	}
	if t.progress < 1 {
		t.progress += t.step
		if t.progress > 1 {
			t.progress = 1
		}
	}
	return t.progress >= 1
}

// Value returns the progress passed through the given curve. This is what
// interpolation of position, size, or alpha should consume.
func (t *Transition) Value(k EaseKind) float64 {
	return Ease(t.progress, k)
}

// Reset snaps the transition to fully open or fully closed without firing
// OnClosed.
func (t *Transition) Reset(open bool) {
	t.closing = !open
	t.settled = !open
	if open {
		t.progress = 1
	} else {
		t.progress = 0
	}
}

// FlyTween animates a point between two positions over a fixed duration,
// used for the minimize fly-to-taskbar effect and switcher preview
// scale-in. It wraps a gween tween pair; callers poll Update each frame.
type FlyTween struct {
	x, y *gween.Tween
	curX float64
	curY float64
	done bool
}

// NewFlyTween creates a tween from (fromX, fromY) to (toX, toY) taking
// duration seconds through the given curve.
func NewFlyTween(fromX, fromY, toX, toY float64, duration float32, k EaseKind) *FlyTween {
	return &FlyTween{
		x:    gween.New(float32(fromX), float32(toX), duration, k.TweenFunc()),
		y:    gween.New(float32(fromY), float32(toY), duration, k.TweenFunc()),
		curX: fromX,
		curY: fromY,
	}
}

// Update advances the tween by dt seconds and returns the current point.
func (f *FlyTween) Update(dt float32) (x, y float64, done bool) {
	if f.done {
		return f.curX, f.curY, true
	}
	vx, fx := f.x.Update(dt)
	vy, fy := f.y.Update(dt)
	f.curX = float64(vx)
	f.curY = float64(vy)
	f.done = fx && fy
	return f.curX, f.curY, f.done
}

// Done reports whether the tween has reached its target.
func (f *FlyTween) Done() bool {
	return f.done
}
