package meadow

// EventType identifies a kind of input event.
type EventType uint8

const (
	EventMouseMove EventType = iota // pointer moved; X, Y absolute
	EventMouseDown                  // button pressed at X, Y
	EventMouseUp                    // button released at X, Y
	EventKeyDown                    // key pressed; Key, Rune, Mods
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button
)

// Key identifies the non-character keys the shell routes. Printable input
// arrives as KeyChar with the rune set.
type Key uint8

const (
	KeyNone Key = iota
	KeyChar
	KeyEnter
	KeySpace
	KeyEscape
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyBackspace
)

// KeyModifiers is a bitmask of held modifier keys. Values combine with
// bitwise OR.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command key
)

// Event is one raw input event with absolute screen coordinates.
type Event struct {
	Type   EventType
	X, Y   int
	Button MouseButton
	Key    Key
	Rune   rune
	Mods   KeyModifiers
}

// hitKind is which part of a window a click landed on.
type hitKind uint8

const (
	hitBody hitKind = iota
	hitTitlebar
	hitClose
	hitMaximize
	hitMinimize
)

// ProcessEvent runs one raw event through the routing pipeline. All state
// it mutates is observed by the next Update's redraw.
func (d *Desktop) ProcessEvent(ev Event) {
	switch ev.Type {
	case EventMouseMove:
		d.handleMouseMove(ev)
	case EventMouseDown:
		d.handleMouseDown(ev)
	case EventMouseUp:
		d.handleMouseUp(ev)
	case EventKeyDown:
		d.handleKeyDown(ev)
	}
}

// handleMouseDown routes a click in strict priority order: overlay menus,
// taskbar strip, desktop icons, then the window walk.
func (d *Desktop) handleMouseDown(ev Event) {
	d.cursorX, d.cursorY = ev.X, ev.Y

	// (1) Modal overlays claim every click while visible. A hit inside
	// dispatches the item and closes; a hit outside only closes.
	if d.ctxMenu.Visible() {
		d.ctxMenu.activate(d.ctxMenu.itemAt(ev.X, ev.Y))
		return
	}
	if d.startMenu.Visible() {
		if i := d.startMenu.itemAt(ev.X, ev.Y, d.screenH, d.cfg.TaskbarHeight); i >= 0 {
			d.startMenu.selected = i
			d.startMenu.Activate()
		} else {
			d.startMenu.Close()
		}
		return
	}

	// (2) The taskbar strip consumes its clicks whether or not a button
	// was hit.
	if d.taskbarRect().Contains(ev.X, ev.Y) {
		if d.startButtonRect().Contains(ev.X, ev.Y) {
			d.startMenu.Toggle()
			return
		}
		if id := d.taskbarButtonAt(ev.X, ev.Y); id != 0 {
			d.clickTaskbarButton(id)
			return
		}
		for i, icon := range d.tray {
			if d.trayIconRect(i).Contains(ev.X, ev.Y) && icon.OnClick != nil {
				icon.OnClick()
				return
			}
		}
		return
	}

	// (3) Desktop icons take priority over any window underneath.
	nx, ny := d.cursorNorm()
	if i := d.icons.HitTest(ev.X, ev.Y, nx, ny, d.cfg.ParallaxIntensity); i >= 0 {
		tag := clickTag{kind: clickIcon, icon: i}
		if d.isDoubleClick(ev.X, ev.Y, tag) {
			d.lastClickTag = clickTag{}
			d.particles.Burst(float64(ev.X), float64(ev.Y), 12, d.themes.Current().Accent)
			d.icons.Launch(i)
		} else {
			d.recordClick(ev.X, ev.Y, tag)
		}
		return
	}

	// (4) Window walk, bottom of the stack to the top, keeping the last
	// match so the topmost window wins.
	var clicked WindowID
	var part hitKind
	for i := len(d.order) - 1; i >= 0; i-- {
		win := d.windows[d.order[i]]
		if !win.visible || !win.bounds.Contains(ev.X, ev.Y) {
			continue
		}
		clicked = win.id
		switch {
		case win.titlebarButtonRect(buttonClose).Contains(ev.X, ev.Y):
			part = hitClose
		case win.titlebarButtonRect(buttonMaximize).Contains(ev.X, ev.Y):
			part = hitMaximize
		case win.titlebarButtonRect(buttonMinimize).Contains(ev.X, ev.Y):
			part = hitMinimize
		case win.titlebarRect().Contains(ev.X, ev.Y):
			part = hitTitlebar
		default:
			part = hitBody
		}
	}
	if clicked == 0 {
		if ev.Button == MouseButtonRight {
			d.ctxMenu.OpenAt(ev.X, ev.Y, d.screenW, d.screenH)
		}
		d.recordClick(ev.X, ev.Y, clickTag{})
		return
	}

	d.Focus(clicked)
	d.BringToFront(clicked)
	if ev.Button != MouseButtonLeft {
		return
	}
	switch part {
	case hitClose:
		d.DestroyWindow(clicked)
	case hitMaximize:
		d.toggleMaximize(clicked)
	case hitMinimize:
		d.Minimize(clicked)
	case hitTitlebar:
		tag := clickTag{kind: clickTitlebar, win: clicked}
		if d.isDoubleClick(ev.X, ev.Y, tag) {
			d.lastClickTag = clickTag{}
			d.toggleMaximize(clicked)
			return
		}
		d.recordClick(ev.X, ev.Y, tag)
		win := d.windows[clicked]
		d.dragging = clicked
		d.dragOffX = ev.X - win.bounds.X
		d.dragOffY = ev.Y - win.bounds.Y
	case hitBody:
		// (5) Forward to the window's widgets; first match by bounds wins.
		d.recordClick(ev.X, ev.Y, clickTag{})
		win := d.windows[clicked]
		for _, wid := range win.widgets {
			w := d.widgets[wid]
			if w == nil || !w.visible || !w.enabled {
				continue
			}
			if d.widgetScreenRect(w).Contains(ev.X, ev.Y) {
				if w.onClick != nil {
					w.onClick(wid)
				}
				return
			}
		}
	}
}

// handleMouseMove tracks the cursor for parallax and advances an active
// titlebar drag. The dragged window's origin never goes negative.
func (d *Desktop) handleMouseMove(ev Event) {
	d.cursorX, d.cursorY = ev.X, ev.Y
	if d.dragging == 0 {
		return
	}
	if d.windows[d.dragging] == nil {
		d.dragging = 0
		return
	}
	d.MoveWindow(d.dragging, ev.X-d.dragOffX, ev.Y-d.dragOffY)
}

// handleMouseUp ends a drag, snapping the window when it was released at a
// screen edge or corner. The drag state clears regardless of position.
func (d *Desktop) handleMouseUp(ev Event) {
	d.cursorX, d.cursorY = ev.X, ev.Y
	if d.dragging != 0 {
		if pos, ok := d.snapTarget(ev.X, ev.Y); ok {
			d.Snap(d.dragging, pos)
		}
	}
	d.dragging = 0
}

// snapMargin is how close to an edge a drag must end to trigger a snap.
const snapMargin = 16

// snapTarget maps a release point near the work-area edges to a snap
// position: corners make quarters, edges make halves.
func (d *Desktop) snapTarget(x, y int) (SnapPos, bool) {
	wa := d.workArea()
	left := x <= wa.X+snapMargin
	right := x >= wa.X+wa.W-snapMargin
	top := y <= wa.Y+snapMargin
	bottom := y >= wa.Y+wa.H-snapMargin
	switch {
	case left && top:
		return SnapTopLeft, true
	case right && top:
		return SnapTopRight, true
	case left && bottom:
		return SnapBottomLeft, true
	case right && bottom:
		return SnapBottomRight, true
	case left:
		return SnapLeft, true
	case right:
		return SnapRight, true
	case top:
		return SnapTop, true
	case bottom:
		return SnapBottom, true
	}
	return 0, false
}

// handleKeyDown routes keyboard input. A visible start menu consumes
// everything; next the switcher; then Alt-Tab opens the switcher; anything
// left goes to the focused window's key handler.
func (d *Desktop) handleKeyDown(ev Event) {
	if d.startMenu.Visible() {
		switch ev.Key {
		case KeyUp:
			d.startMenu.Navigate(-1)
		case KeyDown:
			d.startMenu.Navigate(1)
		case KeyEnter, KeySpace:
			d.startMenu.Activate()
		case KeyEscape:
			d.startMenu.Close()
		}
		return
	}
	if d.ctxMenu.Visible() {
		switch ev.Key {
		case KeyUp:
			d.ctxMenu.selected = max(d.ctxMenu.selected-1, 0)
		case KeyDown:
			d.ctxMenu.selected = min(d.ctxMenu.selected+1, len(d.ctxMenu.items)-1)
		case KeyEnter:
			d.ctxMenu.activate(d.ctxMenu.selected)
		case KeyEscape:
			d.ctxMenu.Close()
		}
		return
	}
	if d.switcher.Visible() {
		switch ev.Key {
		case KeyTab:
			if ev.Mods&ModShift != 0 {
				d.switcher.cycle(-1)
			} else {
				d.switcher.cycle(1)
			}
		case KeyEnter:
			d.switcher.confirm(d)
		case KeyEscape:
			d.switcher.cancel()
		}
		return
	}
	if ev.Key == KeyTab && ev.Mods&ModAlt != 0 {
		d.switcher.open(d)
		return
	}
	if win := d.windows[d.focused]; win != nil && win.onKey != nil {
		win.onKey(ev.Key, ev.Rune)
	}
}

// cursorNorm returns the cursor position normalized to [-1, 1] around the
// screen center, the parallax input.
func (d *Desktop) cursorNorm() (nx, ny float64) {
	nx = clampFloat(float64(d.cursorX)/float64(d.screenW)*2-1, -1, 1)
	ny = clampFloat(float64(d.cursorY)/float64(d.screenH)*2-1, -1, 1)
	return nx, ny
}

// isDoubleClick reports whether a click at (x, y) on the given target pairs
// with the previous click under the configured time and distance
// thresholds.
func (d *Desktop) isDoubleClick(x, y int, tag clickTag) bool {
	return tag == d.lastClickTag &&
		d.now-d.lastClickTime <= float64(d.cfg.DoubleClickMS) &&
		absInt(x-d.lastClickX) <= d.cfg.DoubleClickDist &&
		absInt(y-d.lastClickY) <= d.cfg.DoubleClickDist
}

// recordClick stores the click for double-click pairing.
func (d *Desktop) recordClick(x, y int, tag clickTag) {
	d.lastClickTime = d.now
	d.lastClickX = x
	d.lastClickY = y
	d.lastClickTag = tag
}

// toggleMaximize flips a window between maximized and its normal bounds.
func (d *Desktop) toggleMaximize(id WindowID) {
	if win := d.windows[id]; win != nil {
		if win.state == StateMaximized {
			d.Restore(id)
		} else {
			d.Maximize(id)
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
