package meadow

// WindowID is an opaque handle to a window. The zero value is never a valid
// handle, and IDs are not reused, so a stale handle held after
// DestroyWindow safely no-ops instead of aliasing a new window.
type WindowID uint32

// WindowState is a window's lifecycle position.
type WindowState uint8

const (
	StateNormal    WindowState = iota // free-floating at its own bounds
	StateMinimized                    // hidden, reachable from the taskbar
	StateMaximized                    // filling the work area
	StateSnapped                      // filling a half/quarter region
)

// SnapPos selects the screen region a snapped window fills.
type SnapPos uint8

const (
	SnapLeft SnapPos = iota
	SnapRight
	SnapTop
	SnapBottom
	SnapTopLeft
	SnapTopRight
	SnapBottomLeft
	SnapBottomRight
)

// titlebarHeight is the pixel height of a window's titlebar strip; the
// content area for widgets starts below it.
const titlebarHeight = 24

// titlebarButtonSize is the square size of the close/maximize/minimize
// controls.
const titlebarButtonSize = 16

// window is the internal window record. External callers hold WindowIDs
// only; all mutation goes through Desktop methods.
type window struct {
	id    WindowID
	title string

	bounds       Rect
	normalBounds Rect // valid whenever state is Maximized or Snapped

	state WindowState
	snap  SnapPos

	background   Color
	titlebar     Color
	customColors bool

	visible       bool
	hasBorder     bool
	hasTitlebar   bool
	transparency  int // 0 opaque .. 100 fully transparent
	widgets       []WidgetID
	onKey         func(key Key, r rune)
}

// CreateWindow allocates a window and prepends it to the stacking order, so
// a new window is initially topmost and focused.
func (d *Desktop) CreateWindow(title string, x, y, w, h int) WindowID {
	d.nextWindowID++
	id := d.nextWindowID
	win := &window{
		id:          id,
		title:       title,
		bounds:      Rect{X: x, Y: y, W: max(w, 1), H: max(h, 1)},
		state:       StateNormal,
		visible:     true,
		hasBorder:   true,
		hasTitlebar: true,
	}
	d.windows[id] = win
	d.order = append([]WindowID{id}, d.order...)
	d.taskbarOrder = append(d.taskbarOrder, id)
	d.focused = id
	return id
}

// DestroyWindow releases the window, its widgets, and its list links. If it
// held focus, focus transfers to the new head of the stacking order, or to
// none when it was the last window.
func (d *Desktop) DestroyWindow(id WindowID) {
	win := d.windows[id]
	if win == nil {
		return
	}
	for _, wid := range win.widgets {
		delete(d.widgets, wid)
	}
	delete(d.windows, id)
	d.order = removeID(d.order, id)
	d.taskbarOrder = removeID(d.taskbarOrder, id)
	if d.dragging == id {
		d.dragging = 0
	}
	if d.focused == id {
		if len(d.order) > 0 {
			d.focused = d.order[0]
		} else {
			d.focused = 0
		}
	}
}

// SetWindowTitle replaces the window's title.
func (d *Desktop) SetWindowTitle(id WindowID, title string) {
	if win := d.windows[id]; win != nil {
		win.title = title
	}
}

// WindowTitle returns the window's title, or "" for a stale handle.
func (d *Desktop) WindowTitle(id WindowID) string {
	if win := d.windows[id]; win != nil {
		return win.title
	}
	return ""
}

// WindowBounds returns the window's current bounds. ok is false for a stale
// handle.
func (d *Desktop) WindowBounds(id WindowID) (r Rect, ok bool) {
	if win := d.windows[id]; win != nil {
		return win.bounds, true
	}
	return Rect{}, false
}

// WindowNormalBounds returns the bounds the window restores to. For a
// window in StateNormal this equals its current bounds.
func (d *Desktop) WindowNormalBounds(id WindowID) (r Rect, ok bool) {
	win := d.windows[id]
	if win == nil {
		return Rect{}, false
	}
	if win.state == StateNormal {
		return win.bounds, true
	}
	return win.normalBounds, true
}

// WindowState returns the window's lifecycle state; stale handles report
// StateNormal with ok false.
func (d *Desktop) WindowState(id WindowID) (WindowState, bool) {
	if win := d.windows[id]; win != nil {
		return win.state, true
	}
	return StateNormal, false
}

// MoveWindow places the window's origin, clamped so it never goes negative.
func (d *Desktop) MoveWindow(id WindowID, x, y int) {
	if win := d.windows[id]; win != nil {
		win.bounds.X = max(x, 0)
		win.bounds.Y = max(y, 0)
	}
}

// ResizeWindow sets the window's content size. Only meaningful in
// StateNormal; sizes below 1 clamp to 1.
func (d *Desktop) ResizeWindow(id WindowID, w, h int) {
	if win := d.windows[id]; win != nil && win.state == StateNormal {
		win.bounds.W = max(w, 1)
		win.bounds.H = max(h, 1)
	}
}

// SetWindowColors overrides the theme's window background and titlebar
// colors for this window.
func (d *Desktop) SetWindowColors(id WindowID, background, titlebar Color) {
	if win := d.windows[id]; win != nil {
		win.background = background
		win.titlebar = titlebar
		win.customColors = true
	}
}

// SetTransparency sets the window's transparency, clamped to [0, 100].
// 0 is opaque.
func (d *Desktop) SetTransparency(id WindowID, transparency int) {
	if win := d.windows[id]; win != nil {
		win.transparency = clampInt(transparency, 0, 100)
	}
}

// Transparency returns the window's transparency, or -1 for a stale handle.
func (d *Desktop) Transparency(id WindowID) int {
	if win := d.windows[id]; win != nil {
		return win.transparency
	}
	return -1
}

// SetWindowDecorations toggles the window's border and titlebar. A window
// without a titlebar cannot be dragged or minimized from the pointer.
func (d *Desktop) SetWindowDecorations(id WindowID, border, titlebar bool) {
	if win := d.windows[id]; win != nil {
		win.hasBorder = border
		win.hasTitlebar = titlebar
	}
}

// SetKeyHandler installs the callback that receives key-down events while
// the window is focused and no overlay is consuming input.
func (d *Desktop) SetKeyHandler(id WindowID, fn func(key Key, r rune)) {
	if win := d.windows[id]; win != nil {
		win.onKey = fn
	}
}

// IsWindowVisible reports whether the window is shown on the desktop.
func (d *Desktop) IsWindowVisible(id WindowID) bool {
	win := d.windows[id]
	return win != nil && win.visible
}

// IsFocused reports whether the window currently holds focus.
func (d *Desktop) IsFocused(id WindowID) bool {
	return id != 0 && d.focused == id
}

// FocusedWindow returns the focused window, or 0 when none.
func (d *Desktop) FocusedWindow() WindowID {
	return d.focused
}

// WindowCount returns the number of live windows.
func (d *Desktop) WindowCount() int {
	return len(d.windows)
}

// StackingOrder returns a copy of the stacking order, topmost first.
func (d *Desktop) StackingOrder() []WindowID {
	out := make([]WindowID, len(d.order))
	copy(out, d.order)
	return out
}

// contentRect returns the window-relative area available to widgets: the
// full bounds minus the titlebar strip.
func (w *window) contentRect() Rect {
	top := 0
	if w.hasTitlebar {
		top = titlebarHeight
	}
	return Rect{X: w.bounds.X, Y: w.bounds.Y + top, W: w.bounds.W, H: max(w.bounds.H-top, 0)}
}

// titlebarRect returns the screen rect of the titlebar strip, empty when
// the window has none.
func (w *window) titlebarRect() Rect {
	if !w.hasTitlebar {
		return Rect{}
	}
	return Rect{X: w.bounds.X, Y: w.bounds.Y, W: w.bounds.W, H: titlebarHeight}
}

// titlebarButton identifies one titlebar control.
type titlebarButton uint8

const (
	buttonNone titlebarButton = iota
	buttonClose
	buttonMaximize
	buttonMinimize
)

// titlebarButtonRect returns the screen rect of a control, laid out right
// to left: close, maximize, minimize.
func (w *window) titlebarButtonRect(b titlebarButton) Rect {
	if !w.hasTitlebar || b == buttonNone {
		return Rect{}
	}
	pad := (titlebarHeight - titlebarButtonSize) / 2
	slot := int(b - buttonClose) // close is rightmost
	x := w.bounds.X + w.bounds.W - pad - (slot+1)*titlebarButtonSize - slot*pad
	return Rect{X: x, Y: w.bounds.Y + pad, W: titlebarButtonSize, H: titlebarButtonSize}
}

// removeID deletes the first occurrence of id, preserving order.
func removeID(ids []WindowID, id WindowID) []WindowID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
