package meadow

// MenuItem is one entry of a menu overlay.
type MenuItem struct {
	Label  string
	Action func()
}

// Menu layout constants shared by the start and context menus.
const (
	menuWidth      = 220
	menuItemHeight = 28
	menuPad        = 6
)

// StartMenu is the modal overlay anchored to the taskbar's start button.
// While visible it has first claim on every click and consumes all
// keyboard input. Opening and closing slide through a Transition; the
// visible flag clears itself when the closing animation saturates.
type StartMenu struct {
	items    []MenuItem
	selected int
	visible  bool
	anim     *Transition
}

func newStartMenu(step float64) *StartMenu {
	m := &StartMenu{anim: NewTransition(step)}
	m.anim.OnClosed = func() { m.visible = false }
	return m
}

// SetItems replaces the menu entries.
func (m *StartMenu) SetItems(items []MenuItem) {
	m.items = items
	m.selected = 0
}

// AddItem appends one entry.
func (m *StartMenu) AddItem(label string, action func()) {
	m.items = append(m.items, MenuItem{Label: label, Action: action})
}

// Visible reports whether the menu claims input. It stays true while the
// closing slide plays out; clicks during that window still close-hit first.
func (m *StartMenu) Visible() bool {
	return m.visible
}

// Open makes the menu visible and starts the slide-in.
func (m *StartMenu) Open() {
	m.visible = true
	m.selected = 0
	m.anim.Open()
}

// Close starts the slide-out; visibility clears when it finishes.
func (m *StartMenu) Close() {
	m.anim.Close()
}

// Toggle opens a closed menu and closes an open one.
func (m *StartMenu) Toggle() {
	if m.visible && !m.anim.Closing() {
		m.Close()
	} else {
		m.Open()
	}
}

// Navigate moves the selection by delta, wrapping around the item count.
func (m *StartMenu) Navigate(delta int) {
	n := len(m.items)
	if n == 0 {
		return
	}
	m.selected = ((m.selected+delta)%n + n) % n
}

// Selected returns the highlighted item index.
func (m *StartMenu) Selected() int {
	return m.selected
}

// Activate runs the selected item's action and closes the menu.
func (m *StartMenu) Activate() {
	if m.selected >= 0 && m.selected < len(m.items) {
		if fn := m.items[m.selected].Action; fn != nil {
			fn()
		}
	}
	m.Close()
}

// rect returns the fully-open menu rectangle, sitting on the taskbar's
// left edge.
func (m *StartMenu) rect(screenH, taskbarH int) Rect {
	h := len(m.items)*menuItemHeight + 2*menuPad
	return Rect{X: 0, Y: screenH - taskbarH - h, W: menuWidth, H: h}
}

// itemAt returns the index of the item containing (x, y) in the fully-open
// rect, or -1.
func (m *StartMenu) itemAt(x, y, screenH, taskbarH int) int {
	r := m.rect(screenH, taskbarH)
	if !r.Contains(x, y) {
		return -1
	}
	i := (y - r.Y - menuPad) / menuItemHeight
	if i < 0 || i >= len(m.items) {
		return -1
	}
	return i
}

// draw renders the menu sliding up from the taskbar by the eased open
// progress.
func (m *StartMenu) draw(fb Framebuffer, theme Theme, screenH, taskbarH int) {
	if !m.visible {
		return
	}
	t := m.anim.Value(EaseCubicOut)
	full := m.rect(screenH, taskbarH)
	// Slide: at progress 0 the menu is fully below its resting place.
	offset := int(float64(full.H) * (1 - t))
	r := Rect{X: full.X, Y: full.Y + offset, W: full.W, H: full.H - offset}
	if r.Empty() {
		return
	}
	DropShadow(fb, r, 3, 3, 4, theme.Shadow)
	fb.FillRect(r, theme.MenuBack)
	fb.DrawRectOutline(r, theme.MenuHighlight)
	for i, item := range m.items {
		ir := Rect{X: r.X + menuPad, Y: full.Y + menuPad + i*menuItemHeight + offset,
			W: r.W - 2*menuPad, H: menuItemHeight}
		if ir.Y+ir.H > r.Y+r.H {
			break
		}
		if i == m.selected {
			FillRoundedRect(fb, ir, 4, theme.MenuHighlight)
		}
		fb.DrawString(ir.X+8, ir.Y+(menuItemHeight-TextHeight)/2, item.Label, theme.MenuText, Color{})
	}
}
