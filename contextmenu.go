package meadow

// ContextMenu is the right-click overlay. It shares the start menu's item
// model but anchors at the open point, clamped fully on-screen, and fades
// rather than slides.
type ContextMenu struct {
	items    []MenuItem
	selected int
	visible  bool
	anchorX  int
	anchorY  int
	anim     *Transition
}

func newContextMenu(step float64) *ContextMenu {
	m := &ContextMenu{anim: NewTransition(step)}
	m.anim.OnClosed = func() { m.visible = false }
	return m
}

// SetItems replaces the entries shown at the next open.
func (m *ContextMenu) SetItems(items []MenuItem) {
	m.items = items
}

// Visible reports whether the menu claims input.
func (m *ContextMenu) Visible() bool {
	return m.visible
}

// OpenAt shows the menu with its top-left at (x, y), pulled back on-screen
// when it would overflow.
func (m *ContextMenu) OpenAt(x, y, screenW, screenH int) {
	if len(m.items) == 0 {
		return
	}
	h := len(m.items)*menuItemHeight + 2*menuPad
	m.anchorX = clampInt(x, 0, max(screenW-menuWidth, 0))
	m.anchorY = clampInt(y, 0, max(screenH-h, 0))
	m.selected = 0
	m.visible = true
	m.anim.Open()
}

// Close starts the fade-out; visibility clears when it finishes.
func (m *ContextMenu) Close() {
	m.anim.Close()
}

func (m *ContextMenu) rect() Rect {
	return Rect{X: m.anchorX, Y: m.anchorY, W: menuWidth,
		H: len(m.items)*menuItemHeight + 2*menuPad}
}

// itemAt returns the index of the item containing (x, y), or -1.
func (m *ContextMenu) itemAt(x, y int) int {
	r := m.rect()
	if !r.Contains(x, y) {
		return -1
	}
	i := (y - r.Y - menuPad) / menuItemHeight
	if i < 0 || i >= len(m.items) {
		return -1
	}
	return i
}

// activate runs item i's action and closes the menu.
func (m *ContextMenu) activate(i int) {
	if i >= 0 && i < len(m.items) {
		if fn := m.items[i].Action; fn != nil {
			fn()
		}
	}
	m.Close()
}

// draw renders the menu fading in by the eased open progress.
func (m *ContextMenu) draw(fb Framebuffer, theme Theme) {
	if !m.visible {
		return
	}
	alpha := uint8(255 * m.anim.Value(EaseQuadOut))
	if alpha == 0 {
		return
	}
	r := m.rect()
	DropShadow(fb, r, 2, 2, 3, theme.Shadow)
	FillRectAlpha(fb, r, theme.MenuBack, alpha)
	blendRectOutline(fb, r, theme.MenuHighlight, alpha)
	for i, item := range m.items {
		ir := Rect{X: r.X + menuPad, Y: r.Y + menuPad + i*menuItemHeight,
			W: r.W - 2*menuPad, H: menuItemHeight}
		if i == m.selected {
			FillRectAlpha(fb, ir, theme.MenuHighlight, alpha)
		}
		fb.DrawString(ir.X+8, ir.Y+(menuItemHeight-TextHeight)/2, item.Label, theme.MenuText, Color{})
	}
}
