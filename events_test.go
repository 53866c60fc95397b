package meadow

import "testing"

func mouseDown(d *Desktop, x, y int) {
	d.ProcessEvent(Event{Type: EventMouseDown, X: x, Y: y, Button: MouseButtonLeft})
}

func mouseUp(d *Desktop, x, y int) {
	d.ProcessEvent(Event{Type: EventMouseUp, X: x, Y: y, Button: MouseButtonLeft})
}

func mouseMove(d *Desktop, x, y int) {
	d.ProcessEvent(Event{Type: EventMouseMove, X: x, Y: y})
}

func keyDown(d *Desktop, k Key, mods KeyModifiers) {
	d.ProcessEvent(Event{Type: EventKeyDown, Key: k, Mods: mods})
}

func TestTitlebarDragOffsetAndClamp(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	win := d.CreateWindow("W", 100, 100, 400, 300)

	mouseDown(d, 150, 110) // titlebar, 50 px right of the corner
	if d.dragging != win {
		t.Fatal("titlebar press did not start a drag")
	}

	mouseMove(d, 200, 150)
	r, _ := d.WindowBounds(win)
	if r.X != 150 || r.Y != 140 {
		t.Errorf("origin after drag = (%d, %d), want (150, 140)", r.X, r.Y)
	}

	// The grab offset keeps working when the pointer would pull the origin
	// negative; the window pins at the screen edge.
	mouseMove(d, 10, 5)
	r, _ = d.WindowBounds(win)
	if r.X != 0 || r.Y != 0 {
		t.Errorf("origin after clamped drag = (%d, %d), want (0, 0)", r.X, r.Y)
	}
}

func TestMouseUpAlwaysClearsDrag(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	win := d.CreateWindow("W", 100, 100, 400, 300)

	mouseDown(d, 150, 110)
	mouseUp(d, 400, 300) // mid-screen, no snap
	if d.dragging != 0 {
		t.Fatal("drag survived mouse up")
	}

	mouseMove(d, 700, 500)
	r, _ := d.WindowBounds(win)
	if r.X != 350 {
		t.Errorf("window moved after drag ended: X = %d, want 350", r.X)
	}
}

func TestEdgeReleaseSnapsLeftHalf(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	win := d.CreateWindow("W", 100, 100, 400, 300)

	mouseDown(d, 150, 110)
	mouseUp(d, 2, 300)

	r, _ := d.WindowBounds(win)
	if r != (Rect{X: 0, Y: 0, W: 400, H: 564}) {
		t.Errorf("bounds after edge release = %v, want left half", r)
	}
	if state, _ := d.WindowState(win); state != StateSnapped {
		t.Errorf("state = %d, want StateSnapped", state)
	}
}

func TestCornerReleaseSnapsQuarter(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	win := d.CreateWindow("W", 100, 100, 400, 300)

	mouseDown(d, 150, 110)
	mouseUp(d, 2, 2)

	r, _ := d.WindowBounds(win)
	if r != (Rect{X: 0, Y: 0, W: 400, H: 282}) {
		t.Errorf("bounds after corner release = %v, want top-left quarter", r)
	}
}

func TestDoubleClickTitlebarMaximizes(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	win := d.CreateWindow("W", 100, 100, 400, 300)

	mouseDown(d, 110, 110)
	mouseUp(d, 110, 110)
	d.now += 100
	mouseDown(d, 110, 110)

	if state, _ := d.WindowState(win); state != StateMaximized {
		t.Errorf("state = %d, want StateMaximized after titlebar double click", state)
	}
}

func TestDoubleClickRespectsTimeThreshold(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	win := d.CreateWindow("W", 100, 100, 400, 300)

	mouseDown(d, 110, 110)
	mouseUp(d, 110, 110)
	d.now += float64(d.cfg.DoubleClickMS + 1)
	mouseDown(d, 110, 110)

	if state, _ := d.WindowState(win); state != StateNormal {
		t.Errorf("late second click maximized the window")
	}
}

func TestDoubleClickRespectsDistanceThreshold(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	win := d.CreateWindow("W", 100, 100, 400, 300)

	mouseDown(d, 110, 110)
	mouseUp(d, 110, 110)
	d.now += 100
	mouseDown(d, 110+d.cfg.DoubleClickDist+1, 110)

	if state, _ := d.WindowState(win); state != StateNormal {
		t.Errorf("distant second click maximized the window")
	}
}

func TestClickTopmostOverlappingWindowWins(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	a := d.CreateWindow("A", 100, 100, 200, 200)
	b := d.CreateWindow("B", 150, 150, 200, 200)

	d.Focus(a)
	d.BringToFront(a)
	mouseDown(d, 200, 200) // inside both, B is below A in the stack now

	if got := d.FocusedWindow(); got != a {
		t.Errorf("focused = %d, want topmost %d", got, a)
	}

	d.BringToFront(b)
	mouseDown(d, 200, 200)
	if got := d.FocusedWindow(); got != b {
		t.Errorf("focused = %d, want topmost %d after restack", got, b)
	}
}

func TestTitlebarButtonsCloseMaximizeMinimize(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	win := d.CreateWindow("W", 100, 100, 400, 300)
	w := d.windows[win]

	maxR := w.titlebarButtonRect(buttonMaximize)
	mouseDown(d, maxR.X+2, maxR.Y+2)
	if state, _ := d.WindowState(win); state != StateMaximized {
		t.Fatalf("state = %d, want StateMaximized", state)
	}
	mouseUp(d, maxR.X+2, maxR.Y+2)

	minR := w.titlebarButtonRect(buttonMinimize)
	mouseDown(d, minR.X+2, minR.Y+2)
	if state, _ := d.WindowState(win); state != StateMinimized {
		t.Fatalf("state = %d, want StateMinimized", state)
	}
	mouseUp(d, minR.X+2, minR.Y+2)

	d.Restore(win)
	closeR := d.windows[win].titlebarButtonRect(buttonClose)
	mouseDown(d, closeR.X+2, closeR.Y+2)
	if _, ok := d.WindowBounds(win); ok {
		t.Error("close button did not destroy the window")
	}
}

func TestStartMenuClaimsClicksWhileVisible(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	a := d.CreateWindow("A", 100, 100, 200, 200)
	b := d.CreateWindow("B", 400, 100, 200, 200)
	_ = a

	d.startMenu.AddItem("Notes", nil)
	d.startMenu.Open()

	mouseDown(d, 150, 150) // over window A, outside the menu
	if got := d.FocusedWindow(); got != b {
		t.Errorf("click leaked past the start menu: focused = %d", got)
	}
	if !d.startMenu.anim.Closing() {
		t.Error("outside click did not close the menu")
	}
}

func TestStartMenuItemClickActivates(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	ran := false
	d.startMenu.AddItem("Notes", func() { ran = true })
	d.startMenu.Open()

	r := d.startMenu.rect(600, d.cfg.TaskbarHeight)
	mouseDown(d, r.X+10, r.Y+menuPad+menuItemHeight/2)
	if !ran {
		t.Error("item click did not run the action")
	}
}

func TestContextMenuOpensOnDesktopRightClick(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	ran := false
	d.ctxMenu.SetItems([]MenuItem{{Label: "Refresh", Action: func() { ran = true }}})

	d.ProcessEvent(Event{Type: EventMouseDown, X: 500, Y: 300, Button: MouseButtonRight})
	if !d.ctxMenu.Visible() {
		t.Fatal("right click on the desktop did not open the context menu")
	}

	r := d.ctxMenu.rect()
	mouseDown(d, r.X+10, r.Y+menuPad+menuItemHeight/2)
	if !ran {
		t.Error("context item click did not run the action")
	}
}

func TestContextMenuClampsOnScreen(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	d.ctxMenu.SetItems([]MenuItem{{Label: "A"}, {Label: "B"}})

	d.ProcessEvent(Event{Type: EventMouseDown, X: 790, Y: 550, Button: MouseButtonRight})
	r := d.ctxMenu.rect()
	if r.X+r.W > 800 || r.Y+r.H > 600 {
		t.Errorf("context menu overflows screen: %v", r)
	}
}

func TestTaskbarConsumesClicks(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	a := d.CreateWindow("A", 300, 400, 300, 250) // hangs over the taskbar strip
	b := d.CreateWindow("B", 10, 10, 100, 100)
	_ = a

	mouseDown(d, 400, 580) // empty taskbar area over window A
	if got := d.FocusedWindow(); got != b {
		t.Errorf("taskbar click leaked to the window below: focused = %d", got)
	}
	if d.ctxMenu.Visible() {
		t.Error("taskbar click opened the context menu")
	}
}

func TestStartButtonTogglesMenu(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	sb := d.startButtonRect()

	mouseDown(d, sb.X+5, sb.Y+5)
	if !d.startMenu.Visible() {
		t.Fatal("start button click did not open the menu")
	}
}

func TestTaskbarButtonMinimizeRestoreCycle(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	win := d.CreateWindow("W", 100, 100, 200, 150)
	r := d.windowButtonRect(0)

	mouseDown(d, r.X+5, r.Y+5) // focused and visible: minimize
	if state, _ := d.WindowState(win); state != StateMinimized {
		t.Fatalf("state = %d, want StateMinimized", state)
	}

	mouseDown(d, r.X+5, r.Y+5) // minimized: restore and focus
	if state, _ := d.WindowState(win); state != StateNormal {
		t.Errorf("state = %d, want StateNormal", state)
	}
	if got := d.FocusedWindow(); got != win {
		t.Errorf("focused = %d, want %d", got, win)
	}
}

func TestTrayIconClick(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	clicked := false
	_ = d.AddTrayIcon(TrayIcon{Glyph: "@", OnClick: func() { clicked = true }})

	r := d.trayIconRect(0)
	mouseDown(d, r.X+5, r.Y+5)
	if !clicked {
		t.Error("tray icon click did not fire")
	}
}

func TestIconTakesPriorityOverWindow(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	launched := false
	_ = d.AddIcon(DesktopIcon{X: 50, Y: 50, Label: "Files",
		OnLaunch: func() { launched = true }})
	a := d.CreateWindow("A", 0, 0, 300, 300)
	b := d.CreateWindow("B", 400, 0, 200, 200)
	_ = a

	mouseDown(d, 60, 60) // icon over window A; single click only selects
	if got := d.FocusedWindow(); got != b {
		t.Errorf("icon click leaked to the window below: focused = %d", got)
	}
	if launched {
		t.Fatal("single click launched the icon")
	}

	d.now += 100
	mouseDown(d, 60, 60)
	if !launched {
		t.Error("double click did not launch the icon")
	}
}

func TestIconDoubleClickSpawnsBurst(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	_ = d.AddIcon(DesktopIcon{X: 50, Y: 50, OnLaunch: func() {}})

	mouseDown(d, 60, 60)
	d.now += 100
	mouseDown(d, 60, 60)
	if d.particles.AliveCount() == 0 {
		t.Error("launch burst spawned no particles")
	}
}

func TestWidgetClickForwardingFirstMatchWins(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	win := d.CreateWindow("W", 100, 100, 300, 200)
	var got []string
	first := d.AddButton(win, "first", Rect{X: 10, Y: 10, W: 80, H: 24})
	second := d.AddButton(win, "second", Rect{X: 10, Y: 10, W: 80, H: 24})
	d.SetClickHandler(first, func(WidgetID) { got = append(got, "first") })
	d.SetClickHandler(second, func(WidgetID) { got = append(got, "second") })

	mouseDown(d, 120, 140) // inside both overlapping buttons
	if len(got) != 1 || got[0] != "first" {
		t.Errorf("handlers fired = %v, want only the first widget", got)
	}
}

func TestWidgetClickSkipsHiddenAndDisabled(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	win := d.CreateWindow("W", 100, 100, 300, 200)
	fired := ""
	top := d.AddButton(win, "top", Rect{X: 10, Y: 10, W: 80, H: 24})
	under := d.AddButton(win, "under", Rect{X: 10, Y: 10, W: 80, H: 24})
	d.SetClickHandler(top, func(WidgetID) { fired = "top" })
	d.SetClickHandler(under, func(WidgetID) { fired = "under" })
	d.SetWidgetVisible(top, false)

	mouseDown(d, 120, 140)
	if fired != "under" {
		t.Errorf("fired = %q, want the visible widget underneath", fired)
	}

	fired = ""
	d.SetWidgetVisible(top, true)
	d.SetWidgetEnabled(top, false)
	mouseDown(d, 120, 140)
	if fired != "under" {
		t.Errorf("fired = %q, disabled widget must not receive clicks", fired)
	}
}

func TestStartMenuKeyboardNavigationWraps(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	ran := -1
	for i := 0; i < 3; i++ {
		i := i
		d.startMenu.AddItem("item", func() { ran = i })
	}
	d.startMenu.Open()

	keyDown(d, KeyUp, 0) // wraps to the last item
	if got := d.startMenu.Selected(); got != 2 {
		t.Errorf("selected = %d, want 2 after wrap", got)
	}
	keyDown(d, KeyDown, 0) // wraps back to the first
	if got := d.startMenu.Selected(); got != 0 {
		t.Errorf("selected = %d, want 0", got)
	}

	keyDown(d, KeyEnter, 0)
	if ran != 0 {
		t.Errorf("activated item = %d, want 0", ran)
	}
	if !d.startMenu.anim.Closing() {
		t.Error("activation did not close the menu")
	}
}

func TestStartMenuEscapeCloses(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	d.startMenu.AddItem("item", nil)
	d.startMenu.Open()

	keyDown(d, KeyEscape, 0)
	if !d.startMenu.anim.Closing() {
		t.Error("escape did not close the menu")
	}
}

func TestStartMenuConsumesAllKeys(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	win := d.CreateWindow("W", 10, 10, 100, 100)
	leaked := false
	d.SetKeyHandler(win, func(Key, rune) { leaked = true })
	d.startMenu.AddItem("item", nil)
	d.startMenu.Open()

	keyDown(d, KeyChar, 0)
	if leaked {
		t.Error("key reached the focused window while the start menu was open")
	}
}

func TestFocusedWindowReceivesKeys(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	win := d.CreateWindow("W", 10, 10, 100, 100)
	var gotKey Key
	var gotRune rune
	d.SetKeyHandler(win, func(k Key, r rune) { gotKey, gotRune = k, r })

	d.ProcessEvent(Event{Type: EventKeyDown, Key: KeyChar, Rune: 'q'})
	if gotKey != KeyChar || gotRune != 'q' {
		t.Errorf("handler got (%d, %q), want (KeyChar, q)", gotKey, gotRune)
	}
}

func TestAltTabSwitcherCycleAndConfirm(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	a := d.CreateWindow("A", 10, 10, 100, 100)
	b := d.CreateWindow("B", 20, 20, 100, 100)
	d.CreateWindow("C", 30, 30, 100, 100)

	keyDown(d, KeyTab, ModAlt)
	if !d.switcher.Visible() {
		t.Fatal("Alt-Tab did not open the switcher")
	}
	// Preselects the second entry: the previously focused window.
	if got := d.switcher.ids[d.switcher.index]; got != b {
		t.Errorf("preselected = %d, want %d", got, b)
	}

	keyDown(d, KeyTab, 0) // next
	if got := d.switcher.ids[d.switcher.index]; got != a {
		t.Errorf("selected after Tab = %d, want %d", got, a)
	}
	keyDown(d, KeyTab, ModShift) // back
	if got := d.switcher.ids[d.switcher.index]; got != b {
		t.Errorf("selected after Shift-Tab = %d, want %d", got, b)
	}

	keyDown(d, KeyEnter, 0)
	if got := d.FocusedWindow(); got != b {
		t.Errorf("focused after confirm = %d, want %d", got, b)
	}
	if got := d.StackingOrder()[0]; got != b {
		t.Errorf("top of stack = %d, want %d", got, b)
	}
}

func TestAltTabNeedsTwoVisibleWindows(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	d.CreateWindow("only", 10, 10, 100, 100)

	keyDown(d, KeyTab, ModAlt)
	if d.switcher.Visible() {
		t.Error("switcher opened with a single window")
	}
}

func TestAltTabEscapeKeepsFocus(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	d.CreateWindow("A", 10, 10, 100, 100)
	b := d.CreateWindow("B", 20, 20, 100, 100)

	keyDown(d, KeyTab, ModAlt)
	keyDown(d, KeyEscape, 0)
	if got := d.FocusedWindow(); got != b {
		t.Errorf("focused after cancel = %d, want unchanged %d", got, b)
	}
}

func TestSwitcherConfirmSkipsDestroyedWindow(t *testing.T) {
	d, _ := newTestDesktop(800, 600)
	d.CreateWindow("A", 10, 10, 100, 100)
	b := d.CreateWindow("B", 20, 20, 100, 100)
	c := d.CreateWindow("C", 30, 30, 100, 100)

	keyDown(d, KeyTab, ModAlt) // snapshot [c b a], preselect b
	d.DestroyWindow(b)
	keyDown(d, KeyEnter, 0)

	// The destroyed selection is skipped; focus stays where destruction
	// left it.
	if got := d.FocusedWindow(); got != c {
		t.Errorf("focused = %d, want %d", got, c)
	}
}
