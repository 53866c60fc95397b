package meadow

// Desktop is the compositor core: the single owner of every window, widget,
// overlay, and effect pool. It runs on one logical thread with no internal
// locking — feed input through ProcessEvent and call Update once per frame.
type Desktop struct {
	fb      Framebuffer
	cfg     Config
	screenW int
	screenH int

	windows      map[WindowID]*window
	widgets      map[WidgetID]*widget
	order        []WindowID // stacking order, order[0] is topmost
	taskbarOrder []WindowID // taskbar button order, creation order
	nextWindowID WindowID
	nextWidgetID WidgetID

	focused  WindowID
	dragging WindowID
	dragOffX int
	dragOffY int

	cursorX int
	cursorY int

	// now is the frame clock in ms, advanced by Update. Double-click
	// detection measures against it.
	now           float64
	lastClickTime float64
	lastClickX    int
	lastClickY    int
	lastClickTag  clickTag

	themes    *ThemeManager
	plugins   *Registry
	particles *ParticleSystem
	wallpaper *Wallpaper
	icons     *IconLayer
	startMenu *StartMenu
	ctxMenu   *ContextMenu
	switcher  *Switcher
	tray      []TrayIcon
	flights   []flight

	clockText string
	debug     bool
	frames    uint64
}

// clickTag identifies what the previous mouse-down landed on, for
// double-click pairing. Two clicks only pair when they hit the same target.
type clickTag struct {
	kind clickKind
	win  WindowID
	icon int
}

type clickKind uint8

const (
	clickNone clickKind = iota
	clickIcon
	clickTitlebar
)

// flight is a cosmetic fly-to-taskbar ghost spawned on minimize.
type flight struct {
	tween *FlyTween
	c     Color
}

// NewDesktop creates a compositor over the given framebuffer. The screen
// size is read from the framebuffer once; this core is single-display.
func NewDesktop(fb Framebuffer, cfg Config) *Desktop {
	cfg.clamp()
	w, h := fb.Size()
	d := &Desktop{
		fb:            fb,
		cfg:           cfg,
		screenW:       w,
		screenH:       h,
		windows:       make(map[WindowID]*window),
		widgets:       make(map[WidgetID]*widget),
		themes:        NewThemeManager(),
		particles:     NewParticleSystem(cfg.ParticleCap),
		icons:         NewIconLayer(),
		lastClickTime: -1e12,
		debug:         cfg.Debug,
	}
	d.wallpaper = NewWallpaper(w, h-cfg.TaskbarHeight, cfg.WallpaperDensity)
	d.plugins = NewRegistry(d.themes)
	d.startMenu = newStartMenu(cfg.AnimationStep)
	d.ctxMenu = newContextMenu(cfg.AnimationStep)
	d.switcher = newSwitcher(cfg.AnimationStep)
	applyTheme(d.themes, cfg.Theme)
	return d
}

// Config returns the effective configuration.
func (d *Desktop) Config() Config {
	return d.cfg
}

// Themes returns the theme manager.
func (d *Desktop) Themes() *ThemeManager {
	return d.themes
}

// Plugins returns the plugin registry.
func (d *Desktop) Plugins() *Registry {
	return d.plugins
}

// Particles returns the shared particle pool.
func (d *Desktop) Particles() *ParticleSystem {
	return d.particles
}

// Wallpaper returns the live-wallpaper layer.
func (d *Desktop) Wallpaper() *Wallpaper {
	return d.wallpaper
}

// Icons returns the desktop icon layer.
func (d *Desktop) Icons() *IconLayer {
	return d.icons
}

// AddIcon places a desktop icon. See IconLayer.Add.
func (d *Desktop) AddIcon(icon DesktopIcon) error {
	return d.icons.Add(icon)
}

// SetDepthOffset shifts all icons' effective depth. See
// IconLayer.SetDepthOffset.
func (d *Desktop) SetDepthOffset(v float64) {
	d.icons.SetDepthOffset(v)
}

// ApplyConfig swaps in new tunables between frames: theme, animation step,
// parallax, debug flag. Pool capacities are fixed at construction and keep
// their size.
func (d *Desktop) ApplyConfig(cfg Config) {
	cfg.clamp()
	cfg.ParticleCap = d.cfg.ParticleCap
	cfg.WallpaperDensity = d.cfg.WallpaperDensity
	cfg.TaskbarHeight = d.cfg.TaskbarHeight
	d.cfg = cfg
	d.debug = cfg.Debug
	applyTheme(d.themes, cfg.Theme)
}

// workArea returns the screen minus the taskbar strip.
func (d *Desktop) workArea() Rect {
	return Rect{X: 0, Y: 0, W: d.screenW, H: d.screenH - d.cfg.TaskbarHeight}
}

// Show makes the window visible without changing focus.
func (d *Desktop) Show(id WindowID) {
	if win := d.windows[id]; win != nil {
		win.visible = true
		if win.state == StateMinimized {
			win.state = StateNormal
		}
	}
}

// Hide removes the window from the screen without minimizing it. A hidden
// focused window keeps focus; use Minimize for taskbar semantics.
func (d *Desktop) Hide(id WindowID) {
	if win := d.windows[id]; win != nil {
		win.visible = false
	}
}

// Focus gives the window keyboard focus. Minimized or stale windows are
// ignored.
func (d *Desktop) Focus(id WindowID) {
	win := d.windows[id]
	if win == nil || win.state == StateMinimized {
		return
	}
	d.focused = id
}

// BringToFront moves the window to the head of the stacking order. The
// taskbar button order is unaffected.
func (d *Desktop) BringToFront(id WindowID) {
	if d.windows[id] == nil {
		return
	}
	d.order = removeID(d.order, id)
	d.order = append([]WindowID{id}, d.order...)
}

// Minimize hides the window behind its taskbar button. A maximized or
// snapped window first reverts to its normal bounds, so a window is never
// both minimized and maximized. If the window held focus, the next visible
// window in stacking order takes it.
func (d *Desktop) Minimize(id WindowID) {
	win := d.windows[id]
	if win == nil || win.state == StateMinimized {
		return
	}
	if win.state == StateMaximized || win.state == StateSnapped {
		win.bounds = win.normalBounds
	}
	d.spawnMinimizeFlight(win)
	win.state = StateMinimized
	win.visible = false
	if d.focused == id {
		d.focused = 0
		for _, other := range d.order {
			if other != id && d.windows[other].visible {
				d.focused = other
				break
			}
		}
	}
}

// Maximize expands the window to the full work area, saving its bounds for
// Restore. Maximizing an already-maximized window is a no-op.
func (d *Desktop) Maximize(id WindowID) {
	win := d.windows[id]
	if win == nil || win.state == StateMaximized {
		return
	}
	if win.state == StateMinimized {
		win.visible = true
	}
	// A minimized window already carries its normal bounds (Minimize
	// reverts a maximized or snapped window first), so save in both cases.
	if win.state == StateNormal || win.state == StateMinimized {
		win.normalBounds = win.bounds
	}
	win.state = StateMaximized
	win.bounds = d.workArea()
}

// Restore returns the window toward StateNormal: a minimized window is
// shown and focused; a maximized or snapped window reapplies its saved
// bounds. Restoring a normal window is a no-op.
func (d *Desktop) Restore(id WindowID) {
	win := d.windows[id]
	if win == nil {
		return
	}
	switch win.state {
	case StateMinimized:
		win.state = StateNormal
		win.visible = true
		d.focused = id
	case StateMaximized, StateSnapped:
		win.state = StateNormal
		win.bounds = win.normalBounds
	}
}

// Snap fills a half- or quarter-screen region with the same save/restore
// discipline as Maximize. Re-snapping to the same position is a no-op.
func (d *Desktop) Snap(id WindowID, pos SnapPos) {
	win := d.windows[id]
	if win == nil {
		return
	}
	if win.state == StateSnapped && win.snap == pos {
		return
	}
	if win.state == StateMinimized {
		win.visible = true
	}
	if win.state == StateNormal || win.state == StateMinimized {
		win.normalBounds = win.bounds
	}
	win.state = StateSnapped
	win.snap = pos
	win.bounds = d.snapRect(pos)
}

// snapRect returns the work-area region for a snap position: halves for
// edges, quarters for corners.
func (d *Desktop) snapRect(pos SnapPos) Rect {
	wa := d.workArea()
	halfW := wa.W / 2
	halfH := wa.H / 2
	switch pos {
	case SnapLeft:
		return Rect{X: wa.X, Y: wa.Y, W: halfW, H: wa.H}
	case SnapRight:
		return Rect{X: wa.X + halfW, Y: wa.Y, W: wa.W - halfW, H: wa.H}
	case SnapTop:
		return Rect{X: wa.X, Y: wa.Y, W: wa.W, H: halfH}
	case SnapBottom:
		return Rect{X: wa.X, Y: wa.Y + halfH, W: wa.W, H: wa.H - halfH}
	case SnapTopLeft:
		return Rect{X: wa.X, Y: wa.Y, W: halfW, H: halfH}
	case SnapTopRight:
		return Rect{X: wa.X + halfW, Y: wa.Y, W: wa.W - halfW, H: halfH}
	case SnapBottomLeft:
		return Rect{X: wa.X, Y: wa.Y + halfH, W: halfW, H: wa.H - halfH}
	case SnapBottomRight:
		return Rect{X: wa.X + halfW, Y: wa.Y + halfH, W: wa.W - halfW, H: wa.H - halfH}
	default:
		return wa
	}
}

// spawnMinimizeFlight launches the cosmetic ghost that flies from the
// window's titlebar to its taskbar button.
func (d *Desktop) spawnMinimizeFlight(win *window) {
	toX, toY := float64(d.screenW)/2, float64(d.screenH)
	for i, id := range d.taskbarOrder {
		if id == win.id {
			r := d.windowButtonRect(i)
			toX = float64(r.X + r.W/2)
			toY = float64(r.Y + r.H/2)
			break
		}
	}
	fromX := float64(win.bounds.X + win.bounds.W/2)
	fromY := float64(win.bounds.Y + titlebarHeight/2)
	c := d.themes.Current().TitlebarActive
	if win.customColors {
		c = win.titlebar
	}
	d.flights = append(d.flights, flight{
		tween: NewFlyTween(fromX, fromY, toX, toY, 0.25, EaseCubicIn),
		c:     c,
	})
}

// StartMenu returns the start-menu overlay for item wiring.
func (d *Desktop) StartMenu() *StartMenu {
	return d.startMenu
}

// ContextMenu returns the context-menu overlay.
func (d *Desktop) ContextMenu() *ContextMenu {
	return d.ctxMenu
}

// SetDebug toggles per-frame stderr stats.
func (d *Desktop) SetDebug(enabled bool) {
	d.debug = enabled
}
