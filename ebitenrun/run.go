// Package ebitenrun hosts a meadow desktop inside an Ebitengine window: it
// harvests OS input into meadow events, drives one Desktop.Update per
// frame, and blits the software framebuffer to the screen.
package ebitenrun

import (
	"fmt"
	"log"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/meadowos/meadow"
)

// Options configures the host window.
type Options struct {
	// Title is the OS window title.
	Title string
	// ConfigPath, when set, is watched with fsnotify; edits to the file
	// are reloaded and applied between frames.
	ConfigPath string
}

// Run opens a window sized to the framebuffer and blocks until it closes.
// fb must be the same ImageBuffer the desktop composites into.
func Run(d *meadow.Desktop, fb *meadow.ImageBuffer, opts Options) error {
	g := &game{d: d, fb: fb, lastFrame: time.Now()}

	if opts.ConfigPath != "" {
		reloads, closeWatch, err := watchConfig(opts.ConfigPath)
		if err != nil {
			log.Printf("meadow: config watch disabled: %v", err)
		} else {
			g.reloads = reloads
			defer closeWatch()
		}
	}

	w, h := fb.Size()
	title := opts.Title
	if title == "" {
		title = "Meadow"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebitenrun: %w", err)
	}
	return nil
}

type game struct {
	d         *meadow.Desktop
	fb        *meadow.ImageBuffer
	lastFrame time.Time
	reloads   <-chan string

	lastCursorX int
	lastCursorY int
	runeBuf     []rune
}

func (g *game) Update() error {
	// Apply at most one queued config reload between frames.
	select {
	case path := <-g.reloads:
		cfg, err := meadow.LoadConfig(path)
		if err != nil {
			log.Printf("meadow: config reload: %v", err)
		} else {
			g.d.ApplyConfig(cfg)
			log.Printf("meadow: config reloaded from %s", path)
		}
	default:
	}

	g.harvestInput()

	now := time.Now()
	deltaMS := float64(now.Sub(g.lastFrame)) / float64(time.Millisecond)
	g.lastFrame = now
	g.d.Update(deltaMS)
	return nil
}

// harvestInput translates this frame's raw ebiten input into meadow events.
func (g *game) harvestInput() {
	x, y := ebiten.CursorPosition()
	if x != g.lastCursorX || y != g.lastCursorY {
		g.lastCursorX, g.lastCursorY = x, y
		g.d.ProcessEvent(meadow.Event{Type: meadow.EventMouseMove, X: x, Y: y})
	}

	for eb, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(eb) {
			g.d.ProcessEvent(meadow.Event{Type: meadow.EventMouseDown, X: x, Y: y, Button: mb})
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			g.d.ProcessEvent(meadow.Event{Type: meadow.EventMouseUp, X: x, Y: y, Button: mb})
		}
	}

	mods := modifiers()
	for ek, mk := range namedKeys {
		if inpututil.IsKeyJustPressed(ek) {
			g.d.ProcessEvent(meadow.Event{Type: meadow.EventKeyDown, Key: mk, Mods: mods})
		}
	}
	g.runeBuf = ebiten.AppendInputChars(g.runeBuf[:0])
	for _, r := range g.runeBuf {
		g.d.ProcessEvent(meadow.Event{Type: meadow.EventKeyDown, Key: meadow.KeyChar, Rune: r, Mods: mods})
	}
}

var mouseButtons = map[ebiten.MouseButton]meadow.MouseButton{
	ebiten.MouseButtonLeft:   meadow.MouseButtonLeft,
	ebiten.MouseButtonRight:  meadow.MouseButtonRight,
	ebiten.MouseButtonMiddle: meadow.MouseButtonMiddle,
}

var namedKeys = map[ebiten.Key]meadow.Key{
	ebiten.KeyEnter:      meadow.KeyEnter,
	ebiten.KeySpace:      meadow.KeySpace,
	ebiten.KeyEscape:     meadow.KeyEscape,
	ebiten.KeyTab:        meadow.KeyTab,
	ebiten.KeyArrowUp:    meadow.KeyUp,
	ebiten.KeyArrowDown:  meadow.KeyDown,
	ebiten.KeyArrowLeft:  meadow.KeyLeft,
	ebiten.KeyArrowRight: meadow.KeyRight,
	ebiten.KeyBackspace:  meadow.KeyBackspace,
}

func modifiers() meadow.KeyModifiers {
	var mods meadow.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= meadow.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= meadow.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= meadow.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= meadow.ModMeta
	}
	return mods
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.fb.Pix())
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Size()
}

// watchConfig starts an fsnotify watcher on path and forwards write events
// as reload requests. The channel is buffered to one pending reload;
// bursts of editor writes collapse into a single application.
func watchConfig(path string) (<-chan string, func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, nil, err
	}
	reloads := make(chan string, 1)
	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					select {
					case reloads <- path:
					default:
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("meadow: config watch: %v", err)
			}
		}
	}()
	return reloads, func() { watcher.Close() }, nil
}
