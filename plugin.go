package meadow

import "fmt"

// PluginAPIVersion is the registry's declared API version. Register rejects
// plugins built against any other version.
const PluginAPIVersion = 2

// maxPluginEffects caps the per-plugin named effect list.
const maxPluginEffects = 16

// PluginStatus is a plugin's lifecycle state.
type PluginStatus uint8

const (
	StatusUnloaded PluginStatus = iota // registered, init not yet run
	StatusLoaded                       // init succeeded
	StatusActive                       // the one plugin driving enhanced rendering
	StatusError                        // init failed
)

// String returns the status name for diagnostics.
func (s PluginStatus) String() string {
	switch s {
	case StatusUnloaded:
		return "unloaded"
	case StatusLoaded:
		return "loaded"
	case StatusActive:
		return "active"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// EffectParams carries named tunables into an effect's render callback.
type EffectParams map[string]float64

// EffectFunc renders a plugin effect into the given region. The userData
// pointer is whatever the plugin supplied at registration.
type EffectFunc func(fb Framebuffer, r Rect, params EffectParams, userData any)

// pluginEffect is one named entry of a plugin's ordered effect list.
type pluginEffect struct {
	name     string
	render   EffectFunc
	userData any
}

// Plugin is a theme/effect provider. The callbacks are all optional; a
// plugin with none of them is still a valid (if inert) registration.
type Plugin struct {
	Name       string
	Author     string
	Version    string
	APIVersion int

	// Init runs on Load. A non-nil error moves the plugin to StatusError.
	Init func() error
	// Shutdown runs on Unload.
	Shutdown func()
	// GetTheme, when set, supplies the theme installed on activation.
	GetTheme func() *Theme

	status  PluginStatus
	effects []pluginEffect
}

// Status returns the plugin's lifecycle state.
func (p *Plugin) Status() PluginStatus {
	return p.status
}

// AddEffect appends a named render callback to the plugin's effect list.
// Duplicate names fail with ErrEffectExists; a full list fails with
// ErrEffectListFull. Registration order is the order RenderActive invokes.
func (p *Plugin) AddEffect(name string, fn EffectFunc, userData any) error {
	if p == nil || fn == nil {
		return ErrUnknownEffect
	}
	for _, e := range p.effects {
		if e.name == name {
			return ErrEffectExists
		}
	}
	if len(p.effects) >= maxPluginEffects {
		return ErrEffectListFull
	}
	p.effects = append(p.effects, pluginEffect{name: name, render: fn, userData: userData})
	return nil
}

// EffectNames returns the registered effect names in order.
func (p *Plugin) EffectNames() []string {
	if p == nil {
		return nil
	}
	names := make([]string, len(p.effects))
	for i, e := range p.effects {
		names[i] = e.name
	}
	return names
}

// Registry owns every registered plugin and the single Active slot. It may
// be attached to a ThemeManager so activating a plugin that exposes a theme
// installs it as the custom theme.
type Registry struct {
	plugins []*Plugin
	active  *Plugin
	themes  *ThemeManager
}

// NewRegistry creates an empty registry. themes may be nil when no theme
// subsystem is attached (headless tests).
func NewRegistry(themes *ThemeManager) *Registry {
	return &Registry{themes: themes}
}

// Register admits a plugin. It fails with ErrAPIVersion on a version
// mismatch and ErrPluginExists on a duplicate name; neither failure mutates
// the registry.
func (r *Registry) Register(p *Plugin) error {
	if p == nil {
		return ErrUnknownPlugin
	}
	if p.APIVersion != PluginAPIVersion {
		return fmt.Errorf("%w: %q declares v%d, registry is v%d",
			ErrAPIVersion, p.Name, p.APIVersion, PluginAPIVersion)
	}
	for _, q := range r.plugins {
		if q.Name == p.Name {
			return fmt.Errorf("%w: %q", ErrPluginExists, p.Name)
		}
	}
	p.status = StatusUnloaded
	r.plugins = append(r.plugins, p)
	return nil
}

// GetByName returns the registered plugin with the given name, or nil.
func (r *Registry) GetByName(name string) *Plugin {
	for _, p := range r.plugins {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Active returns the single active plugin, or nil.
func (r *Registry) Active() *Plugin {
	return r.active
}

// Load runs the plugin's init callback and moves it to StatusLoaded.
// Loading an already-loaded or active plugin is a no-op. An init error
// moves the plugin to StatusError and is returned wrapped.
func (r *Registry) Load(p *Plugin) error {
	if p == nil || r.GetByName(p.Name) != p {
		return ErrUnknownPlugin
	}
	if p.status == StatusLoaded || p.status == StatusActive {
		return nil
	}
	if p.Init != nil {
		if err := p.Init(); err != nil {
			p.status = StatusError
			return fmt.Errorf("meadow: plugin %q init: %w", p.Name, err)
		}
	}
	p.status = StatusLoaded
	return nil
}

// Activate makes p the single active plugin, auto-loading it first if
// needed. Any previously active plugin is demoted to StatusLoaded. If p
// exposes a theme it is installed as the custom theme and selected.
// Activating the already-active plugin is a no-op.
func (r *Registry) Activate(p *Plugin) error {
	if p == nil || r.GetByName(p.Name) != p {
		return ErrUnknownPlugin
	}
	if r.active == p {
		return nil
	}
	if err := r.Load(p); err != nil {
		return err
	}
	if r.active != nil {
		r.active.status = StatusLoaded
	}
	r.active = p
	p.status = StatusActive
	if p.GetTheme != nil && r.themes != nil {
		if t := p.GetTheme(); t != nil {
			r.themes.SetCustom(*t)
		}
	}
	return nil
}

// Deactivate demotes the active plugin to StatusLoaded. Safe to call when
// nothing is active.
func (r *Registry) Deactivate() {
	if r.active == nil {
		return
	}
	r.active.status = StatusLoaded
	r.active = nil
}

// Unload runs the shutdown callback and returns the plugin to
// StatusUnloaded, deactivating it first if it was active. Unloading an
// already-unloaded or unknown plugin is an idempotent no-op.
func (r *Registry) Unload(p *Plugin) {
	if p == nil || r.GetByName(p.Name) != p {
		return
	}
	if p.status == StatusUnloaded {
		return
	}
	if r.active == p {
		r.Deactivate()
	}
	if p.Shutdown != nil && p.status != StatusError {
		p.Shutdown()
	}
	p.status = StatusUnloaded
}

// Unregister unloads p and removes it from the registry. Unregistering a
// plugin that was never registered is an idempotent no-op.
func (r *Registry) Unregister(p *Plugin) {
	if p == nil {
		return
	}
	for i, q := range r.plugins {
		if q == p {
			r.Unload(p)
			r.plugins = append(r.plugins[:i], r.plugins[i+1:]...)
			return
		}
	}
}

// RenderEffect invokes one named effect of one named plugin over the given
// region. Unknown plugin or effect names fail without drawing.
func (r *Registry) RenderEffect(fb Framebuffer, plugin, effect string, region Rect, params EffectParams) error {
	p := r.GetByName(plugin)
	if p == nil {
		return fmt.Errorf("%w: %q", ErrUnknownPlugin, plugin)
	}
	for _, e := range p.effects {
		if e.name == effect {
			e.render(fb, region, params, e.userData)
			return nil
		}
	}
	return fmt.Errorf("%w: %q/%q", ErrUnknownEffect, plugin, effect)
}

// RenderActive invokes every effect of the active plugin, in registration
// order, over the region being composited. With no active plugin it draws
// nothing.
func (r *Registry) RenderActive(fb Framebuffer, region Rect, params EffectParams) {
	if r.active == nil {
		return
	}
	for _, e := range r.active.effects {
		e.render(fb, region, params, e.userData)
	}
}
