// Package nested is the headless controller for a nested popup menu. It
// owns the open/closed state and the chain of expanded submenus, measures
// elements through a host.Environment, and dismisses the menu when a pointer
// event lands outside every element it knows about.
//
// The controller is not safe for concurrent use; every call is expected to
// come from the goroutine that delivers pointer events.
package nested

import (
	"github.com/atomicstack/nestedmenu/internal/geometry"
	"github.com/atomicstack/nestedmenu/internal/host"
	"github.com/atomicstack/nestedmenu/internal/logging/events"
	"github.com/atomicstack/nestedmenu/internal/menu"
	"github.com/atomicstack/nestedmenu/internal/metrics"
	"github.com/atomicstack/nestedmenu/internal/state"
)

const (
	ignoredNoSubMenu   = "no-submenu"
	ignoredAlreadyOpen = "already-open"
	ignoredNotOpen     = "not-open"
)

// Config holds the optional controller settings. The zero value is a closed,
// empty menu anchored below its toggle button.
type Config struct {
	Items           []menu.Item
	IsOpen          bool
	DefaultOpenPath []string
	Placement       geometry.Placement
	Recorder        metrics.Recorder
}

// Controller drives one nested menu.
type Controller struct {
	env       host.Environment
	items     []menu.Item
	placement geometry.Placement
	store     state.MenuStore
	rec       metrics.Recorder

	toggleButton host.Handle
	menus        map[menuKey]host.Handle
	itemHandles  map[string]host.Handle

	removeListener func()

	activeAnchor host.Handle
	activeMenu   host.Handle
}

// New creates a controller. When cfg.IsOpen is true the outside-click
// listener is attached immediately.
func New(env host.Environment, cfg Config) *Controller {
	placement := cfg.Placement
	if placement == "" {
		placement = geometry.DefaultPlacement
	}
	rec := cfg.Recorder
	if rec == nil {
		rec = metrics.Nop{}
	}
	path := make([]string, len(cfg.DefaultOpenPath))
	copy(path, cfg.DefaultOpenPath)

	c := &Controller{
		env:         env,
		items:       menu.CloneItems(cfg.Items),
		placement:   placement,
		store:       state.NewMenuStore(state.Menu{IsOpen: cfg.IsOpen, CurrentPath: path}),
		rec:         rec,
		menus:       map[menuKey]host.Handle{},
		itemHandles: map[string]host.Handle{},
	}
	c.syncListener(cfg.IsOpen)
	return c
}

// Close detaches the outside-click listener. The controller keeps working
// afterwards but no longer dismisses on outside clicks until it is reopened.
func (c *Controller) Close() {
	c.detachListener()
}

// Items returns the root-level items.
func (c *Controller) Items() []menu.Item {
	return menu.CloneItems(c.items)
}

// Placement returns the configured root panel placement.
func (c *Controller) Placement() geometry.Placement {
	return c.placement
}

// State returns a snapshot of the menu state.
func (c *Controller) State() state.Menu {
	return c.store.Snapshot()
}

func (c *Controller) IsOpen() bool {
	return c.store.Snapshot().IsOpen
}

// CurrentPath returns a copy of the expanded submenu ids, root first.
func (c *Controller) CurrentPath() []string {
	return c.store.Snapshot().CurrentPath
}

// IsSubMenuOpen reports whether item's id is anywhere in the current path.
func (c *Controller) IsSubMenuOpen(item menu.Item) bool {
	return c.store.Snapshot().Contains(item.ID)
}

// ItemPath is the current path with item's id appended.
func (c *Controller) ItemPath(item menu.Item) []string {
	path := c.store.Snapshot().CurrentPath
	return append(path, item.ID)
}

// ToggleMenu flips the menu between open and closed, resetting the path.
// The outside-click listener is detached before a closing toggle is applied
// and attached after an opening one.
func (c *Controller) ToggleMenu() {
	if c.store.Snapshot().IsOpen {
		c.detachListener()
	}
	_, next := c.dispatch(state.Toggle{})
	c.syncListener(next.IsOpen)
	events.Menu.Toggle(next.IsOpen)
}

// OpenPath expands item's submenu. Items without a submenu, and items that
// are already in the path, are ignored.
func (c *Controller) OpenPath(item menu.Item) {
	if !item.HasSubMenu() {
		c.ignore(item.ID, ignoredNoSubMenu)
		return
	}
	prev, next := c.dispatch(state.OpenPath{ID: item.ID})
	if len(next.CurrentPath) == len(prev.CurrentPath) {
		c.ignore(item.ID, ignoredAlreadyOpen)
		return
	}
	events.Menu.Open(item.ID, next.CurrentPath)
}

// ClosePath collapses item's submenu and every submenu opened beneath it.
// Items without a submenu, and items that are not open, are ignored.
func (c *Controller) ClosePath(item menu.Item) {
	if !item.HasSubMenu() {
		c.ignore(item.ID, ignoredNoSubMenu)
		return
	}
	prev, next := c.dispatch(state.ClosePath{ID: item.ID})
	if len(next.CurrentPath) == len(prev.CurrentPath) {
		c.ignore(item.ID, ignoredNotOpen)
		return
	}
	events.Menu.Close(item.ID, next.CurrentPath)
}

// ActiveAnchor is the handle of the item most recently opened through a
// trigger, or zero.
func (c *Controller) ActiveAnchor() host.Handle {
	return c.activeAnchor
}

// ActiveMenu is the handle of the panel belonging to ActiveAnchor, or zero
// if the panel had not mounted when it was opened.
func (c *Controller) ActiveMenu() host.Handle {
	return c.activeMenu
}

func (c *Controller) dispatch(intent state.Intent) (state.Menu, state.Menu) {
	c.rec.Intent(intent.Kind())
	return c.store.Dispatch(intent)
}

func (c *Controller) ignore(id, reason string) {
	c.rec.Ignored(reason)
	events.Menu.Ignored(id, reason)
}

func (c *Controller) recordActive(item menu.Item) {
	c.activeAnchor = c.itemHandles[item.ID]
	c.activeMenu = c.menus[menuKeyFor(&item)]
}
