package nested

import (
	"github.com/atomicstack/nestedmenu/internal/host"
	"github.com/atomicstack/nestedmenu/internal/logging/events"
)

// syncListener attaches the outside-click listener iff open.
func (c *Controller) syncListener(open bool) {
	if open {
		c.attachListener()
		return
	}
	c.detachListener()
}

func (c *Controller) attachListener() {
	if c.removeListener != nil || c.env == nil {
		return
	}
	c.removeListener = c.env.AddPointerListener(c.handleOutside)
	c.rec.OutsideListener(true)
	events.Menu.Listener(true)
}

func (c *Controller) detachListener() {
	if c.removeListener == nil {
		return
	}
	remove := c.removeListener
	c.removeListener = nil
	remove()
	c.rec.OutsideListener(false)
	events.Menu.Listener(false)
}

// ListenerAttached reports whether the outside-click listener is active.
func (c *Controller) ListenerAttached() bool {
	return c.removeListener != nil
}

func (c *Controller) handleOutside(ev *host.PointerEvent) {
	if ev == nil || c.Inside(ev.Path) {
		return
	}
	snapshot := c.store.Snapshot()
	if !snapshot.IsOpen {
		return
	}
	c.rec.Dismissal()
	events.Menu.Dismiss(snapshot.CurrentPath)
	c.ToggleMenu()
}

// Inside reports whether any handle in path is the toggle button, a panel
// or an item this controller has registered. The button counts so the
// unstopped click that opens the menu does not reach the freshly attached
// listener as an outside click.
func (c *Controller) Inside(path []host.Handle) bool {
	for _, h := range path {
		if c.isRegistered(h) {
			return true
		}
	}
	return false
}
