package nested

import (
	"github.com/atomicstack/nestedmenu/internal/host"
	"github.com/atomicstack/nestedmenu/internal/menu"
)

// Handler responds to an interaction on an element.
type Handler func(*host.Interaction)

// Handlers maps event kinds to the handler an element runs for them.
type Handlers map[host.EventKind]Handler

// With returns a new map holding h and other. When both define a kind the
// handlers run in order, h first.
func (h Handlers) With(other Handlers) Handlers {
	out := make(Handlers, len(h)+len(other))
	for kind, fn := range h {
		out[kind] = fn
	}
	for kind, fn := range other {
		existing, ok := out[kind]
		if !ok {
			out[kind] = fn
			continue
		}
		first, second := existing, fn
		out[kind] = func(ev *host.Interaction) {
			first(ev)
			second(ev)
		}
	}
	return out
}

// ElementProps is what a renderer attaches to one element: a stable key, a
// mount callback that receives the element's handle, and its handlers.
type ElementProps struct {
	Key      string
	Ref      func(host.Handle)
	Handlers Handlers
}

// ToggleButtonProps wires the toggle button: clicking it toggles the menu.
func (c *Controller) ToggleButtonProps() ElementProps {
	return ElementProps{
		Key: "toggle-button",
		Ref: c.RegisterToggleButton,
		Handlers: Handlers{
			host.Click: func(*host.Interaction) { c.ToggleMenu() },
		},
	}
}

// MenuProps wires a panel. A nil item is the root panel.
func (c *Controller) MenuProps(item *menu.Item) ElementProps {
	key := "root"
	var owner *menu.Item
	if item != nil {
		key = item.ID
		dup := *item
		owner = &dup
	}
	return ElementProps{
		Key: key,
		Ref: func(h host.Handle) { c.RegisterMenu(owner, h) },
	}
}

// ItemProps wires an item row.
func (c *Controller) ItemProps(item menu.Item) ElementProps {
	return ElementProps{
		Key: item.ID,
		Ref: func(h host.Handle) { c.RegisterItem(item, h) },
	}
}

// OpenTrigger opens item's submenu on kind unless it is already open.
// The interaction keeps propagating.
func (c *Controller) OpenTrigger(kind host.EventKind, item menu.Item) Handlers {
	return Handlers{
		kind: func(*host.Interaction) {
			if !item.HasSubMenu() {
				return
			}
			if c.IsSubMenuOpen(item) {
				return
			}
			c.OpenPath(item)
			c.recordActive(item)
		},
	}
}

// CloseTrigger closes item's submenu on kind and stops propagation. A nil
// item only stops propagation.
func (c *Controller) CloseTrigger(kind host.EventKind, item *menu.Item) Handlers {
	var target *menu.Item
	if item != nil {
		dup := *item
		target = &dup
	}
	return Handlers{
		kind: func(ev *host.Interaction) {
			ev.StopPropagation()
			if target != nil {
				c.ClosePath(*target)
			}
		},
	}
}

// ToggleTrigger closes item's submenu when it is open and opens it
// otherwise, stopping propagation either way. A nil item only stops
// propagation.
func (c *Controller) ToggleTrigger(kind host.EventKind, item *menu.Item) Handlers {
	var target *menu.Item
	if item != nil {
		dup := *item
		target = &dup
	}
	return Handlers{
		kind: func(ev *host.Interaction) {
			ev.StopPropagation()
			if target == nil {
				return
			}
			if c.IsSubMenuOpen(*target) {
				c.ClosePath(*target)
				return
			}
			c.OpenPath(*target)
			if target.HasSubMenu() {
				c.recordActive(*target)
			}
		},
	}
}
