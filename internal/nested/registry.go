package nested

import (
	"github.com/atomicstack/nestedmenu/internal/host"
	"github.com/atomicstack/nestedmenu/internal/menu"
)

// menuKey identifies a panel. The root panel has root set and no id, so an
// item whose id is "root" can never collide with it.
type menuKey struct {
	id   string
	root bool
}

var rootMenuKey = menuKey{root: true}

func menuKeyFor(item *menu.Item) menuKey {
	if item == nil {
		return rootMenuKey
	}
	return menuKey{id: item.ID}
}

// RegisterToggleButton records the toggle button's handle.
func (c *Controller) RegisterToggleButton(h host.Handle) {
	if h == "" {
		return
	}
	c.toggleButton = h
}

// RegisterMenu records the handle of item's submenu panel, or of the root
// panel when item is nil. Entries are replaced on re-mount and never removed.
func (c *Controller) RegisterMenu(item *menu.Item, h host.Handle) {
	if h == "" {
		return
	}
	c.menus[menuKeyFor(item)] = h
}

// RegisterItem records the handle of item's row.
func (c *Controller) RegisterItem(item menu.Item, h host.Handle) {
	if h == "" {
		return
	}
	c.itemHandles[item.ID] = h
}

// ToggleButton returns the registered toggle button handle.
func (c *Controller) ToggleButton() host.Handle {
	return c.toggleButton
}

// MenuHandle returns the registered panel handle for item, nil meaning root.
func (c *Controller) MenuHandle(item *menu.Item) (host.Handle, bool) {
	h, ok := c.menus[menuKeyFor(item)]
	return h, ok
}

// ItemHandle returns the registered row handle for item.
func (c *Controller) ItemHandle(item menu.Item) (host.Handle, bool) {
	h, ok := c.itemHandles[item.ID]
	return h, ok
}

func (c *Controller) isRegistered(h host.Handle) bool {
	if h == "" {
		return false
	}
	if h == c.toggleButton {
		return true
	}
	for _, m := range c.menus {
		if m == h {
			return true
		}
	}
	for _, it := range c.itemHandles {
		if it == h {
			return true
		}
	}
	return false
}
