package nested

import (
	"github.com/atomicstack/nestedmenu/internal/host"
	"github.com/atomicstack/nestedmenu/internal/logging/events"
	"github.com/atomicstack/nestedmenu/internal/menu"
	"github.com/atomicstack/nestedmenu/internal/state"
)

// SetItems replaces the menu tree. The first path entry that no longer names
// an expandable item at its depth is closed together with everything below
// it, and handles of items that disappeared are forgotten.
func (c *Controller) SetItems(items []menu.Item) {
	c.items = menu.CloneItems(items)

	level := c.items
	for _, id := range c.store.Snapshot().CurrentPath {
		item, ok := lookupItem(level, id)
		if !ok || !item.HasSubMenu() {
			c.dispatch(state.ClosePath{ID: id})
			break
		}
		level = item.SubMenu
	}

	c.pruneHandles()
	events.Menu.Reload(len(c.items), c.store.Snapshot().CurrentPath)
}

func (c *Controller) pruneHandles() {
	ids := map[string]struct{}{}
	var walk func([]menu.Item)
	walk = func(items []menu.Item) {
		for _, item := range items {
			ids[item.ID] = struct{}{}
			walk(item.SubMenu)
		}
	}
	walk(c.items)

	for id := range c.itemHandles {
		if _, ok := ids[id]; !ok {
			delete(c.itemHandles, id)
		}
	}
	for key := range c.menus {
		if key.root {
			continue
		}
		if _, ok := ids[key.id]; !ok {
			delete(c.menus, key)
		}
	}
	if !c.hasItemHandle(c.activeAnchor) {
		c.activeAnchor = ""
		c.activeMenu = ""
	}
}

func (c *Controller) hasItemHandle(h host.Handle) bool {
	if h == "" {
		return false
	}
	for _, registered := range c.itemHandles {
		if registered == h {
			return true
		}
	}
	return false
}

func lookupItem(items []menu.Item, id string) (menu.Item, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return menu.Item{}, false
}
