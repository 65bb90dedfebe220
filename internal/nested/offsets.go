package nested

import (
	"github.com/atomicstack/nestedmenu/internal/geometry"
	"github.com/atomicstack/nestedmenu/internal/host"
	"github.com/atomicstack/nestedmenu/internal/menu"
)

// MenuOffsetStyles positions a panel. For a submenu (item non-nil) the panel
// is flush with the item's top and pushed out by the item's width on the
// leading side. For the root panel (item nil) it is anchored to the toggle
// button according to the configured placement. Unmounted elements measure
// as the zero rectangle.
func (c *Controller) MenuOffsetStyles(item *menu.Item) geometry.Offset {
	dir := c.direction()
	if item != nil {
		return geometry.SubMenuOffset(c.measure(c.itemHandles[item.ID]), dir)
	}
	var viewport geometry.Size
	if c.env != nil {
		viewport = c.env.Viewport()
	}
	return geometry.RootOffset(c.measure(c.toggleButton), viewport, c.placement, dir)
}

func (c *Controller) direction() geometry.Direction {
	if c.env == nil {
		return geometry.LTR
	}
	return c.env.Direction()
}

func (c *Controller) measure(h host.Handle) geometry.Rect {
	if h == "" || c.env == nil {
		return geometry.Rect{}
	}
	r, ok := c.env.Rect(h)
	if !ok {
		return geometry.Rect{}
	}
	return r
}
