package events

import "github.com/atomicstack/nestedmenu/internal/logging"

type PointerTracer struct{}

var Pointer = PointerTracer{}

func (PointerTracer) Click(x, y int, path []string, stopped bool) {
	logging.Trace("pointer.click", map[string]interface{}{
		"x":       x,
		"y":       y,
		"path":    path,
		"stopped": stopped,
	})
}

func (PointerTracer) Hover(x, y int, entered, left []string) {
	logging.Trace("pointer.hover", map[string]interface{}{
		"x":       x,
		"y":       y,
		"entered": entered,
		"left":    left,
	})
}
