// Package host describes what the menu controller needs from the environment
// that renders it: element measurement, the viewport, the text direction and
// a global pointer event stream.
package host

import "github.com/atomicstack/nestedmenu/internal/geometry"

// Handle is an opaque reference to a rendered element. The zero value means
// "no element".
type Handle string

// Root is the host's root context. It terminates every pointer event path.
const Root Handle = "\x00root"

// PointerEvent is a pointer interaction seen by global listeners. Path lists
// the elements the event passed through, innermost first, ending with Root.
type PointerEvent struct {
	X, Y int
	Path []Handle
}

// PointerListener receives global pointer events.
type PointerListener func(*PointerEvent)

// Environment is implemented by the rendering host.
type Environment interface {
	// Rect measures a handle. ok is false when the element has not been
	// laid out yet.
	Rect(Handle) (r geometry.Rect, ok bool)
	Viewport() geometry.Size
	Direction() geometry.Direction
	// AddPointerListener subscribes fn to global pointer events and returns
	// the function that unsubscribes it.
	AddPointerListener(fn PointerListener) (remove func())
}

// EventKind names an interaction a trigger can respond to.
type EventKind string

const (
	PointerEnter EventKind = "pointerenter"
	PointerLeave EventKind = "pointerleave"
	Click        EventKind = "click"
)

// Interaction is delivered to element handlers. Handlers for bubbling kinds
// see it innermost first until one calls StopPropagation.
type Interaction struct {
	Kind   EventKind
	Target Handle
	X, Y   int

	stopped bool
}

// StopPropagation prevents ancestors from seeing the interaction.
func (e *Interaction) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether StopPropagation was called.
func (e *Interaction) Stopped() bool {
	return e.stopped
}

// Bubbles reports whether interactions of this kind propagate to ancestors.
// Enter and leave are delivered to each element individually.
func (k EventKind) Bubbles() bool {
	return k == Click
}
