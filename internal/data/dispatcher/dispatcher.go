package dispatcher

import (
	"github.com/atomicstack/nestedmenu/internal/backend"
	"github.com/atomicstack/nestedmenu/internal/menu"
)

// Target receives reloaded menu trees.
type Target interface {
	SetItems([]menu.Item)
}

// Result describes what Handle did with an event.
type Result struct {
	Reloaded bool
	Items    int
	Err      error
}

type Dispatcher struct {
	target Target
}

func New(target Target) *Dispatcher {
	return &Dispatcher{target: target}
}

// Handle applies a successful reload to the target. Failed reloads leave the
// current tree in place.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	if evt.Err != nil {
		return Result{Err: evt.Err}
	}
	if d.target == nil {
		return Result{}
	}
	d.target.SetItems(evt.Items)
	return Result{Reloaded: true, Items: len(evt.Items)}
}
