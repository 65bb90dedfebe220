// Package hosttest provides an in-memory host.Environment for tests.
package hosttest

import (
	"sort"

	"github.com/atomicstack/nestedmenu/internal/geometry"
	"github.com/atomicstack/nestedmenu/internal/host"
)

// Env is a fake environment with fixed rectangles. It also satisfies the
// ui package's surface contract so rendering can be tested without a
// terminal.
type Env struct {
	Rects map[host.Handle]geometry.Rect
	Size  geometry.Size
	Dir   geometry.Direction

	marked    map[host.Handle]int
	listeners host.Listeners
}

// New returns an Env with the given viewport in ltr.
func New(width, height int) *Env {
	return &Env{
		Rects:  map[host.Handle]geometry.Rect{},
		Size:   geometry.Size{Width: width, Height: height},
		Dir:    geometry.LTR,
		marked: map[host.Handle]int{},
	}
}

// Place sets the rectangle reported for h.
func (e *Env) Place(h host.Handle, r geometry.Rect) {
	if e.Rects == nil {
		e.Rects = map[host.Handle]geometry.Rect{}
	}
	e.Rects[h] = r
}

func (e *Env) Rect(h host.Handle) (geometry.Rect, bool) {
	r, ok := e.Rects[h]
	return r, ok
}

func (e *Env) Viewport() geometry.Size { return e.Size }

func (e *Env) Direction() geometry.Direction { return e.Dir }

func (e *Env) SetViewport(size geometry.Size) { e.Size = size }

func (e *Env) AddPointerListener(fn host.PointerListener) func() {
	return e.listeners.Add(fn)
}

// Listeners reports how many global pointer listeners are attached.
func (e *Env) Listeners() int { return e.listeners.Len() }

// Dispatch delivers ev to the global listeners.
func (e *Env) Dispatch(ev *host.PointerEvent) { e.listeners.Dispatch(ev) }

// Click dispatches a global pointer event whose path is the given handles
// followed by host.Root.
func (e *Env) Click(path ...host.Handle) {
	full := append(append([]host.Handle{}, path...), host.Root)
	e.Dispatch(&host.PointerEvent{Path: full})
}

// Mark records that h was rendered and returns content unchanged.
func (e *Env) Mark(h host.Handle, content string) string {
	if e.marked == nil {
		e.marked = map[host.Handle]int{}
	}
	e.marked[h]++
	return content
}

// Marked reports how many times h has been rendered.
func (e *Env) Marked(h host.Handle) int { return e.marked[h] }

func (e *Env) Scan(view string) string { return view }

// HitTest returns handles whose rectangle contains the point, smallest
// area first.
func (e *Env) HitTest(x, y int) []host.Handle {
	var hits []host.Handle
	for h, r := range e.Rects {
		if r.Contains(x, y) {
			hits = append(hits, h)
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		ai, aj := e.Rects[hits[i]].Area(), e.Rects[hits[j]].Area()
		if ai != aj {
			return ai < aj
		}
		return hits[i] < hits[j]
	})
	return hits
}

// NewPrefix returns an empty prefix so handles stay readable in tests.
func (e *Env) NewPrefix() string { return "" }
