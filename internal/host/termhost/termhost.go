// Package termhost implements host.Environment on top of bubblezone: every
// rendered element is a zone, and measurements come from the last scanned
// frame.
package termhost

import (
	"sort"
	"sync"

	zone "github.com/lrstanley/bubblezone"

	"github.com/atomicstack/nestedmenu/internal/geometry"
	"github.com/atomicstack/nestedmenu/internal/host"
)

// Host is a bubblezone-backed environment. It is safe to measure from a
// different goroutine than the one rendering.
type Host struct {
	zones *zone.Manager
	dir   geometry.Direction

	mu        sync.RWMutex
	viewport  geometry.Size
	known     map[host.Handle]struct{}
	listeners host.Listeners
}

// New creates a host that reports dir as its text direction.
func New(dir geometry.Direction) *Host {
	return &Host{
		zones: zone.New(),
		dir:   dir,
		known: map[host.Handle]struct{}{},
	}
}

// Close stops the zone manager's background worker.
func (h *Host) Close() {
	h.zones.Close()
}

// NewPrefix returns a unique handle prefix for one component tree.
func (h *Host) NewPrefix() string {
	return h.zones.NewPrefix()
}

// Mark wraps content in zone markers for handle id.
func (h *Host) Mark(id host.Handle, content string) string {
	if id == "" || id == host.Root {
		return content
	}
	h.mu.Lock()
	h.known[id] = struct{}{}
	h.mu.Unlock()
	return h.zones.Mark(string(id), content)
}

// Scan strips zone markers from a full frame and records zone positions.
func (h *Host) Scan(view string) string {
	return h.zones.Scan(view)
}

// Rect returns the handle's bounds from the last scanned frame.
func (h *Host) Rect(id host.Handle) (geometry.Rect, bool) {
	if id == "" || id == host.Root {
		return geometry.Rect{}, false
	}
	return rectFromZone(h.zones.Get(string(id)))
}

func rectFromZone(info *zone.ZoneInfo) (geometry.Rect, bool) {
	if info == nil || info.IsZero() {
		return geometry.Rect{}, false
	}
	return geometry.Rect{
		X:      info.StartX,
		Y:      info.StartY,
		Width:  info.EndX - info.StartX + 1,
		Height: info.EndY - info.StartY + 1,
	}, true
}

// HitTest returns every marked handle whose zone contains (x, y), smallest
// area first.
func (h *Host) HitTest(x, y int) []host.Handle {
	h.mu.RLock()
	ids := make([]host.Handle, 0, len(h.known))
	for id := range h.known {
		ids = append(ids, id)
	}
	h.mu.RUnlock()

	type hit struct {
		id   host.Handle
		area int
	}
	var hits []hit
	for _, id := range ids {
		r, ok := h.Rect(id)
		if !ok || !r.Contains(x, y) {
			continue
		}
		hits = append(hits, hit{id: id, area: r.Area()})
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].area != hits[j].area {
			return hits[i].area < hits[j].area
		}
		return hits[i].id < hits[j].id
	})
	out := make([]host.Handle, len(hits))
	for i, hv := range hits {
		out[i] = hv.id
	}
	return out
}

// SetViewport records the terminal size.
func (h *Host) SetViewport(size geometry.Size) {
	h.mu.Lock()
	h.viewport = size
	h.mu.Unlock()
}

func (h *Host) Viewport() geometry.Size {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.viewport
}

func (h *Host) Direction() geometry.Direction {
	return h.dir
}

func (h *Host) AddPointerListener(fn host.PointerListener) func() {
	h.mu.Lock()
	remove := h.listeners.Add(fn)
	h.mu.Unlock()
	return func() {
		h.mu.Lock()
		remove()
		h.mu.Unlock()
	}
}

// Dispatch delivers ev to global pointer listeners. Listeners run without
// the host lock held so they may add or remove listeners.
func (h *Host) Dispatch(ev *host.PointerEvent) {
	h.listeners.Dispatch(ev)
}
