package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/nestedmenu/internal/host"
	"github.com/atomicstack/nestedmenu/internal/logging/events"
	"github.com/atomicstack/nestedmenu/internal/menu"
	"github.com/atomicstack/nestedmenu/internal/nested"
)

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	path := m.pointerPath(ev.X, ev.Y)
	m.updateHover(ev.X, ev.Y, path)
	if ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft {
		m.click(ev.X, ev.Y, path)
	}
	return nil
}

// pointerPath returns the element under (x, y) followed by its logical
// ancestors, ending with host.Root. A submenu panel's ancestor is the item
// that opened it.
func (m *Model) pointerPath(x, y int) []host.Handle {
	var start host.Handle
	for _, h := range m.surface.HitTest(x, y) {
		if _, ok := m.frame[h]; ok {
			start = h
			break
		}
	}
	path := make([]host.Handle, 0, 6)
	seen := map[host.Handle]bool{}
	for h := start; h != "" && h != host.Root && !seen[h]; {
		seen[h] = true
		path = append(path, h)
		h = m.frame[h].parent
	}
	return append(path, host.Root)
}

// updateHover fires leave handlers for elements the pointer left, innermost
// first, then enter handlers for new elements, outermost first.
func (m *Model) updateHover(x, y int, path []host.Handle) {
	current := path[:len(path)-1]
	inNew := make(map[host.Handle]bool, len(current))
	for _, h := range current {
		inNew[h] = true
	}
	inOld := make(map[host.Handle]bool, len(m.hovered))
	for _, h := range m.hovered {
		inOld[h] = true
	}

	var left, entered []host.Handle
	for _, h := range m.hovered {
		if !inNew[h] {
			left = append(left, h)
		}
	}
	for i := len(current) - 1; i >= 0; i-- {
		if !inOld[current[i]] {
			entered = append(entered, current[i])
		}
	}
	m.hovered = append([]host.Handle(nil), current...)
	if len(left) == 0 && len(entered) == 0 {
		return
	}
	events.Pointer.Hover(x, y, handleStrings(entered), handleStrings(left))

	for _, h := range left {
		m.fire(h, host.PointerLeave, x, y)
	}
	for _, h := range entered {
		m.fire(h, host.PointerEnter, x, y)
	}
}

func (m *Model) fire(h host.Handle, kind host.EventKind, x, y int) {
	el, ok := m.frame[h]
	if !ok {
		return
	}
	if fn := el.handlers[kind]; fn != nil {
		fn(&host.Interaction{Kind: kind, Target: h, X: x, Y: y})
	}
}

// click bubbles a click from the innermost element outwards. Unless a
// handler stops it, the event then reaches the surface's global listeners.
func (m *Model) click(x, y int, path []host.Handle) {
	ev := &host.Interaction{Kind: host.Click, Target: path[0], X: x, Y: y}
	for _, h := range path {
		if h == host.Root {
			break
		}
		el, ok := m.frame[h]
		if !ok {
			continue
		}
		if fn := el.handlers[host.Click]; fn != nil {
			fn(ev)
		}
		if ev.Stopped() {
			break
		}
	}
	events.Pointer.Click(x, y, handleStrings(path), ev.Stopped())
	if ev.Stopped() {
		return
	}
	m.surface.Dispatch(&host.PointerEvent{X: x, Y: y, Path: path})
}

// activateTrigger closes the menu and reports item through the bus.
func (m *Model) activateTrigger(item menu.Item, trail []string) nested.Handlers {
	return nested.Handlers{
		host.Click: func(ev *host.Interaction) {
			ev.StopPropagation()
			m.pending = append(m.pending, m.bus.Activate(item, trail))
			if m.ctrl.IsOpen() {
				m.ctrl.ToggleMenu()
			}
		},
	}
}

func (m *Model) isHovered(h host.Handle) bool {
	for _, hv := range m.hovered {
		if hv == h {
			return true
		}
	}
	return false
}

func handleStrings(handles []host.Handle) []string {
	out := make([]string, len(handles))
	for i, h := range handles {
		out[i] = string(h)
	}
	return out
}
