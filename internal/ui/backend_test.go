package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/nestedmenu/internal/backend"
	"github.com/atomicstack/nestedmenu/internal/menu"
	"github.com/atomicstack/nestedmenu/internal/nested"
)

func TestReloadReplacesItemsAndKeepsPath(t *testing.T) {
	h, _, ctrl := newTestHarness(t, nested.Config{IsOpen: true, DefaultOpenPath: []string{"B"}})

	items := scenarioItems()
	items[2] = menu.Item{ID: "C", Label: "Charlie"}
	h.Send(reloadMsg{event: backend.Event{Items: items}})

	if got := ctrl.CurrentPath(); len(got) != 1 || got[0] != "B" {
		t.Fatalf("expected path [B] to survive reload, got %v", got)
	}
	if got := h.Model().Status(); got != "Reloaded menu (3 items)" {
		t.Fatalf("unexpected status %q", got)
	}
	if !strings.Contains(h.View(), "Charlie") {
		t.Fatalf("expected reloaded label in view, got:\n%s", h.View())
	}
}

func TestReloadFailureKeepsTree(t *testing.T) {
	h, _, ctrl := newTestHarness(t, nested.Config{})
	h.Send(reloadMsg{event: backend.Event{Err: errors.New("bad yaml")}})

	if got := len(ctrl.Items()); got != 3 {
		t.Fatalf("expected the previous tree, got %d items", got)
	}
	if got := h.Model().Status(); got != "Reload failed: bad yaml" {
		t.Fatalf("unexpected status %q", got)
	}
	if !strings.Contains(h.View(), "Reload failed: bad yaml") {
		t.Fatalf("expected failure in footer, got:\n%s", h.View())
	}
}

func TestReloadDoneDropsWatcher(t *testing.T) {
	h, _, _ := newTestHarness(t, nested.Config{})
	h.Send(reloadDoneMsg{})
	if h.Model().watcher != nil {
		t.Fatalf("expected watcher cleared")
	}
	if cmd := h.Model().Init(); cmd != nil {
		t.Fatalf("expected no init command without a watcher")
	}
}
