package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/nestedmenu/internal/geometry"
	"github.com/atomicstack/nestedmenu/internal/host/hosttest"
	"github.com/atomicstack/nestedmenu/internal/menu"
	"github.com/atomicstack/nestedmenu/internal/nested"
	"github.com/atomicstack/nestedmenu/internal/theme"
)

func scenarioItems() []menu.Item {
	return []menu.Item{
		{ID: "A", Label: "A"},
		{ID: "B", Label: "B", SubMenu: []menu.Item{{ID: "B1", Label: "B1"}, {ID: "B2", Label: "B2"}}},
		{ID: "C", Label: "C"},
	}
}

// placeScenario mirrors where View draws the scenario tree with the root
// panel below a top-left toggle button.
func placeScenario(env *hosttest.Env) {
	env.Place("toggle", geometry.Rect{X: 0, Y: 0, Width: 8, Height: 1})
	env.Place("menu/", geometry.Rect{X: 0, Y: 1, Width: 14, Height: 5})
	env.Place("item:A", geometry.Rect{X: 0, Y: 2, Width: 14, Height: 1})
	env.Place("item:B", geometry.Rect{X: 0, Y: 3, Width: 14, Height: 1})
	env.Place("item:C", geometry.Rect{X: 0, Y: 4, Width: 14, Height: 1})
	env.Place("menu:B", geometry.Rect{X: 14, Y: 3, Width: 14, Height: 4})
	env.Place("item:B1", geometry.Rect{X: 14, Y: 4, Width: 14, Height: 1})
	env.Place("item:B2", geometry.Rect{X: 14, Y: 5, Width: 14, Height: 1})
}

func newTestHarness(t *testing.T, cfg nested.Config) (*Harness, *hosttest.Env, *nested.Controller) {
	t.Helper()
	env := hosttest.New(80, 24)
	placeScenario(env)
	if cfg.Items == nil {
		cfg.Items = scenarioItems()
	}
	ctrl := nested.New(env, cfg)
	t.Cleanup(ctrl.Close)
	model := NewModel(ctrl, env, Options{Styles: theme.Plain()})
	return NewHarness(model), env, ctrl
}

func move(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestToggleButtonOpensMenu(t *testing.T) {
	h, env, ctrl := newTestHarness(t, nested.Config{})

	h.Send(press(1, 0))
	if !ctrl.IsOpen() {
		t.Fatalf("expected menu to open after clicking the toggle button")
	}
	if env.Listeners() != 1 {
		t.Fatalf("expected outside listener attached, got %d", env.Listeners())
	}
	view := h.View()
	for _, want := range []string{"Menu", " A ", " B ", "›"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
	if env.Marked("item:B") == 0 {
		t.Fatalf("expected item:B to be marked")
	}

	h.Send(press(1, 0))
	if ctrl.IsOpen() {
		t.Fatalf("expected second click to close the menu")
	}
	if env.Listeners() != 0 {
		t.Fatalf("expected listener detached, got %d", env.Listeners())
	}
}

func TestHoverOpensAndActivationCloses(t *testing.T) {
	h, env, ctrl := newTestHarness(t, nested.Config{})
	h.Send(press(1, 0))

	h.Send(move(2, 3))
	if got := ctrl.CurrentPath(); len(got) != 1 || got[0] != "B" {
		t.Fatalf("expected hover to open B, got %v", got)
	}
	if !strings.Contains(h.View(), "B1") {
		t.Fatalf("expected submenu rendered, got:\n%s", h.View())
	}

	h.Send(move(16, 4))
	if got := ctrl.CurrentPath(); len(got) != 1 {
		t.Fatalf("expected path to stay [B] inside the submenu, got %v", got)
	}

	h.Send(press(16, 4))
	if ctrl.IsOpen() {
		t.Fatalf("expected leaf activation to close the menu")
	}
	if env.Listeners() != 0 {
		t.Fatalf("expected listener detached after activation, got %d", env.Listeners())
	}
	if got := h.Model().Status(); got != "Activated B › B1" {
		t.Fatalf("expected activation status, got %q", got)
	}
	if !strings.Contains(h.View(), "Activated B › B1") {
		t.Fatalf("expected status in footer, got:\n%s", h.View())
	}
}

func TestLeavingSubMenuClosesIt(t *testing.T) {
	h, _, ctrl := newTestHarness(t, nested.Config{})
	h.Send(press(1, 0))
	h.Send(move(2, 3))
	h.Send(move(16, 4))

	h.Send(move(2, 2))
	if got := ctrl.CurrentPath(); len(got) != 0 {
		t.Fatalf("expected leaving the submenu to close it, got %v", got)
	}
	if !ctrl.IsOpen() {
		t.Fatalf("expected root menu to stay open")
	}
}

func TestClickOnSubMenuItemToggles(t *testing.T) {
	h, _, ctrl := newTestHarness(t, nested.Config{})
	h.Send(press(1, 0))
	h.Send(move(2, 3))

	h.Send(press(2, 3))
	if ctrl.IsSubMenuOpen(scenarioItems()[1]) {
		t.Fatalf("expected click to close the open submenu")
	}
	h.Send(press(2, 3))
	if !ctrl.IsSubMenuOpen(scenarioItems()[1]) {
		t.Fatalf("expected second click to reopen the submenu")
	}
	if !ctrl.IsOpen() {
		t.Fatalf("expected menu to stay open while toggling submenus")
	}
}

func TestOutsideClickDismisses(t *testing.T) {
	h, env, ctrl := newTestHarness(t, nested.Config{})
	h.Send(press(1, 0))
	h.Send(move(2, 3))

	h.Send(press(60, 20))
	if ctrl.IsOpen() {
		t.Fatalf("expected outside click to close the menu")
	}
	if len(ctrl.CurrentPath()) != 0 {
		t.Fatalf("expected path reset, got %v", ctrl.CurrentPath())
	}
	if env.Listeners() != 0 {
		t.Fatalf("expected listener detached, got %d", env.Listeners())
	}
}

func TestClickInsidePanelKeepsOpen(t *testing.T) {
	h, _, ctrl := newTestHarness(t, nested.Config{})
	h.Send(press(1, 0))

	h.Send(press(0, 1))
	if !ctrl.IsOpen() {
		t.Fatalf("expected click on the panel border to keep the menu open")
	}
}

func TestRightToLeftChevron(t *testing.T) {
	env := hosttest.New(80, 24)
	env.Dir = geometry.RTL
	placeScenario(env)
	ctrl := nested.New(env, nested.Config{Items: scenarioItems(), IsOpen: true})
	t.Cleanup(ctrl.Close)
	h := NewHarness(NewModel(ctrl, env, Options{Styles: theme.Plain()}))

	view := h.View()
	if !strings.Contains(view, "‹") || strings.Contains(view, "›") {
		t.Fatalf("expected rtl chevron, got:\n%s", view)
	}
}

func TestQuitKey(t *testing.T) {
	h, _, _ := newTestHarness(t, nested.Config{})
	_, cmd := h.Model().Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	_, cmd = h.Model().Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd != nil {
		t.Fatalf("expected other keys to be ignored")
	}
}

func TestWindowSizeUpdatesViewport(t *testing.T) {
	h, env, _ := newTestHarness(t, nested.Config{})
	h.Send(tea.WindowSizeMsg{Width: 100, Height: 30})
	if env.Viewport() != (geometry.Size{Width: 100, Height: 30}) {
		t.Fatalf("expected viewport 100x30, got %+v", env.Viewport())
	}
	if lines := strings.Count(h.View(), "\n") + 1; lines != 30 {
		t.Fatalf("expected 30 lines, got %d", lines)
	}
}

func TestFixedSizeWins(t *testing.T) {
	env := hosttest.New(80, 24)
	ctrl := nested.New(env, nested.Config{})
	m := NewModel(ctrl, env, Options{Width: 40, Height: 10, Styles: theme.Plain()})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if env.Viewport() != (geometry.Size{Width: 40, Height: 10}) {
		t.Fatalf("expected fixed viewport, got %+v", env.Viewport())
	}
}

func TestLayoutRetryWhileUnmeasured(t *testing.T) {
	env := hosttest.New(80, 24)
	ctrl := nested.New(env, nested.Config{Items: scenarioItems(), IsOpen: true})
	t.Cleanup(ctrl.Close)
	m := NewModel(ctrl, env, Options{Styles: theme.Plain()})

	if view := m.View(); strings.Contains(view, " A ") {
		t.Fatalf("expected root panel to wait for the button to be measured, got:\n%s", view)
	}
	_, cmd := m.Update(layoutMsg{})
	if cmd == nil {
		t.Fatalf("expected a layout retry to be scheduled")
	}

	placeScenario(env)
	m.layoutWaiting = false
	if _, cmd := m.Update(layoutMsg{}); cmd != nil {
		t.Fatalf("expected no retry once measured")
	}
	if view := m.View(); !strings.Contains(view, " A ") {
		t.Fatalf("expected root panel once measured, got:\n%s", view)
	}
}
