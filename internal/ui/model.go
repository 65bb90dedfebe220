package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/nestedmenu/internal/backend"
	"github.com/atomicstack/nestedmenu/internal/data/dispatcher"
	"github.com/atomicstack/nestedmenu/internal/geometry"
	"github.com/atomicstack/nestedmenu/internal/host"
	"github.com/atomicstack/nestedmenu/internal/nested"
	"github.com/atomicstack/nestedmenu/internal/theme"
	"github.com/atomicstack/nestedmenu/internal/ui/command"
)

const (
	defaultWidth     = 80
	defaultHeight    = 24
	layoutRetryDelay = 16 * time.Millisecond
	maxLayoutRetries = 8
)

type msgHandler func(tea.Msg) tea.Cmd

// layoutMsg asks for another frame once freshly rendered elements have been
// measured.
type layoutMsg struct{}

type keyMap struct {
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Options configures the model. Watcher, when set, feeds reloaded menu
// trees into the controller.
type Options struct {
	Width   int
	Height  int
	Styles  *theme.Styles
	Watcher *backend.Watcher
}

// element is one rendered node of the previous frame.
type element struct {
	parent   host.Handle
	handlers nested.Handlers
}

// Model implements the Bubble Tea model for the nested menu demo.
type Model struct {
	ctrl    *nested.Controller
	surface Surface
	bus     *command.Bus
	keys    keyMap
	styles  *theme.Styles
	prefix  string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	frame   map[host.Handle]element
	hovered []host.Handle
	pending []tea.Cmd

	watcher    *backend.Watcher
	dispatcher *dispatcher.Dispatcher

	status        string
	reloadErr     string
	layoutRetries int
	layoutWaiting bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the controller to a rendering surface.
func NewModel(ctrl *nested.Controller, surface Surface, opts Options) *Model {
	styles := opts.Styles
	if styles == nil {
		styles = theme.Default()
	}
	m := &Model{
		ctrl:    ctrl,
		surface: surface,
		bus:     command.New(),
		keys:    defaultKeyMap(),
		styles:  styles,
		prefix:  surface.NewPrefix(),
		frame:   map[host.Handle]element{},

		watcher:    opts.Watcher,
		dispatcher: dispatcher.New(ctrl),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	if m.fixedWidth || m.fixedHeight {
		surface.SetViewport(m.viewport())
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.watcher != nil {
		return waitForReload(m.watcher)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(command.Activated{}): m.handleActivatedMsg,
		reflect.TypeOf(layoutMsg{}):         m.handleLayoutMsg,
		reflect.TypeOf(reloadMsg{}):         m.handleReloadMsg,
		reflect.TypeOf(reloadDoneMsg{}):     m.handleReloadDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if len(m.pending) > 0 {
		cmds = append(cmds, m.pending...)
		m.pending = nil
	}
	if cmd := m.scheduleLayout(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return tea.Quit
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.surface.SetViewport(m.viewport())
	return nil
}

func (m *Model) handleActivatedMsg(msg tea.Msg) tea.Cmd {
	activated, ok := msg.(command.Activated)
	if !ok {
		return nil
	}
	m.reloadErr = ""
	m.status = activationStatus(m.ctrl.Items(), activated)
	return nil
}

func (m *Model) handleLayoutMsg(tea.Msg) tea.Cmd {
	m.layoutWaiting = false
	return nil
}

// scheduleLayout requests a follow-up frame while an open panel's anchor
// has not been measured yet.
func (m *Model) scheduleLayout() tea.Cmd {
	if m.layoutWaiting {
		return nil
	}
	if !m.needsLayout() {
		m.layoutRetries = 0
		return nil
	}
	if m.layoutRetries >= maxLayoutRetries {
		return nil
	}
	m.layoutRetries++
	m.layoutWaiting = true
	return tea.Tick(layoutRetryDelay, func(time.Time) tea.Msg { return layoutMsg{} })
}

func (m *Model) viewport() geometry.Size {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return geometry.Size{Width: w, Height: h}
}

// Status returns the last activation or reload message.
func (m *Model) Status() string {
	return m.status
}

// Controller exposes the menu controller.
func (m *Model) Controller() *nested.Controller {
	return m.ctrl
}
