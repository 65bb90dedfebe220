package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for integration tests. Every
// Send is followed by a render so element handles are registered the way a
// running program would register them.
type Harness struct {
	model *Model
	view  string
}

// NewHarness creates a harness for the provided model and renders the first
// frame.
func NewHarness(model *Model) *Harness {
	h := &Harness{model: model}
	h.render()
	return h
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.render()
	h.processCmd(cmd)
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, c := range msg {
			h.processCmd(c)
		}
	case tea.QuitMsg:
		return
	default:
		h.Send(msg)
	}
}

func (h *Harness) render() {
	if h.model != nil {
		h.view = h.model.View()
	}
}

// View returns the most recently rendered view.
func (h *Harness) View() string {
	return h.view
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
