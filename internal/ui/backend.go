package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/nestedmenu/internal/backend"
)

func waitForReload(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return reloadDoneMsg{}
		}
		return reloadMsg{event: evt}
	}
}

type reloadMsg struct {
	event backend.Event
}

type reloadDoneMsg struct{}

func (m *Model) handleReloadMsg(msg tea.Msg) tea.Cmd {
	reload, ok := msg.(reloadMsg)
	if !ok {
		return nil
	}
	res := m.dispatcher.Handle(reload.event)
	switch {
	case res.Err != nil:
		m.reloadErr = res.Err.Error()
		m.status = "Reload failed: " + m.reloadErr
	case res.Reloaded:
		m.reloadErr = ""
		m.status = fmt.Sprintf("Reloaded menu (%d items)", res.Items)
	}
	if m.watcher != nil {
		return waitForReload(m.watcher)
	}
	return nil
}

func (m *Model) handleReloadDoneMsg(tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}
