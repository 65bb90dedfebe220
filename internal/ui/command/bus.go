package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/nestedmenu/internal/logging/events"
	"github.com/atomicstack/nestedmenu/internal/menu"
)

// Activated reports that a leaf item was chosen.
type Activated struct {
	Item menu.Item
	Path []string
}

// Bus turns item activations into Bubble Tea messages.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Activate wraps an activation into a command while emitting trace logs.
// path is the chain of submenu ids the item was reached through.
func (b *Bus) Activate(item menu.Item, path []string) tea.Cmd {
	events.Command.Activate(item.ID, item.DisplayLabel())
	dup := make([]string, len(path))
	copy(dup, path)
	return func() tea.Msg {
		msg := Activated{Item: item, Path: dup}
		events.Command.Result(item.ID, fmt.Sprintf("%T", msg))
		return msg
	}
}
