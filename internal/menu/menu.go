package menu

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Item represents a menu entry. An item opens a nested panel when SubMenu is
// non-nil, even if the slice is empty.
type Item struct {
	ID      string `yaml:"id" json:"id"`
	Label   string `yaml:"label,omitempty" json:"label,omitempty"`
	SubMenu []Item `yaml:"subMenu,omitempty" json:"subMenu,omitempty"`
}

// HasSubMenu reports whether the item expands into a nested panel.
func (i Item) HasSubMenu() bool {
	return i.SubMenu != nil
}

// DisplayLabel returns the label, falling back to a prettified id.
func (i Item) DisplayLabel() string {
	if strings.TrimSpace(i.Label) != "" {
		return i.Label
	}
	return prettyLabel(i.ID)
}

// DefaultItems returns the built-in demo tree.
func DefaultItems() []Item {
	return []Item{
		{ID: "file", Label: "File", SubMenu: []Item{
			{ID: "file-new", Label: "New"},
			{ID: "file-open", Label: "Open"},
			{ID: "file-recent", Label: "Open Recent", SubMenu: []Item{
				{ID: "recent-notes", Label: "notes.md"},
				{ID: "recent-todo", Label: "todo.txt"},
			}},
			{ID: "file-save", Label: "Save"},
		}},
		{ID: "edit", Label: "Edit", SubMenu: []Item{
			{ID: "edit-undo", Label: "Undo"},
			{ID: "edit-redo", Label: "Redo"},
			{ID: "edit-find", Label: "Find", SubMenu: []Item{
				{ID: "find-text", Label: "Find Text"},
				{ID: "find-replace", Label: "Replace"},
			}},
		}},
		{ID: "view", Label: "View", SubMenu: []Item{
			{ID: "view-zoom-in", Label: "Zoom In"},
			{ID: "view-zoom-out", Label: "Zoom Out"},
		}},
		{ID: "help", Label: "Help"},
	}
}

// CloneItems produces a deep copy of the provided items.
func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	dup := make([]Item, len(items))
	for i, item := range items {
		dup[i] = Item{ID: item.ID, Label: item.Label, SubMenu: CloneItems(item.SubMenu)}
	}
	return dup
}

func prettyLabel(id string) string {
	if id == "" {
		return id
	}
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == ':'
	})
	return cases.Title(language.Und).String(strings.Join(parts, " "))
}
