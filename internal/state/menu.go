package state

// Menu is an immutable snapshot of the menu tree state. CurrentPath lists the
// ids of the expanded submenus, root to leaf, and is only meaningful while
// IsOpen is true.
type Menu struct {
	IsOpen      bool
	CurrentPath []string
}

// Intent is a requested transition.
type Intent interface {
	Kind() string
}

// Toggle flips IsOpen and clears the path.
type Toggle struct{}

// OpenPath appends ID to the path.
type OpenPath struct {
	ID string
}

// ClosePath truncates the path at the first occurrence of ID.
type ClosePath struct {
	ID string
}

func (Toggle) Kind() string    { return "toggle" }
func (OpenPath) Kind() string  { return "open-path" }
func (ClosePath) Kind() string { return "close-path" }

// Reduce applies intent to prev and returns a new snapshot. It never mutates
// prev and the returned path never shares storage with it.
//
// Opening an id that is already on the path is rejected and closing an id that
// is not on the path leaves it unchanged. Unknown intents are ignored.
func Reduce(prev Menu, intent Intent) Menu {
	switch in := intent.(type) {
	case Toggle:
		return Menu{IsOpen: !prev.IsOpen, CurrentPath: []string{}}
	case OpenPath:
		if IndexOf(prev.CurrentPath, in.ID) >= 0 {
			return prev.Clone()
		}
		path := make([]string, 0, len(prev.CurrentPath)+1)
		path = append(path, prev.CurrentPath...)
		path = append(path, in.ID)
		return Menu{IsOpen: prev.IsOpen, CurrentPath: path}
	case ClosePath:
		idx := IndexOf(prev.CurrentPath, in.ID)
		if idx < 0 {
			return prev.Clone()
		}
		path := make([]string, idx)
		copy(path, prev.CurrentPath[:idx])
		return Menu{IsOpen: prev.IsOpen, CurrentPath: path}
	default:
		return prev.Clone()
	}
}

// Contains reports whether id is on the current path.
func (m Menu) Contains(id string) bool {
	return IndexOf(m.CurrentPath, id) >= 0
}

// Clone returns a copy whose path does not alias m.
func (m Menu) Clone() Menu {
	return Menu{IsOpen: m.IsOpen, CurrentPath: clonePath(m.CurrentPath)}
}

// IndexOf returns the first index of id in path, or -1.
func IndexOf(path []string, id string) int {
	for i, entry := range path {
		if entry == id {
			return i
		}
	}
	return -1
}

func clonePath(path []string) []string {
	dup := make([]string, len(path))
	copy(dup, path)
	return dup
}
