package state

// MenuStore holds the current snapshot and replaces it wholesale on every
// dispatched intent.
type MenuStore interface {
	Snapshot() Menu
	Dispatch(Intent) (prev, next Menu)
}

type menuStore struct {
	current Menu
}

// NewMenuStore creates a store seeded with initial.
func NewMenuStore(initial Menu) MenuStore {
	return &menuStore{current: initial.Clone()}
}

func (s *menuStore) Snapshot() Menu {
	return s.current.Clone()
}

func (s *menuStore) Dispatch(intent Intent) (Menu, Menu) {
	prev := s.current
	s.current = Reduce(prev, intent)
	return prev.Clone(), s.current.Clone()
}
