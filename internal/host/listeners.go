package host

// Listeners is a pointer listener list with DOM dispatch semantics: the
// listeners present when Dispatch starts are the only ones considered, and a
// listener removed before its turn is skipped.
type Listeners struct {
	entries []*listenerEntry
}

type listenerEntry struct {
	fn      PointerListener
	removed bool
}

// Add subscribes fn and returns its remover. Calling the remover more than
// once is harmless.
func (l *Listeners) Add(fn PointerListener) func() {
	if fn == nil {
		return func() {}
	}
	entry := &listenerEntry{fn: fn}
	l.entries = append(l.entries, entry)
	return func() {
		if entry.removed {
			return
		}
		entry.removed = true
		for i, e := range l.entries {
			if e == entry {
				l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
				break
			}
		}
	}
}

// Len returns the number of active listeners.
func (l *Listeners) Len() int {
	return len(l.entries)
}

// Dispatch delivers ev to the current listeners.
func (l *Listeners) Dispatch(ev *PointerEvent) {
	snapshot := make([]*listenerEntry, len(l.entries))
	copy(snapshot, l.entries)
	for _, entry := range snapshot {
		if entry.removed {
			continue
		}
		entry.fn(ev)
	}
}
