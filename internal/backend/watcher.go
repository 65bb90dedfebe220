// Package backend watches the menu definition file and publishes reloaded
// trees.
package backend

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/atomicstack/nestedmenu/internal/logging"
	"github.com/atomicstack/nestedmenu/internal/menu"
)

// DefaultInterval is the polling period used when none is given.
const DefaultInterval = 1500 * time.Millisecond

const reloadSpacing = 250 * time.Millisecond

// Event conveys a reloaded menu tree or the error that prevented it.
type Event struct {
	Path  string
	Items []menu.Item
	Err   error
}

type stamp struct {
	size    int64
	modTime time.Time
	errText string
}

// Watcher polls a menu file and publishes an event each time it changes.
type Watcher struct {
	path     string
	interval time.Duration
	throttle *throttle
	last     stamp

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts polling path every interval. The current contents are
// taken as already loaded, so only later changes produce events.
func NewWatcher(path string, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		throttle: newThrottle(reloadSpacing),
		last:     statFile(path),
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}

	w.wg.Add(1)
	go w.poll()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns the channel of reload events. It is closed after Stop once
// the poller has exited.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			current := statFile(w.path)
			if current.equal(w.last) {
				continue
			}
			if !w.throttle.wait(w.ctx) {
				return
			}
			w.last = current
			evt := w.load(current)
			select {
			case <-w.ctx.Done():
				return
			case w.events <- evt:
			}
		}
	}
}

func (w *Watcher) load(current stamp) Event {
	evt := Event{Path: w.path}
	if current.errText != "" {
		evt.Err = fmt.Errorf("stat menu file: %s", current.errText)
	} else {
		evt.Items, evt.Err = menu.LoadFile(w.path)
	}
	if evt.Err != nil {
		logging.Error(evt.Err)
	} else {
		logging.Trace("backend.reload", map[string]interface{}{"path": w.path, "items": len(evt.Items)})
	}
	return evt
}

func (s stamp) equal(other stamp) bool {
	return s.size == other.size && s.modTime.Equal(other.modTime) && s.errText == other.errText
}

func statFile(path string) stamp {
	info, err := os.Stat(path)
	if err != nil {
		return stamp{errText: err.Error()}
	}
	return stamp{size: info.Size(), modTime: info.ModTime()}
}
