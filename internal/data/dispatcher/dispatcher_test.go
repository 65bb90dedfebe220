package dispatcher

import (
	"errors"
	"testing"

	"github.com/atomicstack/nestedmenu/internal/backend"
	"github.com/atomicstack/nestedmenu/internal/menu"
)

type fakeTarget struct {
	calls int
	items []menu.Item
}

func (f *fakeTarget) SetItems(items []menu.Item) {
	f.calls++
	f.items = items
}

func TestHandleAppliesReload(t *testing.T) {
	target := &fakeTarget{}
	d := New(target)
	res := d.Handle(backend.Event{Items: []menu.Item{{ID: "a"}, {ID: "b"}}})
	if !res.Reloaded || res.Items != 2 || res.Err != nil {
		t.Fatalf("unexpected result %+v", res)
	}
	if target.calls != 1 || len(target.items) != 2 {
		t.Fatalf("expected target to receive items, got %+v", target)
	}
}

func TestHandleKeepsTreeOnError(t *testing.T) {
	target := &fakeTarget{}
	d := New(target)
	boom := errors.New("boom")
	res := d.Handle(backend.Event{Err: boom})
	if res.Reloaded || !errors.Is(res.Err, boom) {
		t.Fatalf("unexpected result %+v", res)
	}
	if target.calls != 0 {
		t.Fatalf("expected target untouched, got %d calls", target.calls)
	}
}

func TestHandleWithoutTarget(t *testing.T) {
	res := New(nil).Handle(backend.Event{Items: []menu.Item{{ID: "a"}}})
	if res.Reloaded {
		t.Fatalf("expected no reload without a target")
	}
}
