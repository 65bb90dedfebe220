package termhost

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/nestedmenu/internal/geometry"
	"github.com/atomicstack/nestedmenu/internal/host"
)

func TestMarkSkipsRootAndEmptyHandles(t *testing.T) {
	h := New(geometry.LTR)
	t.Cleanup(h.Close)

	assert.Equal(t, "plain", h.Mark(host.Root, "plain"))
	assert.Equal(t, "plain", h.Mark("", "plain"))
	assert.Empty(t, h.known)

	marked := h.Mark("item:file", "File")
	assert.True(t, strings.Contains(marked, "File"))
	assert.Contains(t, h.known, host.Handle("item:file"))
}

func TestRectOfUnscannedHandle(t *testing.T) {
	h := New(geometry.RTL)
	t.Cleanup(h.Close)

	_, ok := h.Rect("missing")
	assert.False(t, ok)
	_, ok = h.Rect(host.Root)
	assert.False(t, ok)
	assert.Empty(t, h.HitTest(0, 0))
	assert.Equal(t, geometry.RTL, h.Direction())

	r, ok := rectFromZone(nil)
	assert.False(t, ok)
	assert.True(t, r.IsZero())
}

func TestViewport(t *testing.T) {
	h := New(geometry.LTR)
	t.Cleanup(h.Close)

	assert.Equal(t, geometry.Size{}, h.Viewport())
	h.SetViewport(geometry.Size{Width: 80, Height: 24})
	assert.Equal(t, geometry.Size{Width: 80, Height: 24}, h.Viewport())
}

func TestListenerRemovedDuringDispatch(t *testing.T) {
	h := New(geometry.LTR)
	t.Cleanup(h.Close)

	var calls []string
	var removeOther func()
	removeSelf := func() {}
	removeSelf = h.AddPointerListener(func(*host.PointerEvent) {
		calls = append(calls, "self")
		removeSelf()
		removeOther()
	})
	removeOther = h.AddPointerListener(func(*host.PointerEvent) {
		calls = append(calls, "other")
	})

	h.Dispatch(&host.PointerEvent{Path: []host.Handle{host.Root}})
	require.Equal(t, []string{"self"}, calls)

	h.Dispatch(&host.PointerEvent{Path: []host.Handle{host.Root}})
	assert.Equal(t, []string{"self"}, calls)
	assert.Zero(t, h.listeners.Len())
}
