package nested

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/nestedmenu/internal/host"
	"github.com/atomicstack/nestedmenu/internal/host/hosttest"
)

func openWithHandles(t *testing.T, env *hosttest.Env, rec *recorder) *Controller {
	t.Helper()
	cfg := Config{Items: scenarioItems()}
	if rec != nil {
		cfg.Recorder = rec
	}
	c := New(env, cfg)
	c.ToggleButtonProps().Ref("button")
	c.MenuProps(nil).Ref("panel:root")
	c.ToggleMenu()
	require.True(t, c.IsOpen())
	return c
}

func TestOutsideClickCloses(t *testing.T) {
	env := hosttest.New(80, 24)
	rec := &recorder{}
	c := openWithHandles(t, env, rec)
	c.OpenPath(itemB)

	env.Click("elsewhere")
	assert.False(t, c.IsOpen())
	assert.Empty(t, c.CurrentPath())
	assert.Equal(t, 1, rec.dismissals)
	assert.Zero(t, env.Listeners())
}

func TestInsideClickKeepsOpen(t *testing.T) {
	env := hosttest.New(80, 24)
	c := openWithHandles(t, env, nil)

	env.Click("label", "panel:root")
	assert.True(t, c.IsOpen())

	c.ItemProps(itemA).Ref("row:a")
	env.Click("row:a")
	assert.True(t, c.IsOpen())

	env.Click("button")
	assert.True(t, c.IsOpen())
	assert.Equal(t, 1, env.Listeners())
}

func TestRootSentinelIsNeverInside(t *testing.T) {
	env := hosttest.New(80, 24)
	c := openWithHandles(t, env, nil)
	assert.False(t, c.Inside([]host.Handle{host.Root}))
	assert.False(t, c.Inside([]host.Handle{"", host.Root}))
	assert.False(t, c.Inside(nil))
}

func TestListenerTracksOpenState(t *testing.T) {
	env := hosttest.New(80, 24)
	rec := &recorder{}
	c := New(env, Config{Items: scenarioItems(), Recorder: rec})
	assert.Zero(t, env.Listeners())
	assert.False(t, c.ListenerAttached())

	c.ToggleMenu()
	assert.Equal(t, 1, env.Listeners())
	c.ToggleMenu()
	assert.Zero(t, env.Listeners())
	c.ToggleMenu()
	c.ToggleMenu()
	assert.Zero(t, env.Listeners())
	assert.Equal(t, []bool{true, false, true, false}, rec.listener)
}

func TestStartOpenAttachesListener(t *testing.T) {
	env := hosttest.New(80, 24)
	c := New(env, Config{IsOpen: true})
	assert.Equal(t, 1, env.Listeners())

	env.Click()
	assert.False(t, c.IsOpen())
	assert.Zero(t, env.Listeners())
}

func TestCloseDetachesListener(t *testing.T) {
	env := hosttest.New(80, 24)
	c := New(env, Config{IsOpen: true})
	c.Close()
	c.Close()
	assert.Zero(t, env.Listeners())
	assert.True(t, c.IsOpen())
}

func TestDismissalFiresOnce(t *testing.T) {
	env := hosttest.New(80, 24)
	toggles := 0
	c := New(env, Config{IsOpen: true})
	env.AddPointerListener(func(*host.PointerEvent) {
		if !c.IsOpen() {
			toggles++
		}
	})

	env.Click("outside")
	env.Click("outside")
	assert.False(t, c.IsOpen())
	assert.Equal(t, 2, toggles)
}

func TestReopenDuringDispatchWaitsForNextEvent(t *testing.T) {
	env := hosttest.New(80, 24)
	c := New(env, Config{})
	env.AddPointerListener(func(*host.PointerEvent) {
		if !c.IsOpen() {
			c.ToggleMenu()
		}
	})

	env.Click("outside")
	assert.True(t, c.IsOpen(), "listener added during dispatch must not see the same event")

	env.Click("outside")
	assert.False(t, c.IsOpen())
}
