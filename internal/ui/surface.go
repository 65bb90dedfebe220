package ui

import (
	"github.com/atomicstack/nestedmenu/internal/geometry"
	"github.com/atomicstack/nestedmenu/internal/host"
)

// Surface is the rendering host the model draws onto. termhost.Host is the
// terminal implementation; hosttest.Env stands in for it in tests.
type Surface interface {
	host.Environment
	NewPrefix() string
	Mark(h host.Handle, content string) string
	Scan(view string) string
	HitTest(x, y int) []host.Handle
	SetViewport(geometry.Size)
	Dispatch(ev *host.PointerEvent)
}
