package events

import "github.com/atomicstack/nestedmenu/internal/logging"

type MenuTracer struct{}

var Menu = MenuTracer{}

func (MenuTracer) Toggle(open bool) {
	logging.Trace("menu.toggle", map[string]interface{}{"open": open})
}

func (MenuTracer) Open(id string, path []string) {
	logging.Trace("menu.open", map[string]interface{}{"item": id, "path": path})
}

func (MenuTracer) Close(id string, path []string) {
	logging.Trace("menu.close", map[string]interface{}{"item": id, "path": path})
}

func (MenuTracer) Ignored(id, reason string) {
	logging.Trace("menu.ignored", map[string]interface{}{"item": id, "reason": reason})
}

func (MenuTracer) Dismiss(path []string) {
	logging.Trace("menu.dismiss", map[string]interface{}{"path": path})
}

func (MenuTracer) Listener(attached bool) {
	logging.Trace("menu.listener", map[string]interface{}{"attached": attached})
}

func (MenuTracer) Reload(items int, path []string) {
	logging.Trace("menu.reload", map[string]interface{}{"items": items, "path": path})
}
