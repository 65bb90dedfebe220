package events

import "github.com/atomicstack/nestedmenu/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Activate(id, label string) {
	logging.Trace("command.activate", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "msg": msgType})
}
