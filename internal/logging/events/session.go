package events

import "github.com/atomicstack/menutree/internal/logging"

type SessionTracer struct{}

type SessionReason string

const (
	SessionReasonEOF      SessionReason = "eof"
	SessionReasonQuit     SessionReason = "quit"
	SessionReasonCanceled SessionReason = "canceled"
	SessionReasonError    SessionReason = "error"
)

var Session = SessionTracer{}

func (SessionTracer) Start(id, root string) {
	logging.Trace("session.start", map[string]interface{}{"session": id, "root": root})
}

func (SessionTracer) Reset(id, leaf, root string) {
	logging.Trace("session.reset", map[string]interface{}{"session": id, "leaf": leaf, "root": root})
}

func (SessionTracer) End(id string, reason SessionReason) {
	logging.Trace("session.end", map[string]interface{}{"session": id, "reason": string(reason)})
}
