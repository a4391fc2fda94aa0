package events

import "github.com/atomicstack/menutree/internal/logging"

type NavTracer struct{}

type PromptTracer struct{}

type CommandTracer struct{}

var (
	Nav     = NavTracer{}
	Prompt  = PromptTracer{}
	Command = CommandTracer{}
)

func (NavTracer) Display(path, title string, options int) {
	logging.Trace("nav.display", map[string]interface{}{
		"path":    path,
		"title":   title,
		"options": options,
	})
}

func (NavTracer) Select(from string, index int, target string) {
	logging.Trace("nav.select", map[string]interface{}{
		"from":   from,
		"index":  index,
		"target": target,
	})
}

func (NavTracer) Back(from, to string) {
	logging.Trace("nav.back", map[string]interface{}{"from": from, "to": to})
}

func (PromptTracer) Invalid(title, raw string, attempt int) {
	logging.Trace("prompt.invalid", map[string]interface{}{
		"prompt":  title,
		"input":   raw,
		"attempt": attempt,
	})
}

func (PromptTracer) Quit(title string) {
	logging.Trace("prompt.quit", map[string]interface{}{"prompt": title})
}

func (CommandTracer) Queue(name, target string) {
	logging.Trace("command.queue", map[string]interface{}{"command": name, "target": target})
}

func (CommandTracer) Skip(name string) {
	logging.Trace("command.skip", map[string]interface{}{"command": name})
}

func (CommandTracer) Result(name, target string) {
	logging.Trace("command.result", map[string]interface{}{"command": name, "target": target})
}
