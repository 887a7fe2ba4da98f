// Package eventlog writes game events as structured log entries. Both
// presentation shells share it so a session reads the same in either log.
package eventlog

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// Write logs each event. Per-frame combat events go to debug so the info
// level stays readable over a long session.
func Write(logger *log.Logger, events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventEnemyDestroyed, core.EventPlayerHit:
			logger.Debug(ev.Kind.String(), fields(ev)...)
		default:
			logger.Info(ev.Kind.String(), fields(ev)...)
		}
	}
}

// fields returns the key/value pairs for ev. The level number goes under
// "wave" since "level" is the logger's own severity key. Kinds whose value
// is the level itself add nothing further.
func fields(ev core.Event) []any {
	kv := []any{"wave", ev.Level}
	if name := ev.Kind.ValueName(); name != "" {
		kv = append(kv, name, ev.Value)
	}
	return kv
}
