package a

import "go.uber.org/loom/loomevent"

// Loggers in test files aren't checked.
type spyLogger struct{ seen []loomevent.Event }

func (s *spyLogger) LogEvent(ev loomevent.Event) {
	if _, ok := ev.(*loomevent.Registered); ok {
		s.seen = append(s.seen, ev)
	}
}
