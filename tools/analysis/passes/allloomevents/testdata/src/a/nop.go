package a

import "go.uber.org/loom/loomevent"

// Handles nothing, so it's not reported.
type nopLogger struct{}

func (nopLogger) LogEvent(loomevent.Event) {}
