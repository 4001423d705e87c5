package a

import "go.uber.org/loom/loomevent"

// Returns an error, so it isn't a loomevent.Logger.
type notALogger struct{}

func (notALogger) LogEvent(ev loomevent.Event) error {
	_, ok := ev.(*loomevent.Registered)
	if !ok {
		return nil
	}
	return nil
}
