package a

import (
	"log"

	"go.uber.org/loom/loomevent"
)

type assertLogger struct{}

func (*assertLogger) LogEvent(ev loomevent.Event) { // want `\*assertLogger doesn't handle \[\*Registered \*Resolving\]`
	if e, ok := ev.(*loomevent.Resolved); ok {
		log.Print(e)
	}
	if e, ok := ev.(*loomevent.Excluded); ok {
		log.Print(e)
	}
}
