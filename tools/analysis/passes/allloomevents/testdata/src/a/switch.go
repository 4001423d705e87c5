package a

import (
	"fmt"
	"io"

	"go.uber.org/loom/loomevent"
)

type switchLogger struct {
	W io.Writer
}

func (l switchLogger) LogEvent(ev loomevent.Event) { // want `switchLogger doesn't handle \[\*Excluded \*Resolved\]`
	switch ev.(type) {
	case *loomevent.Registered:
		fmt.Fprintln(l.W, "registered")
	case *loomevent.Resolving:
		fmt.Fprintln(l.W, "resolving")
	}
}
