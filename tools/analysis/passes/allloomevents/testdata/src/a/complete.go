package a

import (
	"fmt"

	"go.uber.org/loom/loomevent"
)

type completeLogger struct{}

func (*completeLogger) LogEvent(ev loomevent.Event) {
	switch e := ev.(type) {
	case *loomevent.Registered, *loomevent.Resolving:
		fmt.Println(e)
	case *loomevent.Resolved:
		fmt.Println(e)
	default:
		if _, ok := ev.(*loomevent.Excluded); ok {
			fmt.Println("excluded")
		}
	}
}
