package loomevent

// A trimmed down loomevent package with a fixed set of events.

type (
	Logger interface{ LogEvent(Event) }
	Event  interface{ event() }

	Registered struct{}
	Resolving  struct{}
	Resolved   struct{}
	Excluded   struct{}
)

func (*Registered) event() {}
func (*Resolving) event()  {}
func (*Resolved) event()   {}
func (*Excluded) event()   {}
