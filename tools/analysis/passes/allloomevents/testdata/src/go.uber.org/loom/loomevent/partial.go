package loomevent

type partialLogger struct{}

func (partialLogger) LogEvent(ev Event) { // want `partialLogger doesn't handle \[\*Excluded\]`
	switch ev.(type) {
	case *Registered:
	case *Resolving, *Resolved:
	}
}
