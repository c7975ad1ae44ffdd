package app

import "neon-siege/internal/event"

// eventLog копит события между вызовами DrainEvents.
// При переполнении отбрасываются самые старые.
type eventLog struct {
	events []event.Event
	limit  int
}

func newEventLog(limit int) *eventLog {
	return &eventLog{limit: limit}
}

func (l *eventLog) OnEvent(e event.Event) {
	if l.limit > 0 && len(l.events) >= l.limit {
		n := copy(l.events, l.events[1:])
		l.events = l.events[:n]
	}
	l.events = append(l.events, e)
}

func (l *eventLog) drain() []event.Event {
	out := l.events
	l.events = nil
	return out
}
