package model

// EventKind classifies a driver progress event.
type EventKind string

// Driver progress events.
const (
	EventIterationStarted EventKind = "iteration"
	EventCompileRepaired  EventKind = "compile_repaired"
	EventFlakyFound       EventKind = "flaky"
	EventStabilized       EventKind = "stabilized"
	EventHalted           EventKind = "halted"
)

// Event is emitted by the driver as a class moves through the filter loop.
type Event struct {
	Class     string
	Kind      EventKind
	Iteration int
	Method    string
	Line      int
	Message   string
}

// Observer receives driver events. Implementations must be safe for use by
// several concurrently running classes.
type Observer interface {
	Notify(event Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// Notify calls f(event).
func (f ObserverFunc) Notify(event Event) { f(event) }
