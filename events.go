package vapesort

import "sync"

type EventHandler func(data interface{})

// EventEmitter fans game events out to subscribers. The zero value is ready
// to use. Handlers run synchronously on the emitting goroutine and may
// subscribe further handlers; those see the next emission, not this one.
type EventEmitter struct {
	mu       sync.Mutex
	handlers map[EventType][]EventHandler
}

func (e *EventEmitter) On(event EventType, handler EventHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.handlers == nil {
		e.handlers = make(map[EventType][]EventHandler)
	}
	e.handlers[event] = append(e.handlers[event], handler)
}

// Once registers a handler that runs for the first emission only.
func (e *EventEmitter) Once(event EventType, handler EventHandler) {
	var once sync.Once
	e.On(event, func(data interface{}) {
		once.Do(func() { handler(data) })
	})
}

func (e *EventEmitter) Emit(event EventType, data interface{}) {
	e.mu.Lock()
	snapshot := append([]EventHandler(nil), e.handlers[event]...)
	e.mu.Unlock()

	for _, handler := range snapshot {
		handler(data)
	}
}

// Off drops every handler for event.
func (e *EventEmitter) Off(event EventType) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.handlers, event)
}
