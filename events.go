package gobble

import (
	"slices"
	"sync"
)

type EventHandler func(data any)

type ListenerID uint64

type listener struct {
	id      ListenerID
	handler EventHandler
}

type EventEmitter struct {
	events map[EventType][]listener
	nextID ListenerID
	mutex  sync.RWMutex
}

func NewEventEmitter() *EventEmitter {
	return &EventEmitter{
		events: make(map[EventType][]listener),
	}
}

func (e *EventEmitter) On(event EventType, handler EventHandler) ListenerID {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	e.nextID++
	e.events[event] = append(e.events[event], listener{id: e.nextID, handler: handler})
	return e.nextID
}

// Emit calls the handlers registered when it started. Handlers may add or
// remove listeners.
func (e *EventEmitter) Emit(event EventType, data any) {
	e.mutex.RLock()
	listeners := slices.Clone(e.events[event])
	e.mutex.RUnlock()

	for _, l := range listeners {
		l.handler(data)
	}
}

func (e *EventEmitter) RemoveListener(event EventType, id ListenerID) bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	listeners := e.events[event]
	for i, l := range listeners {
		if l.id == id {
			e.events[event] = slices.Delete(listeners, i, i+1)
			return true
		}
	}
	return false
}

func (e *EventEmitter) Once(event EventType, handler EventHandler) ListenerID {
	var id ListenerID
	id = e.On(event, func(data any) {
		e.RemoveListener(event, id)
		handler(data)
	})
	return id
}
