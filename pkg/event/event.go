// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	GameStarted    Type = "game_started"
	GameEnded      Type = "game_ended"
	CourseLoaded   Type = "course_loaded"
	GatePassed     Type = "gate_passed"
	ShipCrashed    Type = "ship_crashed"
	ShipReset      Type = "ship_reset"
	CourseFinished Type = "course_finished"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// SubscriptionID identifies a registered handler so it can be removed
type SubscriptionID uint64

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type]map[SubscriptionID]Handler
	order    map[Type][]SubscriptionID
	nextID   SubscriptionID
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type]map[SubscriptionID]Handler),
		order:    make(map[Type][]SubscriptionID),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type and returns
// an id for later removal.
func (b *Bus) Subscribe(eventType Type, handler Handler) SubscriptionID {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make(map[SubscriptionID]Handler)
	}
	b.handlers[eventType][id] = handler
	b.order[eventType] = append(b.order[eventType], id)
	return id
}

// Unsubscribe removes a previously registered handler
func (b *Bus) Unsubscribe(eventType Type, id SubscriptionID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers, ok := b.handlers[eventType]
	if !ok {
		return
	}
	delete(handlers, id)
	ids := b.order[eventType]
	for i, existing := range ids {
		if existing == id {
			b.order[eventType] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribed handlers, in subscription
// order.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	ids := b.order[event.GetType()]
	handlers := make([]Handler, 0, len(ids))
	for _, id := range ids {
		if handler, ok := b.handlers[event.GetType()][id]; ok {
			handlers = append(handlers, handler)
		}
	}
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// Specific event implementations

// GateEvent is published when the ship passes its current target gate
type GateEvent struct {
	BaseEvent
	GateID     uint64
	GateNumber int
	Remaining  int     // gates left after this one
	Elapsed    float64 // seconds since race start
}

// NewGateEvent creates a new gate passage event
func NewGateEvent(source interface{}, gateID uint64, gateNumber, remaining int, elapsed float64) *GateEvent {
	return &GateEvent{
		BaseEvent: BaseEvent{
			EventType: GatePassed,
			Source:    source,
		},
		GateID:     gateID,
		GateNumber: gateNumber,
		Remaining:  remaining,
		Elapsed:    elapsed,
	}
}

// CrashEvent is published when the ship hits an asteroid
type CrashEvent struct {
	BaseEvent
	AsteroidID uint64
	Elapsed    float64
}

// NewCrashEvent creates a new crash event
func NewCrashEvent(source interface{}, asteroidID uint64, elapsed float64) *CrashEvent {
	return &CrashEvent{
		BaseEvent: BaseEvent{
			EventType: ShipCrashed,
			Source:    source,
		},
		AsteroidID: asteroidID,
		Elapsed:    elapsed,
	}
}

// CourseEvent is published when a course is loaded or finished
type CourseEvent struct {
	BaseEvent
	CourseName    string
	GateCount     int
	AsteroidCount int
	Elapsed       float64
}

// NewCourseEvent creates a new course lifecycle event
func NewCourseEvent(eventType Type, source interface{}, name string, gates, asteroids int, elapsed float64) *CourseEvent {
	return &CourseEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		CourseName:    name,
		GateCount:     gates,
		AsteroidCount: asteroids,
		Elapsed:       elapsed,
	}
}
