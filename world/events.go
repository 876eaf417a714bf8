package world

import (
	"time"

	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/system"
)

// EventKind identifies world events.
type EventKind string

const (
	EventLanded           EventKind = "landed"
	EventLeftGround       EventKind = "left_ground"
	EventJumped           EventKind = "jumped"
	EventJumpDenied       EventKind = "jump_denied"
	EventInvalidCollision EventKind = "invalid_collision"
	EventPickup           EventKind = "pickup"
)

// Event is a world event payload. Data holds a system.JumpDecision for jump
// events, a system.InvalidCollision for invalid collisions and a
// component.Pickup for pickups.
type Event struct {
	Kind EventKind
	Time time.Duration
	Data any
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// eventObserver turns physics notifications into queued events.
type eventObserver struct {
	w *World
}

func (o eventObserver) OnJumpSuccess(_ *component.Actor, d system.JumpDecision) {
	o.w.events.Push(Event{Kind: EventJumped, Time: o.w.now, Data: d})
}

func (o eventObserver) OnInvalidCollision(c system.InvalidCollision) {
	o.w.events.Push(Event{Kind: EventInvalidCollision, Time: o.w.now, Data: c})
}
