package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate while it changes state.
// Events are persisted to the outbox in the same transaction as the change.
type DomainEvent interface {
	EventID() UUID
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
}

// EventSource is implemented by aggregates that record domain events.
type EventSource interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseEvent carries the envelope shared by every domain event. Concrete events
// embed it and add exported payload fields, which are serialized as JSON.
type BaseEvent struct {
	id          UUID
	name        string
	aggregateID UUID
	occurredAt  time.Time
}

func NewBaseEvent(name string, aggregateID UUID, occurredAt time.Time) BaseEvent {
	return BaseEvent{
		id:          NewUUID(),
		name:        name,
		aggregateID: aggregateID,
		occurredAt:  occurredAt.UTC(),
	}
}

func (e BaseEvent) EventID() UUID         { return e.id }
func (e BaseEvent) EventName() string     { return e.name }
func (e BaseEvent) AggregateID() UUID     { return e.aggregateID }
func (e BaseEvent) OccurredAt() time.Time { return e.occurredAt }

// EventRecorder is embedded by aggregates to collect pending domain events.
type EventRecorder struct {
	events []DomainEvent
}

func (r *EventRecorder) Record(event DomainEvent) {
	r.events = append(r.events, event)
}

func (r *EventRecorder) DomainEvents() []DomainEvent {
	events := make([]DomainEvent, len(r.events))
	copy(events, r.events)
	return events
}

func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}
