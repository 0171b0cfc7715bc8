// Package event provides a small synchronous topic bus for observing the
// input pipeline. Events are observability, not the data path: decode output
// reaches the emitter directly, and subscribers (logging, status display)
// must not block.
package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/chordkey/internal/input/key"
)

// Topic identifies an event category.
type Topic string

// Topics published by the input pipeline.
const (
	// TopicChordFinalized is published when a session hands a chord to
	// the decoder.
	TopicChordFinalized Topic = "chord.finalized"

	// TopicChordDecoded is published after a chord decodes to text.
	TopicChordDecoded Topic = "chord.decoded"

	// TopicImmediateCommand is published when a single-key command runs.
	TopicImmediateCommand Topic = "command.immediate"

	// TopicNumericMode is published when numeric mode toggles.
	TopicNumericMode Topic = "mode.numeric"
)

// Event is one published occurrence.
type Event struct {
	// ID uniquely identifies the event.
	ID uuid.UUID

	// Topic is the event category.
	Topic Topic

	// Time is when the event was published.
	Time time.Time

	// Payload carries the topic-specific data.
	Payload any
}

// ChordFinalized is the payload for TopicChordFinalized.
type ChordFinalized struct {
	Keys    []key.KeyID
	Shift   bool
	Numeric bool
}

// ChordDecoded is the payload for TopicChordDecoded.
type ChordDecoded struct {
	Canonical string
	Text      string
	Hit       bool
	Numeric   bool
}

// ImmediateCommand is the payload for TopicImmediateCommand.
type ImmediateCommand struct {
	Key key.KeyID
}

// NumericMode is the payload for TopicNumericMode.
type NumericMode struct {
	Enabled bool
}

// Handler receives published events.
type Handler func(Event)

// Bus dispatches events synchronously on the publisher's goroutine.
// Subscribe before the polling loop starts; Bus is not safe for concurrent
// subscription during publishing.
type Bus struct {
	handlers map[Topic][]Handler
	all      []Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[Topic][]Handler)}
}

// Subscribe registers a handler for one topic.
func (b *Bus) Subscribe(t Topic, h Handler) {
	b.handlers[t] = append(b.handlers[t], h)
}

// SubscribeAll registers a handler for every topic.
func (b *Bus) SubscribeAll(h Handler) {
	b.all = append(b.all, h)
}

// Publish delivers an event to subscribers in registration order.
func (b *Bus) Publish(t Topic, payload any) {
	ev := Event{
		ID:      uuid.New(),
		Topic:   t,
		Time:    time.Now(),
		Payload: payload,
	}
	for _, h := range b.handlers[t] {
		h(ev)
	}
	for _, h := range b.all {
		h(ev)
	}
}
