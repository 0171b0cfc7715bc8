package event

import (
	"testing"

	"github.com/google/uuid"
)

func TestPublishDeliversToTopicSubscribers(t *testing.T) {
	b := NewBus()

	var got []Event
	b.Subscribe(TopicChordDecoded, func(e Event) { got = append(got, e) })
	b.Subscribe(TopicNumericMode, func(e Event) {
		t.Error("numeric mode handler received a decode event")
	})

	b.Publish(TopicChordDecoded, ChordDecoded{Canonical: "EMS", Text: "mes", Hit: true})

	if len(got) != 1 {
		t.Fatalf("delivered %d events, want 1", len(got))
	}
	if got[0].Topic != TopicChordDecoded {
		t.Errorf("topic = %q, want %q", got[0].Topic, TopicChordDecoded)
	}
	if got[0].ID == uuid.Nil {
		t.Error("event ID is nil")
	}
	payload, ok := got[0].Payload.(ChordDecoded)
	if !ok || payload.Text != "mes" {
		t.Errorf("payload = %#v, want ChordDecoded with Text \"mes\"", got[0].Payload)
	}
}

func TestSubscribeAll(t *testing.T) {
	b := NewBus()

	var topics []Topic
	b.SubscribeAll(func(e Event) { topics = append(topics, e.Topic) })

	b.Publish(TopicNumericMode, NumericMode{Enabled: true})
	b.Publish(TopicChordFinalized, ChordFinalized{})

	if len(topics) != 2 || topics[0] != TopicNumericMode || topics[1] != TopicChordFinalized {
		t.Errorf("all-subscriber saw %v", topics)
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	b := NewBus()
	// Must not panic.
	b.Publish(TopicImmediateCommand, ImmediateCommand{})
}
