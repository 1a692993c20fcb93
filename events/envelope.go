package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/phylax/contracts/models"
	"github.com/phylax/contracts/schema"
)

var ErrUnknownEventType = errors.New("unknown event type")

// Event is the envelope published on the bus. Payload holds the typed body
// already encoded with wire names.
type Event struct {
	ID         string          `json:"id" contract:"id,required"`
	Type       EventType       `json:"type" contract:"type,required" validate:"enum"`
	Topic      string          `json:"topic" contract:"topic,required"`
	Source     string          `json:"source" contract:"source"`
	Payload    json.RawMessage `json:"payload" contract:"payload,required"`
	OccurredAt time.Time       `json:"occurredAt" contract:"occurred_at,required"`
}

// NewEvent validates p and wraps it for publishing on the topic of its type.
func NewEvent(p Payload) (Event, error) {
	h := p.Header()
	topic, ok := TopicFor(h.Type)
	if !ok {
		return Event{}, fmt.Errorf("%q: %w", h.Type, ErrUnknownEventType)
	}
	if err := schema.Validate(p); err != nil {
		return Event{}, err
	}
	data, err := schema.Encode(p)
	if err != nil {
		return Event{}, err
	}
	return Event{
		ID:         models.NewID(),
		Type:       h.Type,
		Topic:      topic,
		Source:     h.Source,
		Payload:    data,
		OccurredAt: h.Timestamp,
	}, nil
}

// Decode returns the typed payload carried by the envelope.
func (e Event) Decode() (Payload, error) {
	return DecodePayload(e.Type, e.Payload)
}

var payloads = map[EventType]func() Payload{
	AssetUpdateEvent:             func() Payload { return new(AssetUpdateEventData) },
	AssetRecallEvent:             func() Payload { return new(AssetRecallEventData) },
	EmergencyNotification:        func() Payload { return new(EmergencyNotificationEventData) },
	ChatMessageEvent:             func() Payload { return new(ChatMessageEventData) },
	SystemStatusEvent:            func() Payload { return new(SystemStatusEventData) },
	LocationUpdateEvent:          func() Payload { return new(LocationUpdateEventData) },
	VitalsUpdateEvent:            func() Payload { return new(VitalsUpdateEventData) },
	VideoUploadEvent:             func() Payload { return new(VideoUploadEventData) },
	VideoProcessingEvent:         func() Payload { return new(VideoProcessingEventData) },
	FrameExtractionEvent:         func() Payload { return new(FrameExtractionEventData) },
	FrameUploadCompleteEvent:     func() Payload { return new(FrameUploadCompleteEventData) },
	AIAnalysisEvent:              func() Payload { return new(AIAnalysisEventData) },
	EventAnalysisEvent:           func() Payload { return new(EventAnalysisEventData) },
	SuggestionCreated:            func() Payload { return new(SuggestionCreatedEventData) },
	MissionCreated:               func() Payload { return new(MissionCreatedEventData) },
	AIMissionSuggestion:          func() Payload { return new(AIMissionSuggestionEventData) },
	TacticalCommandCreated:       func() Payload { return new(TacticalCommandCreatedEventData) },
	TacticalCommandResponse:      func() Payload { return new(TacticalCommandResponseEventData) },
	TacticalCommandStatusChanged: func() Payload { return new(TacticalCommandStatusEventData) },
	TacticalSuggestionCreated:    func() Payload { return new(TacticalSuggestionCreatedEventData) },
	FireAlertCreatedEvent:        func() Payload { return new(FireAlertCreatedEventData) },
	MissionChatMessageEvent:      func() Payload { return new(MissionChatMessageEventData) },
	MissionTypingIndicatorEvent:  func() Payload { return new(MissionTypingIndicatorEventData) },
}

// NewPayload returns a pointer to a zero payload of the given type.
func NewPayload(t EventType) (Payload, error) {
	ctor, ok := payloads[t]
	if !ok {
		return nil, fmt.Errorf("%q: %w", t, ErrUnknownEventType)
	}
	return ctor(), nil
}

// DecodePayload constructs the typed payload for t from JSON in either naming.
// The header type must agree with t.
func DecodePayload(t EventType, data []byte) (Payload, error) {
	p, err := NewPayload(t)
	if err != nil {
		return nil, err
	}
	if err := schema.Decode(data, p); err != nil {
		return nil, err
	}
	if got := p.Header().Type; got != t {
		d, err := schema.Describe(p)
		if err != nil {
			return nil, err
		}
		return nil, schema.Invalid(d.Entity, "type", fmt.Sprintf("expected %q, got %q", t, got))
	}
	return p, nil
}
