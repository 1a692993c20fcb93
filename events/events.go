// Package events holds the messages Phylax services exchange over the bus: the
// event type vocabulary, topic names, typed payloads and the envelope they travel in.
//
// Payloads follow the same dual naming as package models: they decode from
// camelCase wire keys or snake_case internal keys and encode with wire keys.
package events

import (
	"time"

	"github.com/phylax/contracts/models"
	"github.com/phylax/contracts/schema"
)

// EventType is the discriminator carried by every event.
type EventType string

const (
	AssetUpdateEvent             EventType = "asset_update"
	AssetRecallEvent             EventType = "asset_recall"
	EmergencyNotification        EventType = "emergency_notification"
	ChatMessageEvent             EventType = "chat_message"
	SystemStatusEvent            EventType = "system_status"
	LocationUpdateEvent          EventType = "location_update"
	VitalsUpdateEvent            EventType = "vitals_update"
	VideoUploadEvent             EventType = "video_upload"
	VideoProcessingEvent         EventType = "video_processing"
	FrameExtractionEvent         EventType = "frame_extraction"
	FrameUploadCompleteEvent     EventType = "frame_upload_complete"
	AIAnalysisEvent              EventType = "ai_analysis"
	EventAnalysisEvent           EventType = "event_analysis"
	SuggestionCreated            EventType = "suggestion_created"
	MissionCreated               EventType = "mission_created"
	AIMissionSuggestion          EventType = "ai_mission_suggestion"
	TacticalCommandCreated       EventType = "tactical_command_created"
	TacticalCommandResponse      EventType = "tactical_command_response"
	TacticalCommandStatusChanged EventType = "tactical_command_status_changed"
	TacticalSuggestionCreated    EventType = "tactical_suggestion_created"
	FireAlertCreatedEvent        EventType = "fire.alert.created"
	MissionChatMessageEvent      EventType = "mission_chat_message"
	MissionTypingIndicatorEvent  EventType = "mission_typing_indicator"
)

var eventTypes = []EventType{
	AssetUpdateEvent, AssetRecallEvent, EmergencyNotification, ChatMessageEvent,
	SystemStatusEvent, LocationUpdateEvent, VitalsUpdateEvent, VideoUploadEvent,
	VideoProcessingEvent, FrameExtractionEvent, FrameUploadCompleteEvent, AIAnalysisEvent,
	EventAnalysisEvent, SuggestionCreated, MissionCreated, AIMissionSuggestion,
	TacticalCommandCreated, TacticalCommandResponse, TacticalCommandStatusChanged,
	TacticalSuggestionCreated, FireAlertCreatedEvent, MissionChatMessageEvent,
	MissionTypingIndicatorEvent,
}

// Types returns every known event type in declaration order.
func Types() []EventType { return append([]EventType(nil), eventTypes...) }

func (EventType) Values() []string {
	out := make([]string, len(eventTypes))
	for i, t := range eventTypes {
		out[i] = string(t)
	}
	return out
}

func (t EventType) IsValid() bool { return schema.IsMember(string(t), t.Values()) }

// BaseEvent is the header shared by every typed payload.
type BaseEvent struct {
	ID        string    `json:"id" contract:"id,required"`
	Type      EventType `json:"type" contract:"type,required" validate:"enum"`
	Timestamp time.Time `json:"timestamp" contract:"timestamp,required"`
	Source    string    `json:"source" contract:"source,required"`
}

// NewBaseEvent stamps a header with a fresh id.
func NewBaseEvent(t EventType, source string, at time.Time) BaseEvent {
	return BaseEvent{ID: models.NewID(), Type: t, Timestamp: at.UTC(), Source: source}
}

func (b BaseEvent) Header() BaseEvent { return b }

// Payload is implemented by every typed event body through its embedded BaseEvent.
type Payload interface {
	Header() BaseEvent
}
