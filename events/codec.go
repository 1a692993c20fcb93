package events

import "github.com/phylax/contracts/schema"

// Payloads embed BaseEvent, so each declares its own codec methods to keep the
// whole record on the wire.

func (l LocationData) MarshalJSON() ([]byte, error) { return schema.Encode(l) }
func (l *LocationData) UnmarshalJSON(data []byte) error { return schema.Decode(data, l) }

func (e AssetUpdateEventData) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *AssetUpdateEventData) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }

func (e AssetRecallEventData) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *AssetRecallEventData) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }

func (e EmergencyNotificationEventData) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *EmergencyNotificationEventData) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }

func (e ChatMessageEventData) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *ChatMessageEventData) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }

func (e LocationUpdateEventData) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *LocationUpdateEventData) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }

func (e VitalsUpdateEventData) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *VitalsUpdateEventData) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }

func (e SystemStatusEventData) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *SystemStatusEventData) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }

func (e VideoUploadEventData) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *VideoUploadEventData) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }

func (e VideoProcessingEventData) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *VideoProcessingEventData) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }

func (e FrameExtractionEventData) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *FrameExtractionEventData) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }

func (e FrameUploadCompleteEventData) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *FrameUploadCompleteEventData) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }

func (b ImageBox) MarshalJSON() ([]byte, error) { return schema.Encode(b) }
func (b *ImageBox) UnmarshalJSON(data []byte) error { return schema.Decode(data, b) }

func (o DetectedObject) MarshalJSON() ([]byte, error) { return schema.Encode(o) }
func (o *DetectedObject) UnmarshalJSON(data []byte) error { return schema.Decode(data, o) }

func (d DetectedEvent) MarshalJSON() ([]byte, error) { return schema.Encode(d) }
func (d *DetectedEvent) UnmarshalJSON(data []byte) error { return schema.Decode(data, d) }

func (e AIAnalysisEventData) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *AIAnalysisEventData) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }

func (e EventAnalysisEventData) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *EventAnalysisEventData) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }

func (e SuggestionCreatedEventData) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *SuggestionCreatedEventData) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }

func (e MissionCreatedEventData) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *MissionCreatedEventData) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }

func (s TacticalCommandSuggestion) MarshalJSON() ([]byte, error) { return schema.Encode(s) }
func (s *TacticalCommandSuggestion) UnmarshalJSON(data []byte) error { return schema.Decode(data, s) }

func (e AIMissionSuggestionEventData) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *AIMissionSuggestionEventData) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }

func (t TacticalCommandTarget) MarshalJSON() ([]byte, error) { return schema.Encode(t) }
func (t *TacticalCommandTarget) UnmarshalJSON(data []byte) error { return schema.Decode(data, t) }

func (e TacticalCommandCreatedEventData) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *TacticalCommandCreatedEventData) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }

func (e TacticalCommandResponseEventData) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *TacticalCommandResponseEventData) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }

func (e TacticalCommandStatusEventData) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *TacticalCommandStatusEventData) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }

func (e TacticalSuggestionCreatedEventData) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *TacticalSuggestionCreatedEventData) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }

func (e FireAlertCreatedEventData) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *FireAlertCreatedEventData) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }

func (e MissionChatMessageEventData) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *MissionChatMessageEventData) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }

func (e MissionTypingIndicatorEventData) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *MissionTypingIndicatorEventData) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }

func (m WebSocketMessage) MarshalJSON() ([]byte, error) { return schema.Encode(m) }
func (m *WebSocketMessage) UnmarshalJSON(data []byte) error { return schema.Decode(data, m) }

func (f FireEventSchema) MarshalJSON() ([]byte, error) { return schema.Encode(f) }
func (f *FireEventSchema) UnmarshalJSON(data []byte) error { return schema.Decode(data, f) }

func (e Event) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *Event) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }
