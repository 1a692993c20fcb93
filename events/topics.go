package events

// Topics names the bus topics. They are provisioned ahead of time in production.
var Topics = struct {
	AssetUpdates           string
	EmergencyNotifications string
	ChatMessages           string
	TacticalCommands       string
	LocationUpdates        string
	VitalsUpdates          string
	SystemStatus           string
	VideoUploads           string
	VideoProcessing        string
	FrameExtraction        string
	FrameUploadComplete    string
	AIAnalysis             string
	EventAnalysis          string
	CameraEvents           string
	Suggestions            string
	MissionEvents          string
	AIMissionSuggestions   string
	MissionChat            string
	FireAlerts             string
}{
	AssetUpdates:           "asset-updates",
	EmergencyNotifications: "emergency-notifications",
	ChatMessages:           "chat-messages",
	TacticalCommands:       "tactical-commands",
	LocationUpdates:        "location-updates",
	VitalsUpdates:          "vitals-updates",
	SystemStatus:           "system-status",
	VideoUploads:           "video-uploads",
	VideoProcessing:        "video-processing",
	FrameExtraction:        "frame-extraction",
	FrameUploadComplete:    "frame-upload-complete",
	AIAnalysis:             "ai-analysis",
	EventAnalysis:          "event-analysis",
	CameraEvents:           "camera-events",
	Suggestions:            "suggestions",
	MissionEvents:          "mission-events",
	AIMissionSuggestions:   "ai-mission-suggestions",
	MissionChat:            "mission-chat",
	FireAlerts:             "fire-alerts",
}

var topicByType = map[EventType]string{
	AssetUpdateEvent:             Topics.AssetUpdates,
	AssetRecallEvent:             Topics.AssetUpdates,
	EmergencyNotification:        Topics.EmergencyNotifications,
	ChatMessageEvent:             Topics.ChatMessages,
	SystemStatusEvent:            Topics.SystemStatus,
	LocationUpdateEvent:          Topics.LocationUpdates,
	VitalsUpdateEvent:            Topics.VitalsUpdates,
	VideoUploadEvent:             Topics.VideoUploads,
	VideoProcessingEvent:         Topics.VideoProcessing,
	FrameExtractionEvent:         Topics.FrameExtraction,
	FrameUploadCompleteEvent:     Topics.FrameUploadComplete,
	AIAnalysisEvent:              Topics.AIAnalysis,
	EventAnalysisEvent:           Topics.EventAnalysis,
	SuggestionCreated:            Topics.Suggestions,
	MissionCreated:               Topics.MissionEvents,
	AIMissionSuggestion:          Topics.AIMissionSuggestions,
	TacticalCommandCreated:       Topics.TacticalCommands,
	TacticalCommandResponse:      Topics.TacticalCommands,
	TacticalCommandStatusChanged: Topics.TacticalCommands,
	TacticalSuggestionCreated:    Topics.TacticalCommands,
	FireAlertCreatedEvent:        Topics.FireAlerts,
	MissionChatMessageEvent:      Topics.MissionChat,
	MissionTypingIndicatorEvent:  Topics.MissionChat,
}

// TopicFor returns the topic an event type is routed to.
func TopicFor(t EventType) (string, bool) {
	topic, ok := topicByType[t]
	return topic, ok
}
