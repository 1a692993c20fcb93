package events

import (
	"time"

	"github.com/phylax/contracts/models"
)

// Event ownership:
//   asset updates and recalls: dispatch-asset-service
//   missions and tactical commands: mission-command-service
//   video, frames and analysis: video-processing-service
//   fire alerts: backend

// LocationData is the position attached to bus events.
type LocationData struct {
	Latitude  float64 `json:"latitude" contract:"latitude,required"`
	Longitude float64 `json:"longitude" contract:"longitude,required"`
	Altitude  float64 `json:"altitude" contract:"altitude"`
	Address   string  `json:"address" contract:"address"`
	Area      string  `json:"area" contract:"area"`
}

// Coordinate converts the location into a polygon vertex for area checks.
func (l LocationData) Coordinate() models.Coordinate {
	return models.Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
}

type AssetUpdateEventData struct {
	BaseEvent
	AssetID   string         `json:"assetId" contract:"asset_id,required"`
	AssetName string         `json:"assetName" contract:"asset_name,required"`
	AssetType string         `json:"assetType" contract:"asset_type,required"`
	OldStatus string         `json:"oldStatus" contract:"old_status,required"`
	NewStatus string         `json:"newStatus" contract:"new_status,required"`
	Location  *LocationData  `json:"location" contract:"location"`
	Metadata  map[string]any `json:"metadata" contract:"metadata"`
}

type AssetRecallEventData struct {
	BaseEvent
	AssetID        string        `json:"assetId" contract:"asset_id,required"`
	AssetName      string        `json:"assetName" contract:"asset_name,required"`
	RecalledBy     string        `json:"recalledBy" contract:"recalled_by,required"`
	RecalledByName string        `json:"recalledByName" contract:"recalled_by_name,required"`
	Reason         string        `json:"reason" contract:"reason,required"`
	Location       *LocationData `json:"location" contract:"location"`
}

type EmergencyNotificationEventData struct {
	BaseEvent
	NotificationID string        `json:"notificationId" contract:"notification_id,required"`
	Title          string        `json:"title" contract:"title,required"`
	Message        string        `json:"message" contract:"message,required"`
	Severity       string        `json:"severity" contract:"severity,required"`
	Area           string        `json:"area" contract:"area,required"`
	RecipientCount int           `json:"recipientCount" contract:"recipient_count,required"`
	Coordinates    *LocationData `json:"coordinates" contract:"coordinates"`
	Acknowledged   bool          `json:"acknowledged" contract:"acknowledged,required"`
	AcknowledgedBy *string       `json:"acknowledgedBy" contract:"acknowledged_by"`
	AcknowledgedAt *time.Time    `json:"acknowledgedAt" contract:"acknowledged_at"`
}

// ChatMessageEventData is a command panel message. Sender is one of user,
// system, update or recommendation.
type ChatMessageEventData struct {
	BaseEvent
	MessageID string  `json:"messageId" contract:"message_id,required"`
	Text      string  `json:"text" contract:"text,required"`
	Sender    string  `json:"sender" contract:"sender,required"`
	SessionID *string `json:"sessionId" contract:"session_id"`
	Command   *string `json:"command" contract:"command"`
	Response  *string `json:"response" contract:"response"`
}

type LocationUpdateEventData struct {
	BaseEvent
	AssetID   string       `json:"assetId" contract:"asset_id,required"`
	AssetName string       `json:"assetName" contract:"asset_name,required"`
	Location  LocationData `json:"location" contract:"location,required"`
	Speed     float64      `json:"speed" contract:"speed"`
	Heading   float64      `json:"heading" contract:"heading"`
	Altitude  float64      `json:"altitude" contract:"altitude"`
}

type VitalsUpdateEventData struct {
	BaseEvent
	PersonnelID   string   `json:"personnelId" contract:"personnel_id,required"`
	PersonnelName string   `json:"personnelName" contract:"personnel_name,required"`
	PulseRate     int      `json:"pulseRate" contract:"pulse_rate,required"`
	OxygenLevel   int      `json:"oxygenLevel" contract:"oxygen_level,required"`
	Temperature   *float64 `json:"temperature" contract:"temperature"`
	IsAlert       bool     `json:"isAlert" contract:"is_alert,required"`
	AlertReason   *string  `json:"alertReason" contract:"alert_reason"`
}

// SystemStatusEventData reports a change between Normal, Emergency and Maintenance.
type SystemStatusEventData struct {
	BaseEvent
	Status           string         `json:"status" contract:"status,required"`
	PreviousStatus   string         `json:"previousStatus" contract:"previous_status,required"`
	ChangedBy        string         `json:"changedBy" contract:"changed_by,required"`
	Reason           *string        `json:"reason" contract:"reason"`
	ActiveAssets     int            `json:"activeAssets" contract:"active_assets,required"`
	DispatchedAssets int            `json:"dispatchedAssets" contract:"dispatched_assets,required"`
	Metadata         map[string]any `json:"metadata" contract:"metadata"`
}

type VideoUploadEventData struct {
	BaseEvent
	VideoID    string        `json:"videoId" contract:"video_id,required"`
	VideoName  string        `json:"videoName" contract:"video_name,required"`
	Format     string        `json:"format" contract:"format,required"`
	Duration   float64       `json:"duration" contract:"duration,required"`
	FileSize   int64         `json:"fileSize" contract:"file_size,required"`
	UploadedBy string        `json:"uploadedBy" contract:"uploaded_by,required"`
	GCSPath    string        `json:"gcsPath" contract:"gcs_path,required"`
	Status     string        `json:"status" contract:"status,required"`
	CameraID   string        `json:"cameraId" contract:"camera_id,required"`
	Location   *LocationData `json:"location" contract:"location"`
}

// VideoProcessingEventData tracks a processing job. Progress runs 0 to 100.
type VideoProcessingEventData struct {
	BaseEvent
	VideoID     string     `json:"videoId" contract:"video_id,required"`
	JobType     string     `json:"jobType" contract:"job_type,required"`
	Status      string     `json:"status" contract:"status,required"`
	Progress    float64    `json:"progress" contract:"progress,required" validate:"gte=0,lte=100"`
	ErrorMsg    *string    `json:"errorMsg" contract:"error_msg"`
	StartedAt   *time.Time `json:"startedAt" contract:"started_at"`
	CompletedAt *time.Time `json:"completedAt" contract:"completed_at"`
}

// FrameExtractionEventData announces an extracted frame. VideoOffset is the
// frame position in seconds from the start of the video.
type FrameExtractionEventData struct {
	BaseEvent
	VideoID     string        `json:"videoId" contract:"video_id,required"`
	FrameID     string        `json:"frameId" contract:"frame_id,required"`
	FrameNumber int           `json:"frameNumber" contract:"frame_number,required"`
	VideoOffset float64       `json:"videoTimestamp" contract:"video_timestamp,required"`
	GCSPath     string        `json:"gcsPath" contract:"gcs_path,required"`
	URL         string        `json:"url" contract:"url,required"`
	FileSize    int64         `json:"fileSize" contract:"file_size,required"`
	CameraID    string        `json:"cameraId" contract:"camera_id,required"`
	Location    *LocationData `json:"location" contract:"location"`
}

type FrameUploadCompleteEventData struct {
	BaseEvent
	VideoID     string        `json:"videoId" contract:"video_id,required"`
	FrameID     string        `json:"frameId" contract:"frame_id,required"`
	FrameNumber int           `json:"frameNumber" contract:"frame_number,required"`
	VideoOffset float64       `json:"videoTimestamp" contract:"video_timestamp,required"`
	GCSPath     string        `json:"gcsPath" contract:"gcs_path,required"`
	URL         string        `json:"url" contract:"url,required"`
	FileSize    int64         `json:"fileSize" contract:"file_size,required"`
	VerifiedAt  time.Time     `json:"verifiedAt" contract:"verified_at,required"`
	RetryCount  int           `json:"retryCount" contract:"retry_count,required"`
	CameraID    string        `json:"cameraId" contract:"camera_id,required"`
	Location    *LocationData `json:"location" contract:"location"`
}

// ImageBox is a rectangle in image pixels.
type ImageBox struct {
	X      int `json:"x" contract:"x,required"`
	Y      int `json:"y" contract:"y,required"`
	Width  int `json:"width" contract:"width,required"`
	Height int `json:"height" contract:"height,required"`
}

type DetectedObject struct {
	Type        string         `json:"type" contract:"type,required"`
	Confidence  float64        `json:"confidence" contract:"confidence,required"`
	BoundingBox ImageBox       `json:"boundingBox" contract:"bounding_box,required"`
	Attributes  map[string]any `json:"attributes" contract:"attributes,default={}"`
}

type DetectedEvent struct {
	Type        string         `json:"type" contract:"type,required"`
	Confidence  float64        `json:"confidence" contract:"confidence,required"`
	Description string         `json:"description" contract:"description,required"`
	Severity    string         `json:"severity" contract:"severity,required"`
	Location    *LocationData  `json:"location" contract:"location"`
	Metadata    map[string]any `json:"metadata" contract:"metadata,default={}"`
}

type AIAnalysisEventData struct {
	BaseEvent
	VideoID    string           `json:"videoId" contract:"video_id,required"`
	FrameID    string           `json:"frameId" contract:"frame_id,required"`
	Confidence float64          `json:"confidence" contract:"confidence,required"`
	Objects    []DetectedObject `json:"objects" contract:"objects,default=[]"`
	Events     []DetectedEvent  `json:"events" contract:"events,default=[]"`
	Metadata   map[string]any   `json:"metadata" contract:"metadata,default={}"`
}

// EventAnalysisEventData is one analyzed frame. Its time is the header timestamp.
type EventAnalysisEventData struct {
	BaseEvent
	VideoID       string         `json:"videoId" contract:"video_id,required"`
	FrameID       string         `json:"frameId" contract:"frame_id,required"`
	FrameNumber   int            `json:"frameNumber" contract:"frame_number,required"`
	AnalysisType  string         `json:"analysisType" contract:"analysis_type,required"`
	Description   string         `json:"description" contract:"description,required"`
	Summary       string         `json:"summary" contract:"summary,required"`
	DetectedItems []string       `json:"detectedItems" contract:"detected_items,default=[]"`
	Confidence    float64        `json:"confidence" contract:"confidence,required"`
	Severity      string         `json:"severity" contract:"severity,required"`
	Category      string         `json:"category" contract:"category,required"`
	CameraID      string         `json:"cameraId" contract:"camera_id,required"`
	Location      *LocationData  `json:"location" contract:"location"`
	Metadata      map[string]any `json:"metadata" contract:"metadata,default={}"`
	RawResponse   *string        `json:"rawResponse" contract:"raw_response"`
}

// SuggestionCreatedEventData links an analyzed event to a mission.
type SuggestionCreatedEventData struct {
	BaseEvent
	SuggestionID string  `json:"suggestionId" contract:"suggestion_id,required"`
	EventID      string  `json:"eventId" contract:"event_id,required"`
	MissionID    string  `json:"missionId" contract:"mission_id,required"`
	MissionTitle string  `json:"missionTitle" contract:"mission_title,required"`
	Confidence   float64 `json:"confidence" contract:"confidence,required"`
	Reasoning    string  `json:"reasoning" contract:"reasoning,required"`
}

type MissionCreatedEventData struct {
	BaseEvent
	MissionID   string               `json:"missionId" contract:"mission_id,required"`
	Title       string               `json:"title" contract:"title,required"`
	Description string               `json:"description" contract:"description,required"`
	Priority    string               `json:"priority" contract:"priority,required"`
	Status      models.MissionStatus `json:"status" contract:"status,required" validate:"enum"`
	Location    *LocationData        `json:"location" contract:"location"`
	AssetIDs    []string             `json:"assetIds" contract:"asset_ids,default=[]"`
	Tags        []string             `json:"tags" contract:"tags,default=[]"`
	CreatedBy   string               `json:"createdBy" contract:"created_by,required"`
}

// NewMissionCreated builds the announcement for a freshly created mission.
func NewMissionCreated(m models.Mission, source, createdBy string, at time.Time) MissionCreatedEventData {
	ev := MissionCreatedEventData{
		BaseEvent:   NewBaseEvent(MissionCreated, source, at),
		MissionID:   m.ID,
		Title:       m.Title,
		Description: m.Description,
		Priority:    m.Priority,
		Status:      m.Status,
		AssetIDs:    append([]string{}, m.AssetIDs...),
		Tags:        append([]string{}, m.Tags...),
		CreatedBy:   createdBy,
	}
	if m.Location != nil {
		ev.Location = &LocationData{Latitude: m.Location.Latitude(), Longitude: m.Location.Longitude()}
	}
	return ev
}

// TacticalCommandSuggestion is a command proposed by the AI. TargetType is team or asset.
type TacticalCommandSuggestion struct {
	Title       string                         `json:"title" contract:"title,required"`
	Description string                         `json:"description" contract:"description,required"`
	Category    models.TacticalCommandCategory `json:"category" contract:"category,required" validate:"enum"`
	TargetType  string                         `json:"targetType" contract:"target_type,required"`
	TargetID    *string                        `json:"targetId" contract:"target_id"`
	TargetName  *string                        `json:"targetName" contract:"target_name"`
	Priority    models.TacticalCommandPriority `json:"priority" contract:"priority,required" validate:"enum"`
	Reasoning   string                         `json:"reasoning" contract:"reasoning,required"`
}

type AIMissionSuggestionEventData struct {
	BaseEvent
	MissionID        string                      `json:"missionId" contract:"mission_id,required"`
	MissionTitle     string                      `json:"missionTitle" contract:"mission_title,required"`
	TacticalCommands []TacticalCommandSuggestion `json:"tacticalCommands" contract:"tactical_commands" validate:"dive"`
	Analysis         string                      `json:"analysis" contract:"analysis,required"`
	Confidence       float64                     `json:"confidence" contract:"confidence,required"`
}

type TacticalCommandTarget struct {
	TargetType string `json:"targetType" contract:"target_type,required"`
	TargetID   string `json:"targetId" contract:"target_id,required"`
	TargetName string `json:"targetName" contract:"target_name,required"`
}

type TacticalCommandCreatedEventData struct {
	BaseEvent
	CommandID        string                         `json:"commandId" contract:"command_id,required"`
	MissionID        string                         `json:"missionId" contract:"mission_id,required"`
	MissionTitle     string                         `json:"missionTitle" contract:"mission_title,required"`
	Title            string                         `json:"title" contract:"title,required"`
	Description      string                         `json:"description" contract:"description,required"`
	Category         models.TacticalCommandCategory `json:"category" contract:"category,required" validate:"enum"`
	Targets          []TacticalCommandTarget        `json:"targets" contract:"targets,required" validate:"min=1"`
	Priority         models.TacticalCommandPriority `json:"priority" contract:"priority,required" validate:"enum"`
	CommandSource    string                         `json:"commandSource" contract:"command_source,required"`
	Destination      *models.TacticalGeoLocation    `json:"destination" contract:"destination"`
	AreaOfOperation  *models.TacticalGeoArea        `json:"areaOfOperation" contract:"area_of_operation"`
	Objective        *string                        `json:"objective" contract:"objective"`
	SituationSummary *string                        `json:"situationSummary" contract:"situation_summary"`
}

// NewTacticalCommandCreated builds the announcement for a stored command.
func NewTacticalCommandCreated(c models.TacticalCommand, source string, at time.Time) TacticalCommandCreatedEventData {
	targets := make([]TacticalCommandTarget, len(c.Targets))
	for i, t := range c.Targets {
		targets[i] = TacticalCommandTarget{TargetType: t.TargetType, TargetID: t.TargetID, TargetName: t.TargetName}
	}
	return TacticalCommandCreatedEventData{
		BaseEvent:        NewBaseEvent(TacticalCommandCreated, source, at),
		CommandID:        c.ID,
		MissionID:        c.MissionID,
		MissionTitle:     c.MissionTitle,
		Title:            c.Title,
		Description:      c.Description,
		Category:         c.Category,
		Targets:          targets,
		Priority:         c.Priority,
		CommandSource:    c.Source,
		Destination:      c.Destination,
		AreaOfOperation:  c.AreaOfOperation,
		Objective:        c.Objective,
		SituationSummary: c.SituationSummary,
	}
}

// TacticalCommandResponseEventData is a target accepting or rejecting a command.
type TacticalCommandResponseEventData struct {
	BaseEvent
	CommandID       string                       `json:"commandId" contract:"command_id,required"`
	MissionID       string                       `json:"missionId" contract:"mission_id,required"`
	TargetID        string                       `json:"targetId" contract:"target_id,required"`
	TargetType      string                       `json:"targetType" contract:"target_type,required"`
	TargetName      string                       `json:"targetName" contract:"target_name,required"`
	Decision        string                       `json:"decision" contract:"decision,required"`
	Notes           *string                      `json:"notes" contract:"notes"`
	RespondedBy     string                       `json:"respondedBy" contract:"responded_by,required"`
	RespondedByName string                       `json:"respondedByName" contract:"responded_by_name,required"`
	NewStatus       models.TacticalCommandStatus `json:"newStatus" contract:"new_status,required" validate:"enum"`
}

type TacticalCommandStatusEventData struct {
	BaseEvent
	CommandID     string                       `json:"commandId" contract:"command_id,required"`
	MissionID     string                       `json:"missionId" contract:"mission_id,required"`
	CommandTitle  string                       `json:"commandTitle" contract:"command_title,required"`
	OldStatus     models.TacticalCommandStatus `json:"oldStatus" contract:"old_status,required" validate:"enum"`
	NewStatus     models.TacticalCommandStatus `json:"newStatus" contract:"new_status,required" validate:"enum"`
	UpdatedBy     string                       `json:"updatedBy" contract:"updated_by,required"`
	UpdatedByName string                       `json:"updatedByName" contract:"updated_by_name,required"`
	Notes         *string                      `json:"notes" contract:"notes"`
}

type TacticalSuggestionCreatedEventData struct {
	BaseEvent
	SuggestionID     string   `json:"suggestionId" contract:"suggestion_id,required"`
	MissionID        string   `json:"missionId" contract:"mission_id,required"`
	Title            string   `json:"title" contract:"title,required"`
	Description      string   `json:"description" contract:"description,required"`
	Category         string   `json:"category" contract:"category,required"`
	Priority         string   `json:"priority" contract:"priority,required"`
	SuggestedTargets []string `json:"suggestedTargets" contract:"suggested_targets,default=[]"`
	Reasoning        string   `json:"reasoning" contract:"reasoning,required"`
	Confidence       float64  `json:"confidence" contract:"confidence,required"`
}

type FireAlertCreatedEventData struct {
	BaseEvent
	AlertID      string        `json:"alertId" contract:"alert_id,required"`
	FireEventID  string        `json:"fireEventId" contract:"fire_event_id,required"`
	LocationID   string        `json:"locationId" contract:"location_id,required"`
	LocationName string        `json:"locationName" contract:"location_name,required"`
	Severity     string        `json:"severity" contract:"severity,required"`
	Message      string        `json:"message" contract:"message,required"`
	RiskScore    float64       `json:"riskScore" contract:"risk_score,required"`
	Location     *LocationData `json:"location" contract:"location"`
}

// NewFireAlertCreated announces an alert raised from a fire event.
func NewFireAlertCreated(alert models.Alert, fire models.FireEvent, source string, at time.Time) FireAlertCreatedEventData {
	return FireAlertCreatedEventData{
		BaseEvent:    NewBaseEvent(FireAlertCreatedEvent, source, at),
		AlertID:      alert.ID,
		FireEventID:  fire.ID,
		LocationID:   alert.LocationID,
		LocationName: alert.LocationName,
		Severity:     alert.Severity,
		Message:      alert.Message,
		RiskScore:    fire.RiskScore,
	}
}

type MissionChatMessageEventData struct {
	BaseEvent
	MissionID  string `json:"missionId" contract:"mission_id,required"`
	MessageID  string `json:"messageId" contract:"message_id,required"`
	SenderID   string `json:"senderId" contract:"sender_id,required"`
	SenderName string `json:"senderName" contract:"sender_name,required"`
	SenderRole string `json:"senderRole" contract:"sender_role,required"`
	Content    string `json:"content" contract:"content,required"`
}

type MissionTypingIndicatorEventData struct {
	BaseEvent
	MissionID   string              `json:"missionId" contract:"mission_id,required"`
	TypingUsers []models.TypingUser `json:"typingUsers" contract:"typing_users,default=[]"`
}

// WebSocketMessage is what the gateway pushes to dashboard clients.
type WebSocketMessage struct {
	Type      string    `json:"type" contract:"type,required"`
	Event     EventType `json:"event" contract:"event,required" validate:"enum"`
	Data      any       `json:"data" contract:"data,required"`
	Timestamp time.Time `json:"timestamp" contract:"timestamp,required"`
	ClientID  *string   `json:"clientId" contract:"client_id"`
}

// Fire risk message kinds carried in FireEventSchema.EventType.
const (
	FireRiskDetected = "fire.risk.detected"
	FireRiskUpdated  = "fire.risk.updated"
	FireRiskCleared  = "fire.risk.cleared"

	FireSchemaVersion = "1.0"
)

// FireEventSchema is the versioned message published for fire risk changes.
// Its keys are snake_case on the wire.
type FireEventSchema struct {
	SchemaVersion string           `json:"schema_version" contract:"schema_version,default=1.0"`
	EventType     string           `json:"event_type" contract:"event_type,required" validate:"oneof=fire.risk.detected fire.risk.updated fire.risk.cleared"`
	Timestamp     time.Time        `json:"timestamp" contract:"timestamp,required"`
	Payload       models.FireEvent `json:"payload" contract:"payload,required"`
}
