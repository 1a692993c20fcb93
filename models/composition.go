package models

import "time"

// Owner: composition-service.

// GridSlot places a camera feed in a 2x2 grid: 0 top-left, 1 top-right,
// 2 bottom-left, 3 bottom-right.
type GridSlot struct {
	CameraURL string `json:"camera_url" contract:"camera_url,required"`
	Position  int    `json:"position" contract:"position,required" validate:"gte=0,lte=3"`
}

type GridConfig struct {
	SessionID string     `json:"session_id" contract:"session_id,required"`
	MissionID *string    `json:"mission_id" contract:"mission_id"`
	Slots     []GridSlot `json:"slots" contract:"slots,required" validate:"max=4,dive"`
	OutputURL string     `json:"output_url" contract:"output_url,required"`
}

type CompositionStatus struct {
	SessionID   string    `json:"session_id" contract:"session_id,required"`
	IsRunning   bool      `json:"is_running" contract:"is_running,required"`
	StartTime   time.Time `json:"start_time" contract:"start_time,required"`
	Restarts    int       `json:"restarts" contract:"restarts,required"`
	Encoder     string    `json:"encoder" contract:"encoder,required"`
	OutputURL   string    `json:"output_url" contract:"output_url,required"`
	LastError   *string   `json:"last_error" contract:"last_error"`
	Profile     *string   `json:"profile" contract:"profile"`
	BitrateKbps *int      `json:"bitrate_kbps" contract:"bitrate_kbps"`
}

// StreamProfile is the quality tier of a composite stream.
type StreamProfile int

const (
	ProfileBackground StreamProfile = iota
	ProfileMonitoring
	ProfileMissionCritical
)

func (p StreamProfile) String() string {
	switch p {
	case ProfileBackground:
		return "Background"
	case ProfileMonitoring:
		return "Monitoring"
	case ProfileMissionCritical:
		return "MissionCritical"
	default:
		return "Unknown"
	}
}

// ParseStreamProfile falls back to ProfileMonitoring with ok=false for unknown names.
func ParseStreamProfile(s string) (StreamProfile, bool) {
	switch s {
	case "Background":
		return ProfileBackground, true
	case "Monitoring":
		return ProfileMonitoring, true
	case "MissionCritical":
		return ProfileMissionCritical, true
	default:
		return ProfileMonitoring, false
	}
}

type ProfileConfig struct {
	Resolution  string
	BitrateKbps int
	FPS         int
	Preset      string
}

func ProfileConfigFor(p StreamProfile) ProfileConfig {
	switch p {
	case ProfileBackground:
		return ProfileConfig{Resolution: "854x480", BitrateKbps: 1000, FPS: 15, Preset: "ultrafast"}
	case ProfileMissionCritical:
		return ProfileConfig{Resolution: "1920x1080", BitrateKbps: 4000, FPS: 30, Preset: "fast"}
	default:
		return ProfileConfig{Resolution: "1280x720", BitrateKbps: 2500, FPS: 30, Preset: "fast"}
	}
}
