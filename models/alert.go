package models

import "time"

// Owner: backend (alert service). Type, severity and status are open strings.
const (
	AlertTypeFireRisk       = "fire_risk"
	AlertTypeAssetDanger    = "asset_danger"
	AlertTypeWeatherWarning = "weather_warning"

	AlertStatusActive       = "active"
	AlertStatusAcknowledged = "acknowledged"
	AlertStatusResolved     = "resolved"
)

type Alert struct {
	ID             string     `json:"id" contract:"id,required,bson=_id"`
	Type           string     `json:"type" contract:"type,required"`
	Severity       string     `json:"severity" contract:"severity,required"`
	LocationID     string     `json:"location_id" contract:"location_id,required"`
	LocationName   string     `json:"location_name" contract:"location_name,required"`
	Message        string     `json:"message" contract:"message,required"`
	FireEventID    *string    `json:"fire_event_id" contract:"fire_event_id"`
	CreatedAt      time.Time  `json:"created_at" contract:"created_at,required"`
	UpdatedAt      time.Time  `json:"updated_at" contract:"updated_at,required"`
	Status         string     `json:"status" contract:"status,required"`
	AcknowledgedAt *time.Time `json:"acknowledged_at" contract:"acknowledged_at"`
	AcknowledgedBy *string    `json:"acknowledged_by" contract:"acknowledged_by"`
}

func (a *Alert) IsAcknowledged() bool { return a.AcknowledgedAt != nil }
