package models

import "time"

// Owner: backend (fire risk assessment).

type MonitoredLocation struct {
	ID       string   `json:"id" contract:"id,required,bson=_id"`
	Name     string   `json:"name" contract:"name,required"`
	Type     string   `json:"type" contract:"type,required"`
	Location GeoPoint `json:"location" contract:"location,required"`
	Status   string   `json:"status" contract:"status,required"`
}

// FireRisk is the former name of MonitoredLocation.
type FireRisk = MonitoredLocation

// FireData is a raw fire observation from an external source.
type FireData struct {
	ID             string         `json:"id" contract:"id,required,bson=_id"`
	Source         string         `json:"source" contract:"source,required"`
	SourceType     string         `json:"source_type" contract:"source_type,required"`
	Timestamp      time.Time      `json:"timestamp" contract:"timestamp,required"`
	Location       GeoPoint       `json:"location" contract:"location,required"`
	Data           map[string]any `json:"data" contract:"data,required"`
	Tags           []string       `json:"tags" contract:"tags,default=[]"`
	SourceMetadata map[string]any `json:"source_metadata" contract:"source_metadata,default={}"`
}
