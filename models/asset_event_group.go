package models

import "time"

// Owner: backend (event grouping).

// AssetEvent is one event shown inside an AssetEventGroup. Timestamp is kept
// as the producer's string.
type AssetEvent struct {
	ID          string         `json:"id" contract:"id,required"`
	Type        string         `json:"type" contract:"type,required"`
	Timestamp   string         `json:"timestamp" contract:"timestamp,required"`
	Location    *GeoJSONPoint  `json:"location" contract:"location"`
	Severity    string         `json:"severity" contract:"severity,required"`
	Description string         `json:"description" contract:"description,required"`
	Metadata    map[string]any `json:"metadata" contract:"metadata"`
}

// AssetEventGroup gathers the events raised by one camera or fire detector.
type AssetEventGroup struct {
	AssetID     string       `json:"assetId" contract:"asset_id,required"`
	AssetName   string       `json:"assetName" contract:"asset_name,required"`
	AssetType   string       `json:"assetType" contract:"asset_type,required"`
	EventCount  int          `json:"eventCount" contract:"event_count,required"`
	LatestEvent AssetEvent   `json:"latestEvent" contract:"latest_event,required"`
	EventIDs    []string     `json:"eventIds" contract:"event_ids,required"`
	Events      []AssetEvent `json:"events" contract:"events"`
}

type GroupedEventsResponse struct {
	Groups []AssetEventGroup `json:"groups" contract:"groups,required"`
	Count  int               `json:"count" contract:"count,required"`
}

// GroupFromAlert presents a fire alert as a single-event group for its
// location. The fire event, when given, contributes risk details to the metadata.
func GroupFromAlert(alert *Alert, fire *FireEvent) AssetEventGroup {
	metadata := map[string]any{}
	if fire != nil {
		metadata["fireEventId"] = fire.ID
		metadata["riskScore"] = fire.RiskScore
		metadata["fireCount"] = len(fire.Fires)
		if len(fire.Fires) > 0 && fire.Fires[0].SatelliteSource != nil {
			metadata["satelliteSource"] = *fire.Fires[0].SatelliteSource
		}
		if fire.FWI != nil {
			metadata["fwiValue"] = fire.FWI.Value
			metadata["fwiCategory"] = fire.FWI.Category
		}
		if fire.ScoreFactors != nil {
			metadata["distanceScore"] = fire.ScoreFactors.DistanceScore
			metadata["intensityScore"] = fire.ScoreFactors.IntensityScore
		}
	}
	return AssetEventGroup{
		AssetID:    alert.LocationID,
		AssetName:  alert.LocationName,
		AssetType:  "fire_detector",
		EventCount: 1,
		LatestEvent: AssetEvent{
			ID:          alert.ID,
			Type:        AlertTypeFireRisk,
			Timestamp:   alert.CreatedAt.UTC().Format(time.RFC3339),
			Severity:    alert.Severity,
			Description: alert.Message,
			Metadata:    metadata,
		},
		EventIDs: []string{alert.ID},
	}
}
