package models

import "time"

// Owner: backend (fire event processing). Scores are conventionally 0-100.

type FWIInfo struct {
	Value    float64 `json:"value" contract:"value,required"`
	Category string  `json:"category" contract:"category,required"`
	Rating   int     `json:"rating" contract:"rating,required"`
}

type FireDetail struct {
	FireID          string   `json:"fire_id" contract:"fire_id,required"`
	Source          string   `json:"source" contract:"source,required"`
	SatelliteSource *string  `json:"satellite_source" contract:"satellite_source"`
	Distance        float64  `json:"distance" contract:"distance,required"`
	InFire          bool     `json:"in_fire" contract:"in_fire,required"`
	Intensity       *float64 `json:"intensity" contract:"intensity"`
	Confidence      *string  `json:"confidence" contract:"confidence"`
}

type ScoreFactors struct {
	DistanceScore   float64 `json:"distance_score" contract:"distance_score,required"`
	IntensityScore  float64 `json:"intensity_score" contract:"intensity_score,required"`
	ConfidenceScore float64 `json:"confidence_score" contract:"confidence_score,required"`
	FWIScore        float64 `json:"fwi_score" contract:"fwi_score,required"`
}

type FireEvent struct {
	ID           string        `json:"id" contract:"id,required,bson=_id"`
	LocationID   string        `json:"location_id" contract:"location_id,required"`
	LocationName string        `json:"location_name" contract:"location_name,required"`
	LocationType string        `json:"location_type" contract:"location_type,required"`
	EventType    string        `json:"event_type" contract:"event_type,required"`
	RiskLevel    string        `json:"risk_level" contract:"risk_level,required"`
	RiskScore    float64       `json:"risk_score" contract:"risk_score,required"`
	Fires        []FireDetail  `json:"fires" contract:"fires,default=[]"`
	FWI          *FWIInfo      `json:"fwi" contract:"fwi"`
	ScoreFactors *ScoreFactors `json:"score_factors" contract:"score_factors"`
	CreatedAt    time.Time     `json:"created_at" contract:"created_at,required"`
	UpdatedAt    time.Time     `json:"updated_at" contract:"updated_at,required"`
	Status       string        `json:"status" contract:"status,required"`
}

// ClosestFire returns the fire nearest to the monitored location, or nil.
func (e *FireEvent) ClosestFire() *FireDetail {
	var best *FireDetail
	for i := range e.Fires {
		if best == nil || e.Fires[i].Distance < best.Distance {
			best = &e.Fires[i]
		}
	}
	return best
}
