package models

import (
	"slices"
	"time"
)

// Owner: dispatch-asset-service.

// Asset statuses in use. Asset.Status is an open string: producers may emit
// values outside this list and consumers must tolerate them.
const (
	AssetStatusAvailable  = "available"
	AssetStatusDispatched = "dispatched"
	AssetStatusReturning  = "returning"
	AssetStatusOffline    = "offline"
)

var knownAssetStatuses = []string{AssetStatusAvailable, AssetStatusDispatched, AssetStatusReturning, AssetStatusOffline}

func IsKnownAssetStatus(status string) bool { return slices.Contains(knownAssetStatuses, status) }

// Asset is a unit that can be dispatched: a drone, vehicle, camera or field agent.
// Vitals are nil when they do not apply to the asset type.
type Asset struct {
	ID                  string         `json:"id" contract:"id,required,bson=_id"`
	Name                string         `json:"name" contract:"name,required"`
	Type                string         `json:"type" contract:"type,required"`
	Status              string         `json:"status" contract:"status,required"`
	UseCase             string         `json:"useCase" contract:"use_case,required"`
	TeamID              *string        `json:"teamId" contract:"team_id"`
	AssignedAreaIDs     []string       `json:"assignedAreaIds" contract:"assigned_area_ids"`
	Latitude            float64        `json:"latitude" contract:"latitude,required"`
	Longitude           float64        `json:"longitude" contract:"longitude,required"`
	Altitude            *float64       `json:"altitude" contract:"altitude"`
	BatteryLevel        *int           `json:"batteryLevel" contract:"battery_level"`
	Members             *int           `json:"members" contract:"members"`
	Vehicle             *string        `json:"vehicle" contract:"vehicle"`
	PulseRate           *int           `json:"pulseRate" contract:"pulse_rate"`
	OxygenLevel         *int           `json:"oxygenLevel" contract:"oxygen_level"`
	Location            *string        `json:"location" contract:"location"`
	DispatchTime        *time.Time     `json:"dispatchTime" contract:"dispatch_time"`
	EstimatedArrival    *time.Time     `json:"estimatedArrival" contract:"estimated_arrival"`
	LastUpdated         time.Time      `json:"lastUpdated" contract:"last_updated,required"`
	LastVitalUpdate     *time.Time     `json:"lastVitalUpdate" contract:"last_vital_update"`
	VideoSrc            *string        `json:"videoSrc" contract:"video_src"`
	Metadata            map[string]any `json:"metadata" contract:"metadata"`
	AutoPositionEnabled bool           `json:"autoPositionEnabled" contract:"auto_position_enabled,required"`
}

// Coordinate returns the asset position as a polygon-test point.
func (a *Asset) Coordinate() Coordinate {
	return Coordinate{Latitude: a.Latitude, Longitude: a.Longitude}
}

// HasPosition is false for assets still reporting the 0,0 placeholder.
func (a *Asset) HasPosition() bool { return a.Latitude != 0 || a.Longitude != 0 }
