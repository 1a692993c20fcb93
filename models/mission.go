package models

import (
	"slices"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/phylax/contracts/schema"
)

// Owner: mission-command-service.

type MissionStatus string

const (
	MissionStatusActive    MissionStatus = "active"
	MissionStatusCompleted MissionStatus = "completed"
	MissionStatusArchived  MissionStatus = "archived"
)

func (MissionStatus) Values() []string {
	return []string{string(MissionStatusActive), string(MissionStatusCompleted), string(MissionStatusArchived)}
}

func (s MissionStatus) IsValid() bool { return schema.IsMember(string(s), s.Values()) }

// IsTerminal reports whether no further operator work is expected.
func (s MissionStatus) IsTerminal() bool {
	switch s {
	case MissionStatusCompleted, MissionStatusArchived:
		return true
	default:
		return false
	}
}

// Mission priorities. Priority is an open string; these are the values in use.
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// Mission is an operator-managed incident with its correlated events, dispatches and assets.
type Mission struct {
	ID          string        `json:"id" contract:"id,required,bson=_id"`
	Title       string        `json:"title" contract:"title,required"`
	Description string        `json:"description" contract:"description,required"`
	Status      MissionStatus `json:"status" contract:"status,required" validate:"enum"`
	Priority    string        `json:"priority" contract:"priority,required"`

	ClaimedByOperatorID   *string    `json:"claimedByOperatorId" contract:"claimed_by_operator_id"`
	ClaimedByOperatorName *string    `json:"claimedByOperatorName" contract:"claimed_by_operator_name"`
	ClaimedAt             *time.Time `json:"claimedAt" contract:"claimed_at"`
	CompletedAt           *time.Time `json:"completedAt" contract:"completed_at"`
	CompletedByOperatorID *string    `json:"completedByOperatorId" contract:"completed_by_operator_id"`

	DispatchIDs []string `json:"dispatchIds" contract:"dispatch_ids,default=[]"`
	AssetIDs    []string `json:"assetIds" contract:"asset_ids,default=[]"`
	EventIDs    []string `json:"eventIds" contract:"event_ids,default=[]"`

	// Centroid of the mission's events and assets.
	Location *GeoLocation `json:"location" contract:"location"`

	Tags      []string  `json:"tags" contract:"tags,default=[]"`
	CreatedAt time.Time `json:"createdAt" contract:"created_at,required"`
	UpdatedAt time.Time `json:"updatedAt" contract:"updated_at,required"`
}

func (m *Mission) IsClaimed() bool { return m.ClaimedByOperatorID != nil }

func (m *Mission) HasAsset(assetID string) bool { return slices.Contains(m.AssetIDs, assetID) }

func init() {
	schema.RegisterRule("claimed_by", "claimed_at requires claimed_by_operator_id", func(sl validator.StructLevel) {
		m := sl.Current().Interface().(Mission)
		if m.ClaimedAt != nil && m.ClaimedByOperatorID == nil {
			sl.ReportError(m.ClaimedByOperatorID, "claimed_by_operator_id", "ClaimedByOperatorID", "claimed_by", "")
		}
	}, Mission{})
}

type CreateMissionRequest struct {
	Title       string       `json:"title" contract:"title,required"`
	Description string       `json:"description" contract:"description,required"`
	Priority    string       `json:"priority" contract:"priority,required"`
	DispatchID  string       `json:"dispatchId" contract:"dispatch_id,required"`
	Location    *GeoLocation `json:"location" contract:"location"`
}

// UpdateMissionRequest is a partial update; nil fields are left unchanged.
type UpdateMissionRequest struct {
	Title       *string  `json:"title" contract:"title"`
	Description *string  `json:"description" contract:"description"`
	Priority    *string  `json:"priority" contract:"priority"`
	Tags        []string `json:"tags" contract:"tags"`
}

type ClaimMissionRequest struct {
	OperatorID   string `json:"operatorId" contract:"operator_id,required"`
	OperatorName string `json:"operatorName" contract:"operator_name,required"`
}

type CompleteMissionRequest struct {
	OperatorID string `json:"operatorId" contract:"operator_id,required"`
}

type AddDispatchToMissionRequest struct {
	DispatchID string `json:"dispatchId" contract:"dispatch_id,required"`
}

// DirectCreateMissionRequest opens a mission without a prior dispatch.
type DirectCreateMissionRequest struct {
	Title       string       `json:"title" contract:"title,required"`
	Description string       `json:"description" contract:"description,required"`
	Priority    string       `json:"priority" contract:"priority,required"`
	EventID     *string      `json:"eventId" contract:"event_id"`
	Location    *GeoLocation `json:"location" contract:"location"`
}

// DispatchResponseSummary is a field agent's answer to a dispatch.
type DispatchResponseSummary struct {
	AssetID      string    `json:"assetId" contract:"asset_id,required"`
	AssetName    string    `json:"assetName" contract:"asset_name,required"`
	Accepted     bool      `json:"accepted" contract:"accepted,required"`
	ResponseTime time.Time `json:"responseTime" contract:"response_time,required"`
	Notes        *string   `json:"notes" contract:"notes"`
}

type EnrichedDispatch struct {
	ID          string                    `json:"id" contract:"id,required"`
	EventID     string                    `json:"eventId" contract:"event_id,required"`
	Description string                    `json:"description" contract:"description,required"`
	Status      string                    `json:"status" contract:"status,required"`
	Priority    string                    `json:"priority" contract:"priority,required"`
	Responses   []DispatchResponseSummary `json:"responses" contract:"responses,required"`
	CreatedAt   time.Time                 `json:"createdAt" contract:"created_at,required"`
}

// EnrichedMission is a read model: every Mission field inline plus its dispatches.
type EnrichedMission struct {
	Mission
	Dispatches []EnrichedDispatch `json:"dispatches" contract:"dispatches,required"`
}
