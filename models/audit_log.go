package models

import (
	"time"

	"github.com/phylax/contracts/schema"
)

// Owner: backend (audit logging).

type AuditActionType string

const (
	AuditMissionCreated   AuditActionType = "mission_created"
	AuditMissionClaimed   AuditActionType = "mission_claimed"
	AuditMissionCompleted AuditActionType = "mission_completed"
	AuditMissionArchived  AuditActionType = "mission_archived"
	AuditMissionDeleted   AuditActionType = "mission_deleted"

	AuditAssetStatusChanged AuditActionType = "asset_status_changed"

	AuditEventCorrelated AuditActionType = "event_correlated"
	AuditEventSuggested  AuditActionType = "event_suggested"
	AuditEventApproved   AuditActionType = "event_approved"
	AuditEventRejected   AuditActionType = "event_rejected"

	AuditOperatorOrder AuditActionType = "operator_order"
	AuditOperatorNote  AuditActionType = "operator_note"

	AuditCommandReceived  AuditActionType = "command_received"
	AuditCommandAccepted  AuditActionType = "command_accepted"
	AuditCommandDeclined  AuditActionType = "command_declined"
	AuditCommandStarted   AuditActionType = "command_started"
	AuditCommandCompleted AuditActionType = "command_completed"
)

var auditActionTypes = []AuditActionType{
	AuditMissionCreated, AuditMissionClaimed, AuditMissionCompleted, AuditMissionArchived, AuditMissionDeleted,
	AuditAssetStatusChanged,
	AuditEventCorrelated, AuditEventSuggested, AuditEventApproved, AuditEventRejected,
	AuditOperatorOrder, AuditOperatorNote,
	AuditCommandReceived, AuditCommandAccepted, AuditCommandDeclined, AuditCommandStarted, AuditCommandCompleted,
}

func (AuditActionType) Values() []string { return stringsOf(auditActionTypes) }

func (a AuditActionType) IsValid() bool { return schema.IsMember(string(a), a.Values()) }

// Actor types in use; AuditLog.ActorType is open.
const (
	ActorOperator = "operator"
	ActorAsset    = "asset"
	ActorAIAgent  = "ai_agent"
	ActorSystem   = "system"
)

// AuditLog is an append-only trail entry. Nothing in this package mutates one
// after construction.
type AuditLog struct {
	ID         string          `json:"id" contract:"id,required,bson=_id"`
	MissionID  string          `json:"missionId" contract:"mission_id,required"`
	Timestamp  time.Time       `json:"timestamp" contract:"timestamp,required"`
	ActionType AuditActionType `json:"actionType" contract:"action_type,required" validate:"enum"`
	ActorType  string          `json:"actorType" contract:"actor_type,required"`
	ActorID    string          `json:"actorId" contract:"actor_id,required"`
	ActorName  *string         `json:"actorName" contract:"actor_name"`
	TargetType *string         `json:"targetType" contract:"target_type"`
	TargetID   *string         `json:"targetId" contract:"target_id"`
	TargetName *string         `json:"targetName" contract:"target_name"`
	Action     string          `json:"action" contract:"action,required"`
	Details    map[string]any  `json:"details" contract:"details,required"`
	CreatedAt  time.Time       `json:"createdAt" contract:"created_at,required"`
}
