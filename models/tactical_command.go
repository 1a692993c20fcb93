package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/phylax/contracts/schema"
)

// Owner: mission-command-service.

type TacticalCommandStatus string

const (
	TacticalCommandStatusPendingApproval TacticalCommandStatus = "pending_approval"
	TacticalCommandStatusPending         TacticalCommandStatus = "pending"
	TacticalCommandStatusAccepted        TacticalCommandStatus = "accepted"
	TacticalCommandStatusRejected        TacticalCommandStatus = "rejected"
	TacticalCommandStatusInProgress      TacticalCommandStatus = "in_progress"
	TacticalCommandStatusCompleted       TacticalCommandStatus = "completed"
	TacticalCommandStatusCancelled       TacticalCommandStatus = "cancelled"
)

func ValidStatuses() []TacticalCommandStatus {
	return []TacticalCommandStatus{
		TacticalCommandStatusPendingApproval,
		TacticalCommandStatusPending,
		TacticalCommandStatusAccepted,
		TacticalCommandStatusRejected,
		TacticalCommandStatusInProgress,
		TacticalCommandStatusCompleted,
		TacticalCommandStatusCancelled,
	}
}

func IsValidStatus(status TacticalCommandStatus) bool { return status.IsValid() }

func (TacticalCommandStatus) Values() []string { return stringsOf(ValidStatuses()) }

func (s TacticalCommandStatus) IsValid() bool { return schema.IsMember(string(s), s.Values()) }

// Stage orders statuses along the command lifecycle: awaiting a decision (0),
// decided (1), executing (2), closed (3). Unknown statuses return -1.
func (s TacticalCommandStatus) Stage() int {
	switch s {
	case TacticalCommandStatusPendingApproval, TacticalCommandStatusPending:
		return 0
	case TacticalCommandStatusAccepted, TacticalCommandStatusRejected:
		return 1
	case TacticalCommandStatusInProgress:
		return 2
	case TacticalCommandStatusCompleted, TacticalCommandStatusCancelled:
		return 3
	default:
		return -1
	}
}

func (s TacticalCommandStatus) IsTerminal() bool { return s.Stage() == 3 }

type TacticalCommandCategory string

// TacticalCommandType is the older name for TacticalCommandCategory.
type TacticalCommandType = TacticalCommandCategory

const (
	TacticalCommandCategoryMovement      TacticalCommandCategory = "movement"
	TacticalCommandCategorySecurity      TacticalCommandCategory = "security"
	TacticalCommandCategorySurveillance  TacticalCommandCategory = "surveillance"
	TacticalCommandCategoryDispatch      TacticalCommandCategory = "dispatch"
	TacticalCommandCategoryCommunication TacticalCommandCategory = "communication"
	TacticalCommandCategoryMedical       TacticalCommandCategory = "medical"
	TacticalCommandCategoryEvacuation    TacticalCommandCategory = "evacuation"
	TacticalCommandCategorySupport       TacticalCommandCategory = "support"
	TacticalCommandCategoryInvestigation TacticalCommandCategory = "investigation"
	TacticalCommandCategoryOther         TacticalCommandCategory = "other"
)

func ValidCategories() []TacticalCommandCategory {
	return []TacticalCommandCategory{
		TacticalCommandCategoryMovement,
		TacticalCommandCategorySecurity,
		TacticalCommandCategorySurveillance,
		TacticalCommandCategoryDispatch,
		TacticalCommandCategoryCommunication,
		TacticalCommandCategoryMedical,
		TacticalCommandCategoryEvacuation,
		TacticalCommandCategorySupport,
		TacticalCommandCategoryInvestigation,
		TacticalCommandCategoryOther,
	}
}

func IsValidCategory(category TacticalCommandCategory) bool { return category.IsValid() }

func (TacticalCommandCategory) Values() []string { return stringsOf(ValidCategories()) }

func (c TacticalCommandCategory) IsValid() bool { return schema.IsMember(string(c), c.Values()) }

type TacticalCommandPriority string

const (
	TacticalCommandPriorityRoutine   TacticalCommandPriority = "routine"
	TacticalCommandPriorityPriority  TacticalCommandPriority = "priority"
	TacticalCommandPriorityImmediate TacticalCommandPriority = "immediate"
	TacticalCommandPriorityFlash     TacticalCommandPriority = "flash"
)

func ValidPriorities() []TacticalCommandPriority {
	return []TacticalCommandPriority{
		TacticalCommandPriorityRoutine,
		TacticalCommandPriorityPriority,
		TacticalCommandPriorityImmediate,
		TacticalCommandPriorityFlash,
	}
}

func IsValidPriority(priority TacticalCommandPriority) bool { return priority.IsValid() }

func (TacticalCommandPriority) Values() []string { return stringsOf(ValidPriorities()) }

func (p TacticalCommandPriority) IsValid() bool { return schema.IsMember(string(p), p.Values()) }

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// Open vocabularies used by tactical commands.
const (
	TargetTypeAsset = "asset"
	TargetTypeTeam  = "team"

	DecisionAccepted = "accepted"
	DecisionRejected = "rejected"

	CommandSourceAI       = "ai"
	CommandSourceOperator = "operator"
)

type CommandTarget struct {
	TargetType string `json:"target_type" contract:"target_type,required"`
	TargetID   string `json:"target_id" contract:"target_id,required"`
	TargetName string `json:"target_name" contract:"target_name,required"`
}

type CommandResponse struct {
	TargetID        string    `json:"target_id" contract:"target_id,required"`
	TargetType      string    `json:"target_type" contract:"target_type,required"`
	TargetName      string    `json:"target_name" contract:"target_name,required"`
	Decision        string    `json:"decision" contract:"decision,required"`
	Notes           *string   `json:"notes" contract:"notes"`
	RespondedBy     string    `json:"responded_by" contract:"responded_by,required"`
	RespondedByName string    `json:"responded_by_name" contract:"responded_by_name,required"`
	RespondedAt     time.Time `json:"responded_at" contract:"responded_at,required"`
}

type CommandStatusUpdate struct {
	Status        TacticalCommandStatus `json:"status" contract:"status,required" validate:"enum"`
	ChangedBy     string                `json:"changed_by" contract:"changed_by,required"`
	ChangedByName string                `json:"changed_by_name" contract:"changed_by_name,required"`
	Timestamp     time.Time             `json:"timestamp" contract:"timestamp,required"`
	Notes         *string               `json:"notes" contract:"notes"`
}

// TacticalCommand is an order issued within a mission to one or more assets or teams.
// Destination, waypoints and area of operation are independent navigation aids.
type TacticalCommand struct {
	ID               string  `json:"id" contract:"id,required,bson=_id"`
	MissionID        string  `json:"mission_id" contract:"mission_id,required"`
	MissionTitle     string  `json:"mission_title" contract:"mission_title,required"`
	SituationSummary *string `json:"situation_summary" contract:"situation_summary"`

	Title       string                  `json:"title" contract:"title,required"`
	Description string                  `json:"description" contract:"description,required"`
	Category    TacticalCommandCategory `json:"category" contract:"category,required" validate:"enum"`

	Targets []CommandTarget `json:"targets" contract:"targets,required" validate:"min=1,dive"`

	Destination     *TacticalGeoLocation  `json:"destination" contract:"destination"`
	Waypoints       []TacticalGeoLocation `json:"waypoints" contract:"waypoints"`
	AreaOfOperation *TacticalGeoArea      `json:"area_of_operation" contract:"area_of_operation"`

	Objective *string                 `json:"objective" contract:"objective"`
	Priority  TacticalCommandPriority `json:"priority" contract:"priority,required" validate:"enum"`

	Status        TacticalCommandStatus `json:"status" contract:"status,required" validate:"enum"`
	Responses     []CommandResponse     `json:"responses" contract:"responses,default=[]"`
	StatusHistory []CommandStatusUpdate `json:"status_history" contract:"status_history,default=[]" validate:"dive"`

	Source        string         `json:"source" contract:"source,required"`
	CreatedBy     string         `json:"created_by" contract:"created_by,required"`
	CreatedByName string         `json:"created_by_name" contract:"created_by_name,required"`
	CreatedAt     time.Time      `json:"created_at" contract:"created_at,required"`
	UpdatedAt     time.Time      `json:"updated_at" contract:"updated_at,required"`
	Metadata      map[string]any `json:"metadata" contract:"metadata"`
}

func init() {
	schema.RegisterRule("history_tail", "last entry must match status", func(sl validator.StructLevel) {
		c := sl.Current().Interface().(TacticalCommand)
		if n := len(c.StatusHistory); n > 0 && c.StatusHistory[n-1].Status != c.Status {
			sl.ReportError(c.StatusHistory, "status_history", "StatusHistory", "history_tail", "")
		}
	}, TacticalCommand{})
}

// HasResponseFrom reports whether the target already answered.
func (c *TacticalCommand) HasResponseFrom(targetID, targetType string) bool {
	for _, r := range c.Responses {
		if r.TargetID == targetID && r.TargetType == targetType {
			return true
		}
	}
	return false
}

// DuplicateResponses returns every response after the first from the same
// (target_id, target_type) pair. Rejecting them is left to the owning service.
func (c *TacticalCommand) DuplicateResponses() []CommandResponse {
	type key struct{ id, typ string }
	seen := make(map[key]bool, len(c.Responses))
	var dups []CommandResponse
	for _, r := range c.Responses {
		k := key{r.TargetID, r.TargetType}
		if seen[k] {
			dups = append(dups, r)
			continue
		}
		seen[k] = true
	}
	return dups
}

// IsTargeted reports whether the asset or team is among the command targets.
func (c *TacticalCommand) IsTargeted(targetID, targetType string) bool {
	for _, t := range c.Targets {
		if t.TargetID == targetID && t.TargetType == targetType {
			return true
		}
	}
	return false
}

// CreateTacticalCommandRequest accepts targets either as records or, from AI
// flows that cannot build them, as a comma-separated TargetName.
type CreateTacticalCommandRequest struct {
	MissionID        string                  `json:"mission_id" contract:"mission_id,required"`
	Title            string                  `json:"title" contract:"title,required"`
	Description      string                  `json:"description" contract:"description,required"`
	Category         TacticalCommandCategory `json:"category" contract:"category,required" validate:"enum"`
	Targets          []CommandTarget         `json:"targets" contract:"targets"`
	TargetName       *string                 `json:"target_name" contract:"target_name"`
	Destination      *TacticalGeoLocation    `json:"destination" contract:"destination"`
	Waypoints        []TacticalGeoLocation   `json:"waypoints" contract:"waypoints"`
	AreaOfOperation  *TacticalGeoArea        `json:"area_of_operation" contract:"area_of_operation"`
	Objective        *string                 `json:"objective" contract:"objective"`
	Priority         TacticalCommandPriority `json:"priority" contract:"priority,required" validate:"enum"`
	SituationSummary *string                 `json:"situation_summary" contract:"situation_summary"`
	Source           string                  `json:"source" contract:"source,default=operator"`
	Metadata         map[string]any          `json:"metadata" contract:"metadata"`
}

// TargetNameList splits TargetName on commas, dropping blanks.
func (r *CreateTacticalCommandRequest) TargetNameList() []string {
	if r.TargetName == nil {
		return nil
	}
	var names []string
	for _, n := range strings.Split(*r.TargetName, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

type RespondToTacticalCommandRequest struct {
	TargetID   string  `json:"target_id" contract:"target_id,required"`
	TargetType string  `json:"target_type" contract:"target_type,required"`
	Decision   string  `json:"decision" contract:"decision,required"`
	Notes      *string `json:"notes" contract:"notes"`
}

type UpdateTacticalCommandStatusRequest struct {
	Status TacticalCommandStatus `json:"status" contract:"status,required" validate:"enum"`
	Notes  *string               `json:"notes" contract:"notes"`
}

// TacticalCommandFilter holds optional list filters; enum filters are checked when set.
type TacticalCommandFilter struct {
	MissionID  *string                  `json:"mission_id" contract:"mission_id"`
	Status     *TacticalCommandStatus   `json:"status" contract:"status" validate:"omitempty,enum"`
	TargetID   *string                  `json:"target_id" contract:"target_id"`
	TargetType *string                  `json:"target_type" contract:"target_type"`
	Category   *TacticalCommandCategory `json:"category" contract:"category" validate:"omitempty,enum"`
	Priority   *TacticalCommandPriority `json:"priority" contract:"priority" validate:"omitempty,enum"`
	Source     *string                  `json:"source" contract:"source"`
}
