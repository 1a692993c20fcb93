package models

import (
	"slices"
	"time"

	"github.com/phylax/contracts/schema"
)

// Owner: backend (team management).

type TeamStatus string

const (
	TeamStatusActive   TeamStatus = "active"
	TeamStatusInactive TeamStatus = "inactive"
	TeamStatusDeployed TeamStatus = "deployed"
)

func (TeamStatus) Values() []string {
	return []string{string(TeamStatusActive), string(TeamStatusInactive), string(TeamStatusDeployed)}
}

func (s TeamStatus) IsValid() bool { return schema.IsMember(string(s), s.Values()) }

// Team groups assets working together. LeaderID is expected to be one of
// AssetIDs; use LeaderIsMember to check, construction does not.
type Team struct {
	ID          string     `json:"id" contract:"id,required,bson=_id"`
	Name        string     `json:"name" contract:"name,required"`
	Description *string    `json:"description" contract:"description"`
	Status      TeamStatus `json:"status" contract:"status,required" validate:"enum"`
	Color       *string    `json:"color" contract:"color"`

	AssetIDs []string `json:"assetIds" contract:"asset_ids,default=[]"`
	LeaderID *string  `json:"leaderId" contract:"leader_id"`

	Capabilities []string     `json:"capabilities" contract:"capabilities,default=[]"`
	BaseLocation *GeoLocation `json:"baseLocation" contract:"base_location"`

	CreatedBy     string    `json:"createdBy" contract:"created_by,required"`
	CreatedByName string    `json:"createdByName" contract:"created_by_name,required"`
	CreatedAt     time.Time `json:"createdAt" contract:"created_at,required"`
	UpdatedAt     time.Time `json:"updatedAt" contract:"updated_at,required"`

	Metadata map[string]any `json:"metadata" contract:"metadata"`
}

// LeaderIsMember is true when there is no leader or the leader is a member.
func (t *Team) LeaderIsMember() bool {
	return t.LeaderID == nil || slices.Contains(t.AssetIDs, *t.LeaderID)
}

func (t *Team) HasMember(assetID string) bool { return slices.Contains(t.AssetIDs, assetID) }

// TeamWithAssets is a read model carrying the member assets inline.
type TeamWithAssets struct {
	Team
	Assets []Asset `json:"assets" contract:"assets,default=[]"`
}
