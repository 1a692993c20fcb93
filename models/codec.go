package models

import "github.com/phylax/contracts/schema"

// Every record encodes and decodes through package schema. Types that embed
// another record declare their own methods so the embedded ones are not promoted.

func (p GeoPoint) MarshalJSON() ([]byte, error) { return schema.Encode(p) }
func (p *GeoPoint) UnmarshalJSON(data []byte) error { return schema.Decode(data, p) }
func (p GeoPoint) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(p) }
func (p *GeoPoint) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, p) }

func (l GeoLocation) MarshalJSON() ([]byte, error) { return schema.Encode(l) }
func (l *GeoLocation) UnmarshalJSON(data []byte) error { return schema.Decode(data, l) }
func (l GeoLocation) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(l) }
func (l *GeoLocation) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, l) }

func (c Coordinate) MarshalJSON() ([]byte, error) { return schema.Encode(c) }
func (c *Coordinate) UnmarshalJSON(data []byte) error { return schema.Decode(data, c) }
func (c Coordinate) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(c) }
func (c *Coordinate) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, c) }

func (g GeoJSONPoint) MarshalJSON() ([]byte, error) { return schema.Encode(g) }
func (g *GeoJSONPoint) UnmarshalJSON(data []byte) error { return schema.Decode(data, g) }
func (g GeoJSONPoint) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(g) }
func (g *GeoJSONPoint) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, g) }

func (b BoundingBox) MarshalJSON() ([]byte, error) { return schema.Encode(b) }
func (b *BoundingBox) UnmarshalJSON(data []byte) error { return schema.Decode(data, b) }
func (b BoundingBox) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(b) }
func (b *BoundingBox) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, b) }

func (t TacticalGeoLocation) MarshalJSON() ([]byte, error) { return schema.Encode(t) }
func (t *TacticalGeoLocation) UnmarshalJSON(data []byte) error { return schema.Decode(data, t) }
func (t TacticalGeoLocation) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(t) }
func (t *TacticalGeoLocation) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, t) }

func (t TacticalGeoArea) MarshalJSON() ([]byte, error) { return schema.Encode(t) }
func (t *TacticalGeoArea) UnmarshalJSON(data []byte) error { return schema.Decode(data, t) }
func (t TacticalGeoArea) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(t) }
func (t *TacticalGeoArea) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, t) }

func (a Asset) MarshalJSON() ([]byte, error) { return schema.Encode(a) }
func (a *Asset) UnmarshalJSON(data []byte) error { return schema.Decode(data, a) }
func (a Asset) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(a) }
func (a *Asset) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, a) }

func (m Mission) MarshalJSON() ([]byte, error) { return schema.Encode(m) }
func (m *Mission) UnmarshalJSON(data []byte) error { return schema.Decode(data, m) }
func (m Mission) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(m) }
func (m *Mission) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, m) }

func (c CreateMissionRequest) MarshalJSON() ([]byte, error) { return schema.Encode(c) }
func (c *CreateMissionRequest) UnmarshalJSON(data []byte) error { return schema.Decode(data, c) }
func (c CreateMissionRequest) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(c) }
func (c *CreateMissionRequest) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, c) }

func (u UpdateMissionRequest) MarshalJSON() ([]byte, error) { return schema.Encode(u) }
func (u *UpdateMissionRequest) UnmarshalJSON(data []byte) error { return schema.Decode(data, u) }
func (u UpdateMissionRequest) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(u) }
func (u *UpdateMissionRequest) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, u) }

func (c ClaimMissionRequest) MarshalJSON() ([]byte, error) { return schema.Encode(c) }
func (c *ClaimMissionRequest) UnmarshalJSON(data []byte) error { return schema.Decode(data, c) }
func (c ClaimMissionRequest) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(c) }
func (c *ClaimMissionRequest) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, c) }

func (c CompleteMissionRequest) MarshalJSON() ([]byte, error) { return schema.Encode(c) }
func (c *CompleteMissionRequest) UnmarshalJSON(data []byte) error { return schema.Decode(data, c) }
func (c CompleteMissionRequest) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(c) }
func (c *CompleteMissionRequest) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, c) }

func (a AddDispatchToMissionRequest) MarshalJSON() ([]byte, error) { return schema.Encode(a) }
func (a *AddDispatchToMissionRequest) UnmarshalJSON(data []byte) error { return schema.Decode(data, a) }
func (a AddDispatchToMissionRequest) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(a) }
func (a *AddDispatchToMissionRequest) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, a) }

func (d DirectCreateMissionRequest) MarshalJSON() ([]byte, error) { return schema.Encode(d) }
func (d *DirectCreateMissionRequest) UnmarshalJSON(data []byte) error { return schema.Decode(data, d) }
func (d DirectCreateMissionRequest) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(d) }
func (d *DirectCreateMissionRequest) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, d) }

func (d DispatchResponseSummary) MarshalJSON() ([]byte, error) { return schema.Encode(d) }
func (d *DispatchResponseSummary) UnmarshalJSON(data []byte) error { return schema.Decode(data, d) }
func (d DispatchResponseSummary) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(d) }
func (d *DispatchResponseSummary) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, d) }

func (e EnrichedDispatch) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *EnrichedDispatch) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }
func (e EnrichedDispatch) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(e) }
func (e *EnrichedDispatch) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, e) }

func (e EnrichedMission) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *EnrichedMission) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }
func (e EnrichedMission) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(e) }
func (e *EnrichedMission) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, e) }

func (c CommandTarget) MarshalJSON() ([]byte, error) { return schema.Encode(c) }
func (c *CommandTarget) UnmarshalJSON(data []byte) error { return schema.Decode(data, c) }
func (c CommandTarget) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(c) }
func (c *CommandTarget) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, c) }

func (c CommandResponse) MarshalJSON() ([]byte, error) { return schema.Encode(c) }
func (c *CommandResponse) UnmarshalJSON(data []byte) error { return schema.Decode(data, c) }
func (c CommandResponse) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(c) }
func (c *CommandResponse) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, c) }

func (c CommandStatusUpdate) MarshalJSON() ([]byte, error) { return schema.Encode(c) }
func (c *CommandStatusUpdate) UnmarshalJSON(data []byte) error { return schema.Decode(data, c) }
func (c CommandStatusUpdate) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(c) }
func (c *CommandStatusUpdate) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, c) }

func (c TacticalCommand) MarshalJSON() ([]byte, error) { return schema.Encode(c) }
func (c *TacticalCommand) UnmarshalJSON(data []byte) error { return schema.Decode(data, c) }
func (c TacticalCommand) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(c) }
func (c *TacticalCommand) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, c) }

func (r CreateTacticalCommandRequest) MarshalJSON() ([]byte, error) { return schema.Encode(r) }
func (r *CreateTacticalCommandRequest) UnmarshalJSON(data []byte) error { return schema.Decode(data, r) }
func (r CreateTacticalCommandRequest) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(r) }
func (r *CreateTacticalCommandRequest) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, r) }

func (r RespondToTacticalCommandRequest) MarshalJSON() ([]byte, error) { return schema.Encode(r) }
func (r *RespondToTacticalCommandRequest) UnmarshalJSON(data []byte) error { return schema.Decode(data, r) }
func (r RespondToTacticalCommandRequest) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(r) }
func (r *RespondToTacticalCommandRequest) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, r) }

func (u UpdateTacticalCommandStatusRequest) MarshalJSON() ([]byte, error) { return schema.Encode(u) }
func (u *UpdateTacticalCommandStatusRequest) UnmarshalJSON(data []byte) error { return schema.Decode(data, u) }
func (u UpdateTacticalCommandStatusRequest) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(u) }
func (u *UpdateTacticalCommandStatusRequest) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, u) }

func (t TacticalCommandFilter) MarshalJSON() ([]byte, error) { return schema.Encode(t) }
func (t *TacticalCommandFilter) UnmarshalJSON(data []byte) error { return schema.Decode(data, t) }
func (t TacticalCommandFilter) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(t) }
func (t *TacticalCommandFilter) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, t) }

func (a Area) MarshalJSON() ([]byte, error) { return schema.Encode(a) }
func (a *Area) UnmarshalJSON(data []byte) error { return schema.Decode(data, a) }
func (a Area) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(a) }
func (a *Area) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, a) }

func (l Location) MarshalJSON() ([]byte, error) { return schema.Encode(l) }
func (l *Location) UnmarshalJSON(data []byte) error { return schema.Decode(data, l) }
func (l Location) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(l) }
func (l *Location) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, l) }

func (c CreateLocationRequest) MarshalJSON() ([]byte, error) { return schema.Encode(c) }
func (c *CreateLocationRequest) UnmarshalJSON(data []byte) error { return schema.Decode(data, c) }
func (c CreateLocationRequest) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(c) }
func (c *CreateLocationRequest) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, c) }

func (u UpdateLocationRequest) MarshalJSON() ([]byte, error) { return schema.Encode(u) }
func (u *UpdateLocationRequest) UnmarshalJSON(data []byte) error { return schema.Decode(data, u) }
func (u UpdateLocationRequest) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(u) }
func (u *UpdateLocationRequest) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, u) }

func (c CreateAreaRequest) MarshalJSON() ([]byte, error) { return schema.Encode(c) }
func (c *CreateAreaRequest) UnmarshalJSON(data []byte) error { return schema.Decode(data, c) }
func (c CreateAreaRequest) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(c) }
func (c *CreateAreaRequest) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, c) }

func (u UpdateAreaRequest) MarshalJSON() ([]byte, error) { return schema.Encode(u) }
func (u *UpdateAreaRequest) UnmarshalJSON(data []byte) error { return schema.Decode(data, u) }
func (u UpdateAreaRequest) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(u) }
func (u *UpdateAreaRequest) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, u) }

func (g GetLocationsRequest) MarshalJSON() ([]byte, error) { return schema.Encode(g) }
func (g *GetLocationsRequest) UnmarshalJSON(data []byte) error { return schema.Decode(data, g) }
func (g GetLocationsRequest) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(g) }
func (g *GetLocationsRequest) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, g) }

func (t Team) MarshalJSON() ([]byte, error) { return schema.Encode(t) }
func (t *Team) UnmarshalJSON(data []byte) error { return schema.Decode(data, t) }
func (t Team) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(t) }
func (t *Team) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, t) }

func (t TeamWithAssets) MarshalJSON() ([]byte, error) { return schema.Encode(t) }
func (t *TeamWithAssets) UnmarshalJSON(data []byte) error { return schema.Decode(data, t) }
func (t TeamWithAssets) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(t) }
func (t *TeamWithAssets) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, t) }

func (a Alert) MarshalJSON() ([]byte, error) { return schema.Encode(a) }
func (a *Alert) UnmarshalJSON(data []byte) error { return schema.Decode(data, a) }
func (a Alert) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(a) }
func (a *Alert) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, a) }

func (f FWIInfo) MarshalJSON() ([]byte, error) { return schema.Encode(f) }
func (f *FWIInfo) UnmarshalJSON(data []byte) error { return schema.Decode(data, f) }
func (f FWIInfo) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(f) }
func (f *FWIInfo) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, f) }

func (f FireDetail) MarshalJSON() ([]byte, error) { return schema.Encode(f) }
func (f *FireDetail) UnmarshalJSON(data []byte) error { return schema.Decode(data, f) }
func (f FireDetail) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(f) }
func (f *FireDetail) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, f) }

func (s ScoreFactors) MarshalJSON() ([]byte, error) { return schema.Encode(s) }
func (s *ScoreFactors) UnmarshalJSON(data []byte) error { return schema.Decode(data, s) }
func (s ScoreFactors) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(s) }
func (s *ScoreFactors) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, s) }

func (e FireEvent) MarshalJSON() ([]byte, error) { return schema.Encode(e) }
func (e *FireEvent) UnmarshalJSON(data []byte) error { return schema.Decode(data, e) }
func (e FireEvent) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(e) }
func (e *FireEvent) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, e) }

func (m MonitoredLocation) MarshalJSON() ([]byte, error) { return schema.Encode(m) }
func (m *MonitoredLocation) UnmarshalJSON(data []byte) error { return schema.Decode(data, m) }
func (m MonitoredLocation) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(m) }
func (m *MonitoredLocation) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, m) }

func (f FireData) MarshalJSON() ([]byte, error) { return schema.Encode(f) }
func (f *FireData) UnmarshalJSON(data []byte) error { return schema.Decode(data, f) }
func (f FireData) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(f) }
func (f *FireData) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, f) }

func (a AuditLog) MarshalJSON() ([]byte, error) { return schema.Encode(a) }
func (a *AuditLog) UnmarshalJSON(data []byte) error { return schema.Decode(data, a) }
func (a AuditLog) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(a) }
func (a *AuditLog) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, a) }

func (u User) MarshalJSON() ([]byte, error) { return schema.Encode(u) }
func (u *User) UnmarshalJSON(data []byte) error { return schema.Decode(data, u) }
func (u User) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(u) }
func (u *User) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, u) }

func (s UserSession) MarshalJSON() ([]byte, error) { return schema.Encode(s) }
func (s *UserSession) UnmarshalJSON(data []byte) error { return schema.Decode(data, s) }
func (s UserSession) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(s) }
func (s *UserSession) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, s) }

func (m MissionChatMessage) MarshalJSON() ([]byte, error) { return schema.Encode(m) }
func (m *MissionChatMessage) UnmarshalJSON(data []byte) error { return schema.Decode(data, m) }
func (m MissionChatMessage) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(m) }
func (m *MissionChatMessage) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, m) }

func (t TypingUser) MarshalJSON() ([]byte, error) { return schema.Encode(t) }
func (t *TypingUser) UnmarshalJSON(data []byte) error { return schema.Decode(data, t) }
func (t TypingUser) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(t) }
func (t *TypingUser) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, t) }

func (t TypingStatus) MarshalJSON() ([]byte, error) { return schema.Encode(t) }
func (t *TypingStatus) UnmarshalJSON(data []byte) error { return schema.Decode(data, t) }
func (t TypingStatus) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(t) }
func (t *TypingStatus) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, t) }

func (s SendMissionChatMessageRequest) MarshalJSON() ([]byte, error) { return schema.Encode(s) }
func (s *SendMissionChatMessageRequest) UnmarshalJSON(data []byte) error { return schema.Decode(data, s) }
func (s SendMissionChatMessageRequest) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(s) }
func (s *SendMissionChatMessageRequest) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, s) }

func (u UpdateTypingStatusRequest) MarshalJSON() ([]byte, error) { return schema.Encode(u) }
func (u *UpdateTypingStatusRequest) UnmarshalJSON(data []byte) error { return schema.Decode(data, u) }
func (u UpdateTypingStatusRequest) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(u) }
func (u *UpdateTypingStatusRequest) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, u) }

func (m MissionChatResponse) MarshalJSON() ([]byte, error) { return schema.Encode(m) }
func (m *MissionChatResponse) UnmarshalJSON(data []byte) error { return schema.Decode(data, m) }
func (m MissionChatResponse) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(m) }
func (m *MissionChatResponse) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, m) }

func (a AssetEvent) MarshalJSON() ([]byte, error) { return schema.Encode(a) }
func (a *AssetEvent) UnmarshalJSON(data []byte) error { return schema.Decode(data, a) }
func (a AssetEvent) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(a) }
func (a *AssetEvent) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, a) }

func (a AssetEventGroup) MarshalJSON() ([]byte, error) { return schema.Encode(a) }
func (a *AssetEventGroup) UnmarshalJSON(data []byte) error { return schema.Decode(data, a) }
func (a AssetEventGroup) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(a) }
func (a *AssetEventGroup) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, a) }

func (g GroupedEventsResponse) MarshalJSON() ([]byte, error) { return schema.Encode(g) }
func (g *GroupedEventsResponse) UnmarshalJSON(data []byte) error { return schema.Decode(data, g) }
func (g GroupedEventsResponse) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(g) }
func (g *GroupedEventsResponse) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, g) }

func (g GridSlot) MarshalJSON() ([]byte, error) { return schema.Encode(g) }
func (g *GridSlot) UnmarshalJSON(data []byte) error { return schema.Decode(data, g) }
func (g GridSlot) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(g) }
func (g *GridSlot) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, g) }

func (g GridConfig) MarshalJSON() ([]byte, error) { return schema.Encode(g) }
func (g *GridConfig) UnmarshalJSON(data []byte) error { return schema.Decode(data, g) }
func (g GridConfig) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(g) }
func (g *GridConfig) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, g) }

func (c CompositionStatus) MarshalJSON() ([]byte, error) { return schema.Encode(c) }
func (c *CompositionStatus) UnmarshalJSON(data []byte) error { return schema.Decode(data, c) }
func (c CompositionStatus) MarshalBSON() ([]byte, error) { return schema.EncodeBSON(c) }
func (c *CompositionStatus) UnmarshalBSON(data []byte) error { return schema.DecodeBSON(data, c) }
