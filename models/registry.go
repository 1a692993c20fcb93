package models

import (
	"fmt"
	"sort"

	"github.com/phylax/contracts/schema"
)

var registry = map[string]func() any{
	"Asset":                              func() any { return new(Asset) },
	"Mission":                            func() any { return new(Mission) },
	"CreateMissionRequest":               func() any { return new(CreateMissionRequest) },
	"UpdateMissionRequest":               func() any { return new(UpdateMissionRequest) },
	"ClaimMissionRequest":                func() any { return new(ClaimMissionRequest) },
	"CompleteMissionRequest":             func() any { return new(CompleteMissionRequest) },
	"AddDispatchToMissionRequest":        func() any { return new(AddDispatchToMissionRequest) },
	"DirectCreateMissionRequest":         func() any { return new(DirectCreateMissionRequest) },
	"DispatchResponseSummary":            func() any { return new(DispatchResponseSummary) },
	"EnrichedDispatch":                   func() any { return new(EnrichedDispatch) },
	"EnrichedMission":                    func() any { return new(EnrichedMission) },
	"TacticalCommand":                    func() any { return new(TacticalCommand) },
	"CommandTarget":                      func() any { return new(CommandTarget) },
	"CommandResponse":                    func() any { return new(CommandResponse) },
	"CommandStatusUpdate":                func() any { return new(CommandStatusUpdate) },
	"CreateTacticalCommandRequest":       func() any { return new(CreateTacticalCommandRequest) },
	"RespondToTacticalCommandRequest":    func() any { return new(RespondToTacticalCommandRequest) },
	"UpdateTacticalCommandStatusRequest": func() any { return new(UpdateTacticalCommandStatusRequest) },
	"TacticalCommandFilter":              func() any { return new(TacticalCommandFilter) },
	"Area":                               func() any { return new(Area) },
	"Location":                           func() any { return new(Location) },
	"CreateLocationRequest":              func() any { return new(CreateLocationRequest) },
	"UpdateLocationRequest":              func() any { return new(UpdateLocationRequest) },
	"CreateAreaRequest":                  func() any { return new(CreateAreaRequest) },
	"UpdateAreaRequest":                  func() any { return new(UpdateAreaRequest) },
	"GetLocationsRequest":                func() any { return new(GetLocationsRequest) },
	"Team":                               func() any { return new(Team) },
	"TeamWithAssets":                     func() any { return new(TeamWithAssets) },
	"Alert":                              func() any { return new(Alert) },
	"FireEvent":                          func() any { return new(FireEvent) },
	"MonitoredLocation":                  func() any { return new(MonitoredLocation) },
	"FireData":                           func() any { return new(FireData) },
	"BoundingBox":                        func() any { return new(BoundingBox) },
	"AuditLog":                           func() any { return new(AuditLog) },
	"User":                               func() any { return new(User) },
	"UserSession":                        func() any { return new(UserSession) },
	"MissionChatMessage":                 func() any { return new(MissionChatMessage) },
	"TypingStatus":                       func() any { return new(TypingStatus) },
	"SendMissionChatMessageRequest":      func() any { return new(SendMissionChatMessageRequest) },
	"UpdateTypingStatusRequest":          func() any { return new(UpdateTypingStatusRequest) },
	"MissionChatResponse":                func() any { return new(MissionChatResponse) },
	"AssetEventGroup":                    func() any { return new(AssetEventGroup) },
	"GroupedEventsResponse":              func() any { return new(GroupedEventsResponse) },
	"GeoPoint":                           func() any { return new(GeoPoint) },
	"GeoLocation":                        func() any { return new(GeoLocation) },
	"GridConfig":                         func() any { return new(GridConfig) },
	"CompositionStatus":                  func() any { return new(CompositionStatus) },
}

// Names lists the top-level contracts that can be built by name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns a pointer to a zero value of the named contract.
func New(name string) (any, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownContract)
	}
	return ctor(), nil
}

// Parse constructs the named contract from JSON in either naming.
func Parse(name string, data []byte) (any, error) {
	v, err := New(name)
	if err != nil {
		return nil, err
	}
	if err := schema.Decode(data, v); err != nil {
		return nil, err
	}
	return v, nil
}

func Describe(name string) (*schema.Descriptor, error) {
	v, err := New(name)
	if err != nil {
		return nil, err
	}
	return schema.Describe(v)
}
