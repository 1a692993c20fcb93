package models

import (
	"errors"
	"reflect"
	"testing"

	"github.com/phylax/contracts/schema"
)

const (
	hawkJSON = `{"id":"a1","name":"Hawk 1","type":"drone","status":"available","useCase":"fire","teamId":"t1",` +
		`"assignedAreaIds":["ar1"],"latitude":34.05,"longitude":-118.25,"altitude":120.5,"batteryLevel":87,` +
		`"lastUpdated":"2024-01-01T00:00:00Z","metadata":{"model":"m300"},"autoPositionEnabled":false}`
	missionFields = `"id":"m1","title":"Ridge fire","description":"smoke on the ridge","status":"active","priority":"high",` +
		`"claimedByOperatorId":"op-1","claimedByOperatorName":"Dana","claimedAt":"2024-01-01T00:05:00Z",` +
		`"dispatchIds":["d1"],"location":{"type":"Point","coordinates":[-118.25,34.05]},` +
		`"createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-01-01T00:10:00Z"`
	responseSummaryJSON = `{"assetId":"a1","assetName":"Hawk 1","accepted":true,"responseTime":"2024-01-01T00:02:00Z","notes":"en route"}`
	enrichedDispatchJSON = `{"id":"d1","eventId":"e1","description":"check ridge","status":"pending","priority":"high",` +
		`"responses":[` + responseSummaryJSON + `],"createdAt":"2024-01-01T00:00:00Z"}`
	targetJSON   = `{"target_type":"asset","target_id":"a1","target_name":"Hawk 1"}`
	responseJSON = `{"target_id":"a1","target_type":"asset","target_name":"Hawk 1","decision":"accepted","notes":"copy",` +
		`"responded_by":"u2","responded_by_name":"Lee","responded_at":"2024-01-01T00:03:00Z"}`
	statusUpdateJSON = `{"status":"accepted","changed_by":"u2","changed_by_name":"Lee","timestamp":"2024-01-01T00:03:00Z"}`
	boundaryJSON     = `[{"latitude":0,"longitude":0},{"latitude":0,"longitude":1},{"latitude":1,"longitude":1}]`
	areaJSON         = `{"id":"ar1","name":"North ridge","boundary":` + boundaryJSON + `,"fillColor":"#ff0000","opacity":0.4,` +
		`"active":true,"createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-01-01T00:00:00Z"}`
	teamFields = `"id":"t1","name":"Alpha","status":"deployed","assetIds":["a1"],"leaderId":"a1","capabilities":["thermal"],` +
		`"baseLocation":{"type":"Point","coordinates":[-118.2,34.1]},"createdBy":"u1","createdByName":"Dana",` +
		`"createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-01-01T00:00:00Z"`
	chatMessageJSON = `{"id":"c1","missionId":"m1","senderId":"u1","senderName":"Dana","senderRole":"operator",` +
		`"content":"on my way","timestamp":"2024-01-01T00:00:00Z","createdAt":"2024-01-01T00:00:00Z"}`
	eventGroupJSON = `{"assetId":"loc1","assetName":"Ridge sensor","assetType":"fire_detector","eventCount":1,` +
		`"latestEvent":{"id":"al1","type":"fire_risk","timestamp":"2024-01-01T00:00:00Z","severity":"high",` +
		`"description":"fire nearby","location":{"coordinates":[-118.2,34.1]},"metadata":{"riskScore":0.8}},` +
		`"eventIds":["al1"]}`
)

// One valid document per registered contract. Defaulted fields are left out
// in some fixtures and set explicitly in others.
var contractFixtures = map[string]string{
	"Asset":                       hawkJSON,
	"Mission":                     `{` + missionFields + `}`,
	"CreateMissionRequest":        `{"title":"Ridge fire","description":"smoke","priority":"high","dispatchId":"d1","location":{"coordinates":[1,2]}}`,
	"UpdateMissionRequest":        `{"title":"Ridge fire (contained)","tags":["wildfire"]}`,
	"ClaimMissionRequest":         `{"operatorId":"op-1","operatorName":"Dana"}`,
	"CompleteMissionRequest":      `{"operatorId":"op-1"}`,
	"AddDispatchToMissionRequest": `{"dispatchId":"d2"}`,
	"DirectCreateMissionRequest":  `{"title":"Flood","description":"river over bank","priority":"critical","eventId":"e9"}`,
	"DispatchResponseSummary":     responseSummaryJSON,
	"EnrichedDispatch":            enrichedDispatchJSON,
	"EnrichedMission":             `{` + missionFields + `,"dispatches":[` + enrichedDispatchJSON + `]}`,
	"TacticalCommand": `{"id":"tc1","mission_id":"m1","mission_title":"Ridge fire","situation_summary":"fire moving east",` +
		`"title":"Hold the road","description":"block access","category":"security","targets":[` + targetJSON + `],` +
		`"destination":{"lat":34.1,"lng":-118.2,"name":"Gate 3"},"waypoints":[{"lat":34.0,"lng":-118.3}],` +
		`"area_of_operation":{"type":"circle","center":{"lat":34.1,"lng":-118.2},"radius":250},` +
		`"priority":"immediate","status":"accepted","responses":[` + responseJSON + `],` +
		`"status_history":[{"status":"pending","changed_by":"u1","changed_by_name":"Dana","timestamp":"2024-01-01T00:00:00Z"},` +
		statusUpdateJSON + `],"source":"operator","created_by":"u1","created_by_name":"Dana",` +
		`"created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-01T00:03:00Z","metadata":{"channel":"radio"}}`,
	"CommandTarget":       targetJSON,
	"CommandResponse":     responseJSON,
	"CommandStatusUpdate": statusUpdateJSON,
	"CreateTacticalCommandRequest": `{"mission_id":"m1","title":"Sweep","description":"sweep sector 4","category":"surveillance",` +
		`"target_name":"Hawk 1, Hawk 2","priority":"routine","source":""}`,
	"RespondToTacticalCommandRequest":    `{"target_id":"a1","target_type":"asset","decision":"rejected","notes":"low battery"}`,
	"UpdateTacticalCommandStatusRequest": `{"status":"in_progress"}`,
	"TacticalCommandFilter":              `{"mission_id":"m1","status":"pending","category":"medical","source":"ai"}`,
	"Area":                               areaJSON,
	"Location": `{"id":"loc1","name":"Ridge base","latitude":34.05,"longitude":-118.25,"areas":[` + areaJSON + `],` +
		`"tags":["base"],"active":true,"createdBy":"u1","createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-01-01T00:00:00Z"}`,
	"CreateLocationRequest": `{"name":"Ridge base","latitude":34.05,"longitude":-118.25,"useCase":"fire","active":true}`,
	"UpdateLocationRequest": `{"latitude":34.06,"tags":["moved"]}`,
	"CreateAreaRequest":     `{"name":"North ridge","boundary":` + boundaryJSON + `,"type":"perimeter"}`,
	"UpdateAreaRequest":     `{"name":"North ridge","active":false}`,
	"GetLocationsRequest":   `{"useCase":"fire","active":true}`,
	"Team":                  `{` + teamFields + `,"metadata":{"shift":"night"}}`,
	"TeamWithAssets":        `{` + teamFields + `,"assets":[` + hawkJSON + `]}`,
	"Alert": `{"id":"al1","type":"fire_risk","severity":"high","location_id":"loc1","location_name":"Ridge sensor",` +
		`"message":"fire nearby","fire_event_id":"fe1","created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-01T00:00:00Z",` +
		`"status":"acknowledged","acknowledged_at":"2024-01-01T00:01:00Z","acknowledged_by":"u1"}`,
	"FireEvent": `{"id":"fe1","location_id":"loc1","location_name":"Ridge sensor","location_type":"sensor",` +
		`"event_type":"fire_risk","risk_level":"high","risk_score":0.8,` +
		`"fires":[{"fire_id":"f1","source":"firms","satellite_source":"VIIRS","distance":1200.5,"in_fire":false,"confidence":"h"}],` +
		`"fwi":{"value":31.2,"category":"high","rating":4},` +
		`"score_factors":{"distance_score":0.7,"intensity_score":0.5,"confidence_score":0.9,"fwi_score":0.6},` +
		`"created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-01T00:00:00Z","status":"active"}`,
	"MonitoredLocation": `{"id":"loc1","name":"Ridge sensor","type":"sensor","location":{"type":"Point","coordinates":[-118.2,34.1]},"status":"active"}`,
	"FireData": `{"id":"fd1","source":"firms","source_type":"satellite","timestamp":"2024-01-01T00:00:00Z",` +
		`"location":{"coordinates":[-118.2,34.1]},"data":{"frp":12.5,"bright":true}}`,
	"BoundingBox": `{"west":-119,"south":33.5,"east":-117.5,"north":34.5}`,
	"AuditLog": `{"id":"l1","missionId":"m1","timestamp":"2024-01-01T00:00:00Z","actionType":"mission_claimed",` +
		`"actorType":"operator","actorId":"op-1","actorName":"Dana","targetId":"a1","action":"claimed",` +
		`"details":{"previous":null},"createdAt":"2024-01-01T00:00:00Z"}`,
	"User": `{"id":"u1","email":"dana@example.com","name":"Dana","role":"field_agent","assetId":"a1","active":true,` +
		`"createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-01-01T00:00:00Z","lastLoginAt":"2024-01-01T08:00:00Z"}`,
	"UserSession": `{"id":"s1","userId":"u1","token":"opaque","expiresAt":"2024-01-02T00:00:00Z",` +
		`"createdAt":"2024-01-01T00:00:00Z","ipAddress":"10.0.0.4"}`,
	"MissionChatMessage":            chatMessageJSON,
	"TypingStatus":                  `{"missionId":"m1","typingUsers":[{"userId":"u1","userName":"Dana"}]}`,
	"SendMissionChatMessageRequest": `{"content":"on my way"}`,
	"UpdateTypingStatusRequest":     `{"isTyping":false}`,
	"MissionChatResponse":           `{"messages":[` + chatMessageJSON + `],"totalCount":12,"hasMore":true}`,
	"AssetEventGroup":               eventGroupJSON,
	"GroupedEventsResponse":         `{"groups":[` + eventGroupJSON + `],"count":1}`,
	"GeoPoint":                      `{"coordinates":[-118.2,34.1]}`,
	"GeoLocation":                   `{"type":"Point","coordinates":[-118.2,34.1]}`,
	"GridConfig": `{"session_id":"g1","mission_id":"m1","slots":[{"camera_url":"rtsp://cam/1","position":0},` +
		`{"camera_url":"rtsp://cam/2","position":3}],"output_url":"rtmp://out/g1"}`,
	"CompositionStatus": `{"session_id":"g1","is_running":true,"start_time":"2024-01-01T00:00:00Z","restarts":0,` +
		`"encoder":"libx264","output_url":"rtmp://out/g1","profile":"Monitoring","bitrate_kbps":2500}`,
}

func TestEveryContractRoundTrips(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			fixture, ok := contractFixtures[name]
			if !ok {
				t.Fatalf("no fixture for registered contract %s", name)
			}
			in, err := Parse(name, []byte(fixture))
			if err != nil {
				t.Fatalf("parse fixture: %v", err)
			}
			for _, naming := range []schema.Naming{schema.WireNames, schema.InternalNames} {
				data, err := schema.EncodeAs(in, naming)
				if err != nil {
					t.Fatalf("encode: %v", err)
				}
				out, err := Parse(name, data)
				if err != nil {
					t.Fatalf("parse %s: %v", data, err)
				}
				if !reflect.DeepEqual(in, out) {
					t.Fatalf("round trip mismatch\n in: %+v\nout: %+v", in, out)
				}
			}
		})
	}
}

func TestEveryContractAcceptsBothSpellings(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			in, err := Parse(name, []byte(contractFixtures[name]))
			if err != nil {
				t.Fatalf("parse fixture: %v", err)
			}
			wire, err := schema.ToMap(in, schema.WireNames)
			if err != nil {
				t.Fatalf("wire map: %v", err)
			}
			internal, err := schema.ToMap(in, schema.InternalNames)
			if err != nil {
				t.Fatalf("internal map: %v", err)
			}
			a, _ := New(name)
			b, _ := New(name)
			if err := schema.DecodeMap(wire, a); err != nil {
				t.Fatalf("from wire keys: %v", err)
			}
			if err := schema.DecodeMap(internal, b); err != nil {
				t.Fatalf("from internal keys: %v", err)
			}
			if !reflect.DeepEqual(a, b) || !reflect.DeepEqual(a, in) {
				t.Fatalf("differs by key spelling\nwire:     %+v\ninternal: %+v", a, b)
			}
		})
	}
}

func TestFixturesMatchRegistry(t *testing.T) {
	for name := range contractFixtures {
		if _, err := New(name); errors.Is(err, ErrUnknownContract) {
			t.Fatalf("fixture %s names no registered contract", name)
		}
	}
}

func TestExplicitEmptySourceSurvives(t *testing.T) {
	v, err := Parse("CreateTacticalCommandRequest", []byte(contractFixtures["CreateTacticalCommandRequest"]))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := v.(*CreateTacticalCommandRequest).Source; got != "" {
		t.Fatalf("source = %q, want empty", got)
	}
	absent, err := Parse("CreateTacticalCommandRequest", []byte(`{"mission_id":"m1","title":"t","description":"d","category":"other","priority":"flash"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := absent.(*CreateTacticalCommandRequest).Source; got != CommandSourceOperator {
		t.Fatalf("source = %q, want %q", got, CommandSourceOperator)
	}
}
