package models

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/phylax/contracts/schema"
)

func sampleCommand() TacticalCommand {
	return TacticalCommand{
		ID:           "tc1",
		MissionID:    "m1",
		MissionTitle: "Ridge fire",
		Title:        "Hold the firebreak",
		Description:  "Keep the north road open",
		Category:     TacticalCommandCategoryMovement,
		Targets: []CommandTarget{
			{TargetType: TargetTypeAsset, TargetID: "a1", TargetName: "Engine 7"},
			{TargetType: TargetTypeTeam, TargetID: "t1", TargetName: "Bravo"},
		},
		Destination: &TacticalGeoLocation{Lat: 37.8, Lng: -122.4, Name: ptr("North road")},
		Waypoints:   []TacticalGeoLocation{{Lat: 37.7, Lng: -122.5}},
		AreaOfOperation: &TacticalGeoArea{
			Type:   AreaShapeCircle,
			Center: &TacticalGeoLocation{Lat: 37.8, Lng: -122.4},
			Radius: ptr(500.0),
		},
		Priority: TacticalCommandPriorityImmediate,
		Status:   TacticalCommandStatusAccepted,
		Responses: []CommandResponse{{
			TargetID: "a1", TargetType: TargetTypeAsset, TargetName: "Engine 7", Decision: DecisionAccepted,
			RespondedBy: "u1", RespondedByName: "Sam", RespondedAt: t0.Add(2 * time.Minute),
		}},
		StatusHistory: []CommandStatusUpdate{
			{Status: TacticalCommandStatusPending, ChangedBy: "op-1", ChangedByName: "Dana", Timestamp: t0},
			{Status: TacticalCommandStatusAccepted, ChangedBy: "u1", ChangedByName: "Sam", Timestamp: t0.Add(2 * time.Minute)},
		},
		Source:        CommandSourceOperator,
		CreatedBy:     "op-1",
		CreatedByName: "Dana",
		CreatedAt:     t0,
		UpdatedAt:     t0.Add(2 * time.Minute),
		Metadata:      map[string]any{"origin": "console"},
	}
}

func TestTacticalCommandRoundTrip(t *testing.T) {
	in := sampleCommand()
	data, err := in.MarshalJSON()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var out TacticalCommand
	if err := out.UnmarshalJSON(data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch\n in: %+v\nout: %+v", in, out)
	}
}

func TestTacticalCommandTargets(t *testing.T) {
	c := sampleCommand()
	c.Targets = nil
	requireInvalid(t, schema.Validate(c), "targets", "at least 1")

	m, err := schema.ToMap(sampleCommand(), schema.WireNames)
	if err != nil {
		t.Fatalf("to map: %v", err)
	}
	m["targets"] = []any{}
	var out TacticalCommand
	requireInvalid(t, schema.DecodeMap(m, &out), "targets", "at least 1")

	m["targets"] = []any{
		map[string]any{"target_type": "asset", "target_id": "a1", "target_name": "Engine 7"},
		map[string]any{"target_type": "team", "target_name": "Bravo"},
	}
	requireInvalid(t, schema.DecodeMap(m, &out), "targets[1].target_id", schema.ReasonRequired)

	delete(m, "targets")
	requireInvalid(t, schema.DecodeMap(m, &out), "targets", schema.ReasonRequired)
}

func TestTacticalCommandHistoryTail(t *testing.T) {
	c := sampleCommand()
	c.Status = TacticalCommandStatusInProgress
	requireInvalid(t, schema.Validate(c), "status_history", "last entry must match status")

	c.StatusHistory = nil
	if err := schema.Validate(c); err != nil {
		t.Fatalf("empty history should pass: %v", err)
	}
}

func TestTacticalCommandEnums(t *testing.T) {
	m, err := schema.ToMap(sampleCommand(), schema.InternalNames)
	if err != nil {
		t.Fatalf("to map: %v", err)
	}
	for field, bad := range map[string]string{"category": "Movement", "priority": "urgent", "status": "done"} {
		in := make(map[string]any, len(m))
		for k, v := range m {
			in[k] = v
		}
		in[field] = bad
		var out TacticalCommand
		requireInvalid(t, schema.DecodeMap(in, &out), field, "value not in allowed set")
	}

	in := make(map[string]any, len(m))
	for k, v := range m {
		in[k] = v
	}
	in["status_history"] = []any{map[string]any{
		"status": "paused", "changed_by": "u1", "changed_by_name": "Sam", "timestamp": "2024-01-01T00:00:00Z",
	}}
	var out TacticalCommand
	requireInvalid(t, schema.DecodeMap(in, &out), "status_history[0].status", "value not in allowed set")
}

func TestTacticalCommandDuplicateResponses(t *testing.T) {
	c := sampleCommand()
	second := c.Responses[0]
	second.Decision = DecisionRejected
	c.Responses = append(c.Responses, second)

	if err := schema.Validate(c); err != nil {
		t.Fatalf("duplicates are not rejected on construction: %v", err)
	}
	dups := c.DuplicateResponses()
	if len(dups) != 1 || dups[0].Decision != DecisionRejected {
		t.Fatalf("expected the later response flagged, got %+v", dups)
	}
	if !c.HasResponseFrom("a1", TargetTypeAsset) || c.HasResponseFrom("t1", TargetTypeTeam) {
		t.Fatalf("unexpected HasResponseFrom results")
	}
	if !c.IsTargeted("t1", TargetTypeTeam) || c.IsTargeted("t1", TargetTypeAsset) {
		t.Fatalf("unexpected IsTargeted results")
	}
	fresh := sampleCommand()
	if got := fresh.DuplicateResponses(); len(got) != 0 {
		t.Fatalf("expected no duplicates, got %+v", got)
	}
}

func TestTacticalCommandStatusStages(t *testing.T) {
	prev := -1
	for _, s := range ValidStatuses() {
		if !IsValidStatus(s) {
			t.Fatalf("%s should be valid", s)
		}
		if s.Stage() < prev {
			t.Fatalf("%s goes backwards", s)
		}
		prev = s.Stage()
	}
	if TacticalCommandStatus("paused").Stage() != -1 || IsValidStatus("paused") {
		t.Fatalf("unknown status accepted")
	}
	if !TacticalCommandStatusCancelled.IsTerminal() || TacticalCommandStatusRejected.IsTerminal() {
		t.Fatalf("unexpected terminal statuses")
	}
	if !IsValidCategory(TacticalCommandCategoryOther) || IsValidCategory("Other") {
		t.Fatalf("category check is not exact")
	}
	if !IsValidPriority(TacticalCommandPriorityFlash) || len(ValidPriorities()) != 4 {
		t.Fatalf("unexpected priorities")
	}
	var legacy TacticalCommandType = TacticalCommandCategoryMedical
	if !legacy.IsValid() {
		t.Fatalf("alias should share the category vocabulary")
	}
}

func TestCreateTacticalCommandRequest(t *testing.T) {
	var req CreateTacticalCommandRequest
	err := req.UnmarshalJSON([]byte(`{"mission_id":"m1","title":"Sweep","description":"Sweep sector 4",
		"category":"surveillance","priority":"routine","target_name":" Engine 7, ,Bravo "}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if req.Source != CommandSourceOperator {
		t.Fatalf("expected default source, got %q", req.Source)
	}
	if got := req.TargetNameList(); !reflect.DeepEqual(got, []string{"Engine 7", "Bravo"}) {
		t.Fatalf("unexpected target names %v", got)
	}

	out, err := req.MarshalJSON()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(string(out), `"source":"operator"`) {
		t.Fatalf("expected source in output, got %s", out)
	}
}

func TestTacticalCommandFilter(t *testing.T) {
	var f TacticalCommandFilter
	if err := f.UnmarshalJSON([]byte(`{}`)); err != nil {
		t.Fatalf("empty filter: %v", err)
	}
	if err := f.UnmarshalJSON([]byte(`{"status":"pending","mission_id":"m1"}`)); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if f.Status == nil || *f.Status != TacticalCommandStatusPending {
		t.Fatalf("unexpected filter: %+v", f)
	}
	requireInvalid(t, f.UnmarshalJSON([]byte(`{"priority":"asap"}`)), "priority", "value not in allowed set")
}
