package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/phylax/contracts/events"
	"github.com/phylax/contracts/internal/auth"
	"github.com/phylax/contracts/internal/outbox"
	"github.com/phylax/contracts/models"
)

type fakeSink struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (f *fakeSink) Append(ctx context.Context, evt events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, evt)
	return nil
}

func newTestServer(sink EventSink) (http.Handler, *auth.Authenticator) {
	authenticator := auth.New("secret", time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(sink, authenticator, Options{RateLimitRPS: 1000, RateLimitBurst: 1000, Logger: logger}), authenticator
}

func do(t *testing.T, h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func tokenFor(t *testing.T, a *auth.Authenticator, role models.UserRole) string {
	t.Helper()
	token, _, err := a.IssueToken("u1", "Dana", role)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return token
}

const missionBody = `{"id":"m1","title":"Ridge fire","description":"...","status":"active","priority":"high",` +
	`"created_at":"2024-01-01T00:00:00Z","updatedAt":"2024-01-01T00:00:00Z"}`

func TestHealth(t *testing.T) {
	h, _ := newTestServer(outbox.NewMemory(10))
	rec := do(t, h, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["status"] != "ok" || resp["pending_events"] != float64(0) {
		t.Fatalf("unexpected health %v", resp)
	}
}

func TestListAndDescribeContracts(t *testing.T) {
	h, _ := newTestServer(&fakeSink{})
	rec := do(t, h, http.MethodGet, "/v1/contracts", "", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"TacticalCommand"`) {
		t.Fatalf("unexpected list %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodGet, "/v1/contracts/User", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Name   string `json:"name"`
		Fields []struct {
			Name     string `json:"name"`
			Wire     string `json:"wire"`
			Excluded bool   `json:"excluded"`
		} `json:"fields"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	var sawHash bool
	for _, f := range resp.Fields {
		if f.Name == "password_hash" {
			sawHash = f.Excluded
		}
	}
	if resp.Name != "User" || !sawHash {
		t.Fatalf("unexpected descriptor %+v", resp)
	}

	rec = do(t, h, http.MethodGet, "/v1/contracts/Spaceship", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestValidateContract(t *testing.T) {
	h, _ := newTestServer(&fakeSink{})

	rec := do(t, h, http.MethodPost, "/v1/contracts/Mission/validate", "", missionBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"createdAt":"2024-01-01T00:00:00Z"`) ||
		!strings.Contains(rec.Body.String(), `"dispatchIds":[]`) {
		t.Fatalf("expected canonical wire output, got %s", rec.Body.String())
	}

	rec = do(t, h, http.MethodPost, "/v1/contracts/Mission/validate?naming=internal", "", missionBody)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"created_at"`) {
		t.Fatalf("expected internal names, got %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodPost, "/v1/contracts/Mission/validate?naming=shouty", "", missionBody)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestValidateContractReportsField(t *testing.T) {
	h, _ := newTestServer(&fakeSink{})
	body := strings.Replace(missionBody, `"status":"active"`, `"status":"unknown"`, 1)
	rec := do(t, h, http.MethodPost, "/v1/contracts/Mission/validate", "", body)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != "invalid" || resp.Entity != "Mission" || resp.Field != "status" ||
		!strings.Contains(resp.Reason, "value not in allowed set") {
		t.Fatalf("unexpected error body %+v", resp)
	}
}

const chatEvent = `{"id":"e1","type":"mission_chat_message","timestamp":"2024-01-01T12:00:00Z","source":"backend",` +
	`"missionId":"m1","messageId":"c1","senderId":"u1","senderName":"Dana","senderRole":"operator","content":"moving"}`

func TestPublishEvent(t *testing.T) {
	sink := &fakeSink{}
	h, a := newTestServer(sink)

	rec := do(t, h, http.MethodPost, "/v1/events/mission_chat_message", tokenFor(t, a, models.RoleOperator), chatEvent)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(sink.events) != 1 {
		t.Fatalf("expected one queued event, got %d", len(sink.events))
	}
	evt := sink.events[0]
	if evt.Topic != events.Topics.MissionChat || evt.Type != events.MissionChatMessageEvent {
		t.Fatalf("unexpected envelope %+v", evt)
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["id"] != evt.ID || resp["topic"] != "mission-chat" {
		t.Fatalf("unexpected response %v", resp)
	}
}

func TestPublishEventAuth(t *testing.T) {
	sink := &fakeSink{}
	h, a := newTestServer(sink)

	rec := do(t, h, http.MethodPost, "/v1/events/mission_chat_message", "", chatEvent)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	rec = do(t, h, http.MethodPost, "/v1/events/mission_chat_message", tokenFor(t, a, models.RoleFieldAgent), chatEvent)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	rec = do(t, h, http.MethodPost, "/v1/events/mission_chat_message", "garbage", chatEvent)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if len(sink.events) != 0 {
		t.Fatalf("nothing should be queued, got %d", len(sink.events))
	}
}

func TestPublishEventRejects(t *testing.T) {
	h, a := newTestServer(&fakeSink{})
	token := tokenFor(t, a, models.RoleAdmin)

	rec := do(t, h, http.MethodPost, "/v1/events/camera_moved", token, chatEvent)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	body := strings.Replace(chatEvent, `,"content":"moving"`, "", 1)
	rec = do(t, h, http.MethodPost, "/v1/events/mission_chat_message", token, body)
	if rec.Code != http.StatusUnprocessableEntity || !strings.Contains(rec.Body.String(), `"field":"content"`) {
		t.Fatalf("expected 422 on content, got %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodPost, "/v1/events/chat_message", token, chatEvent)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for mismatched type, got %d", rec.Code)
	}
}

func TestPublishEventQueueFull(t *testing.T) {
	h, a := newTestServer(&fakeSink{err: outbox.ErrFull})
	rec := do(t, h, http.MethodPost, "/v1/events/mission_chat_message", tokenFor(t, a, models.RoleOperator), chatEvent)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestIssueToken(t *testing.T) {
	h, a := newTestServer(&fakeSink{})
	admin := tokenFor(t, a, models.RoleAdmin)

	body, _ := json.Marshal(map[string]string{"user_id": "u9", "name": "Sam", "role": "field_agent"})
	req := httptest.NewRequest(http.MethodPost, "/v1/tokens", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+admin)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	claims, err := a.ParseToken(resp["token"].(string))
	if err != nil || claims.Subject != "u9" || claims.Role != models.RoleFieldAgent {
		t.Fatalf("unexpected token claims %+v, %v", claims, err)
	}

	rec = do(t, h, http.MethodPost, "/v1/tokens", admin, `{"userId":"u9","name":"Sam","role":"captain"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for bad role, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodPost, "/v1/tokens", tokenFor(t, a, models.RoleOperator), string(body))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for operator, got %d", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	authenticator := auth.New("secret", time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewServer(&fakeSink{}, authenticator, Options{RateLimitRPS: 0.001, RateLimitBurst: 2, Logger: logger})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, do(t, h, http.MethodGet, "/healthz", "", "").Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected codes %v", codes)
	}
}
