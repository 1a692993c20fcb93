package httpapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phylax/contracts/events"
	"github.com/phylax/contracts/internal/auth"
	"github.com/phylax/contracts/models"
	"github.com/phylax/contracts/schema"
)

const maxBodyBytes = 1 << 20

// EventSink accepts validated envelopes for later publishing.
type EventSink interface {
	Append(ctx context.Context, evt events.Event) error
}

type Options struct {
	RateLimitRPS   float64
	RateLimitBurst int
	Logger         *slog.Logger
}

type Server struct {
	sink   EventSink
	auth   *auth.Authenticator
	logger *slog.Logger
}

func NewServer(sink EventSink, authenticator *auth.Authenticator, opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.RateLimitRPS <= 0 {
		opts.RateLimitRPS = 20
	}
	if opts.RateLimitBurst <= 0 {
		opts.RateLimitBurst = 40
	}
	s := &Server{sink: sink, auth: authenticator, logger: opts.Logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLog)
	r.Use(newRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst, 10*time.Minute).middleware(opts.Logger))

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/contracts", s.handleListContracts)
		r.Get("/contracts/{name}", s.handleDescribeContract)
		r.Post("/contracts/{name}/validate", s.handleValidateContract)
		r.Get("/events", s.handleListEventTypes)

		r.With(s.requireCapability(models.UserRole.CanAccessDashboard)).Post("/events/{type}", s.handlePublishEvent)
		r.With(s.requireCapability(models.UserRole.CanAccessAdminSettings)).Post("/tokens", s.handleIssueToken)
	})

	return r
}

func (s *Server) requireCapability(can func(models.UserRole) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.ExtractBearerToken(r.Header.Get("Authorization"))
			if token == "" {
				writeError(w, ErrUnauthorized)
				return
			}
			claims, err := s.auth.ParseToken(token)
			if err != nil {
				writeError(w, ErrUnauthorized)
				return
			}
			if !can(claims.Role) {
				writeError(w, ErrForbidden)
				return
			}
			ctx := auth.ContextWithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{"status": "ok"}
	if q, ok := s.sink.(interface{ Len() int }); ok {
		body["pending_events"] = q.Len()
	}
	respondJSON(w, http.StatusOK, body)
}

func (s *Server) handleListContracts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"contracts": models.Names()})
}

func (s *Server) handleDescribeContract(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	d, err := models.Describe(name)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"name":    d.Entity,
		"fields":  d.Summary(),
		"aliases": d.Aliases(),
	})
}

// handleValidateContract constructs the named contract from the body and echoes
// it back in canonical form.
func (s *Server) handleValidateContract(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	naming, err := schema.ParseNaming(r.URL.Query().Get("naming"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", ErrInvalid, err))
		return
	}
	body, err := readBody(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	v, err := models.Parse(name, body)
	if err != nil {
		writeError(w, err)
		return
	}
	out, err := schema.EncodeAs(v, naming)
	if err != nil {
		writeError(w, err)
		return
	}
	respondRaw(w, http.StatusOK, out)
}

func (s *Server) handleListEventTypes(w http.ResponseWriter, r *http.Request) {
	type entry struct {
		Type  events.EventType `json:"type"`
		Topic string           `json:"topic"`
	}
	types := events.Types()
	resp := make([]entry, 0, len(types))
	for _, t := range types {
		topic, _ := events.TopicFor(t)
		resp = append(resp, entry{Type: t, Topic: topic})
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePublishEvent(w http.ResponseWriter, r *http.Request) {
	eventType := events.EventType(chi.URLParam(r, "type"))
	body, err := readBody(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	payload, err := events.DecodePayload(eventType, body)
	if err != nil {
		writeError(w, err)
		return
	}
	evt, err := events.NewEvent(payload)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.sink.Append(r.Context(), evt); err != nil {
		s.logger.Error("queue event", slog.String("id", evt.ID), slog.Any("error", err))
		writeError(w, err)
		return
	}
	claims := mustClaims(r)
	s.logger.Info("event accepted",
		slog.String("id", evt.ID),
		slog.String("type", string(evt.Type)),
		slog.String("topic", evt.Topic),
		slog.String("by", claims.Subject))
	respondJSON(w, http.StatusAccepted, map[string]any{"id": evt.ID, "topic": evt.Topic})
}

type tokenRequest struct {
	UserID string          `json:"userId" contract:"user_id,required"`
	Name   string          `json:"name" contract:"name,required"`
	Role   models.UserRole `json:"role" contract:"role,required" validate:"enum"`
}

func (s *Server) handleIssueToken(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req tokenRequest
	if err := schema.Decode(body, &req); err != nil {
		writeError(w, err)
		return
	}
	token, exp, err := s.auth.IssueToken(req.UserID, req.Name, req.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"token":      token,
		"expires_at": exp,
	})
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return body, nil
}

func mustClaims(r *http.Request) *auth.Claims {
	claims, _ := auth.ClaimsFromContext(r.Context())
	return claims
}
