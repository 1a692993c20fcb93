package grpcapi

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/phylax/contracts/events"
	"github.com/phylax/contracts/internal/auth"
	"github.com/phylax/contracts/models"
	"github.com/phylax/contracts/schema"
)

// EventSink accepts validated envelopes for later publishing.
type EventSink interface {
	Append(ctx context.Context, evt events.Event) error
}

type Server struct {
	sink   EventSink
	auth   *auth.Authenticator
	logger *slog.Logger
}

// protected lists the methods that need a token and the capability they check.
var protected = map[string]func(models.UserRole) bool{
	fullMethod(eventService, "PublishEvent"): models.UserRole.CanAccessDashboard,
}

func NewServer(sink EventSink, authenticator *auth.Authenticator, logger *slog.Logger) *grpc.Server {
	if logger == nil {
		logger = slog.Default()
	}
	server := &Server{sink: sink, auth: authenticator, logger: logger}
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(server.logInterceptor, server.authInterceptor))

	grpcServer.RegisterService(&contractServiceDesc, server)
	grpcServer.RegisterService(&eventServiceDesc, server)

	return grpcServer
}

func (s *Server) logInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Info("rpc",
		slog.String("method", info.FullMethod),
		slog.String("code", status.Code(err).String()),
		slog.Duration("duration", time.Since(start)))
	return resp, err
}

func (s *Server) authInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	can, ok := protected[info.FullMethod]
	if !ok {
		return handler(ctx, req)
	}
	md, _ := metadata.FromIncomingContext(ctx)
	authHeader := ""
	if values := md.Get("authorization"); len(values) > 0 {
		authHeader = values[0]
	}
	token := auth.ExtractBearerToken(authHeader)
	if token == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}
	claims, err := s.auth.ParseToken(token)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}
	if !can(claims.Role) {
		return nil, status.Error(codes.PermissionDenied, "forbidden")
	}
	return handler(auth.ContextWithClaims(ctx, claims), req)
}

func (s *Server) ListContracts(ctx context.Context, _ *Empty) (*ListContractsResponse, error) {
	return &ListContractsResponse{Contracts: models.Names()}, nil
}

func (s *Server) DescribeContract(ctx context.Context, req *ContractRequest) (*DescribeContractResponse, error) {
	d, err := models.Describe(req.Name)
	if err != nil {
		return nil, mapError(err)
	}
	return &DescribeContractResponse{Name: d.Entity, Fields: d.Summary(), Aliases: d.Aliases()}, nil
}

func (s *Server) ValidateContract(ctx context.Context, req *ValidateContractRequest) (*ValidateContractResponse, error) {
	naming, err := schema.ParseNaming(req.Naming)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	v, err := models.Parse(req.Name, req.Body)
	if err != nil {
		return nil, mapError(err)
	}
	out, err := schema.EncodeAs(v, naming)
	if err != nil {
		return nil, mapError(err)
	}
	return &ValidateContractResponse{Body: out}, nil
}

func (s *Server) ListEventTypes(ctx context.Context, _ *Empty) (*ListEventTypesResponse, error) {
	types := events.Types()
	resp := &ListEventTypesResponse{Events: make([]EventRoute, 0, len(types))}
	for _, t := range types {
		topic, _ := events.TopicFor(t)
		resp.Events = append(resp.Events, EventRoute{Type: t, Topic: topic})
	}
	return resp, nil
}

func (s *Server) PublishEvent(ctx context.Context, req *PublishEventRequest) (*PublishEventResponse, error) {
	payload, err := events.DecodePayload(req.Type, req.Payload)
	if err != nil {
		return nil, mapError(err)
	}
	evt, err := events.NewEvent(payload)
	if err != nil {
		return nil, mapError(err)
	}
	if err := s.sink.Append(ctx, evt); err != nil {
		s.logger.Error("queue event", slog.String("id", evt.ID), slog.Any("error", err))
		return nil, mapError(err)
	}
	by := ""
	if claims, ok := auth.ClaimsFromContext(ctx); ok {
		by = claims.Subject
	}
	s.logger.Info("event accepted",
		slog.String("id", evt.ID),
		slog.String("type", string(evt.Type)),
		slog.String("topic", evt.Topic),
		slog.String("by", by))
	return &PublishEventResponse{ID: evt.ID, Topic: evt.Topic}, nil
}
