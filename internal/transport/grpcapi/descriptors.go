package grpcapi

import (
	"context"

	"google.golang.org/grpc"
)

const (
	contractService = "phylax.ContractService"
	eventService    = "phylax.EventService"
)

type ContractService interface {
	ListContracts(context.Context, *Empty) (*ListContractsResponse, error)
	DescribeContract(context.Context, *ContractRequest) (*DescribeContractResponse, error)
	ValidateContract(context.Context, *ValidateContractRequest) (*ValidateContractResponse, error)
}

type EventService interface {
	ListEventTypes(context.Context, *Empty) (*ListEventTypesResponse, error)
	PublishEvent(context.Context, *PublishEventRequest) (*PublishEventResponse, error)
}

var contractServiceDesc = grpc.ServiceDesc{
	ServiceName: contractService,
	HandlerType: (*ContractService)(nil),
	Methods: []grpc.MethodDesc{
		unary(contractService, "ListContracts", (*Server).ListContracts),
		unary(contractService, "DescribeContract", (*Server).DescribeContract),
		unary(contractService, "ValidateContract", (*Server).ValidateContract),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "phylax/contracts.proto",
}

var eventServiceDesc = grpc.ServiceDesc{
	ServiceName: eventService,
	HandlerType: (*EventService)(nil),
	Methods: []grpc.MethodDesc{
		unary(eventService, "ListEventTypes", (*Server).ListEventTypes),
		unary(eventService, "PublishEvent", (*Server).PublishEvent),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "phylax/contracts.proto",
}

func fullMethod(service, method string) string {
	return "/" + service + "/" + method
}

// unary builds the method descriptor that decodes Req, runs the interceptor chain
// and dispatches to call.
func unary[Req, Resp any](service, method string, call func(*Server, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	name := fullMethod(service, method)
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(*Server), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: name}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(*Server), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
