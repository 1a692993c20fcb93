package grpcapi

import (
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/phylax/contracts/events"
	"github.com/phylax/contracts/internal/outbox"
	"github.com/phylax/contracts/models"
	"github.com/phylax/contracts/schema"
)

// ErrorReason is the ErrorInfo reason attached to contract violations.
const ErrorReason = "CONTRACT_VALIDATION"

func mapError(err error) error {
	if cve, ok := schema.AsValidationError(err); ok {
		return validationStatus(cve)
	}
	switch {
	case errors.Is(err, models.ErrUnknownContract), errors.Is(err, events.ErrUnknownEventType):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, outbox.ErrFull):
		return status.Error(codes.Unavailable, "event queue full")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func validationStatus(cve *schema.ContractValidationError) error {
	st := status.New(codes.InvalidArgument, cve.Error())
	detailed, err := st.WithDetails(
		&errdetails.ErrorInfo{
			Reason:   ErrorReason,
			Domain:   "phylax",
			Metadata: map[string]string{"entity": cve.Entity},
		},
		&errdetails.BadRequest{
			FieldViolations: []*errdetails.BadRequest_FieldViolation{
				{Field: cve.Field, Description: cve.Reason},
			},
		},
	)
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}
