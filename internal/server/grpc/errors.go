package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/storefront/internal/api"
	"github.com/dmitrijs2005/storefront/internal/common"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type errorClass struct {
	target error
	code   codes.Code
	reason string
}

// errorClasses is matched in order; ErrEmptyCart wraps ErrValidation and
// must come first.
var errorClasses = []errorClass{
	{common.ErrEmptyCart, codes.InvalidArgument, api.ReasonEmptyCart},
	{common.ErrPostChargeInconsistency, codes.Internal, api.ReasonPostChargeInconsistency},
	{common.ErrUnauthenticated, codes.Unauthenticated, api.ReasonUnauthenticated},
	{common.ErrInvalidCredential, codes.Unauthenticated, api.ReasonInvalidCredential},
	{common.ErrForbidden, codes.PermissionDenied, api.ReasonForbidden},
	{common.ErrInvalidOrExpiredToken, codes.FailedPrecondition, api.ReasonInvalidOrExpiredToken},
	{common.ErrPaymentFailed, codes.FailedPrecondition, api.ReasonPaymentFailed},
	{common.ErrConflict, codes.Aborted, api.ReasonConflict},
	{common.ErrorNotFound, codes.NotFound, api.ReasonNotFound},
	{common.ErrValidation, codes.InvalidArgument, api.ReasonValidation},
}

func newStatus(code codes.Code, msg, reason string) error {
	st := status.New(code, msg)
	if withInfo, err := st.WithDetails(&errdetails.ErrorInfo{Reason: reason, Domain: api.ErrorDomain}); err == nil {
		st = withInfo
	}
	return st.Err()
}

// toStatus converts a service error into a gRPC status. Internal failures
// are logged with their cause and reported to the client without it.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	for _, c := range errorClasses {
		if errors.Is(err, c.target) {
			if c.code == codes.Internal {
				s.logger.Error(ctx, "request failed", "reason", c.reason, "error", err)
			}
			return newStatus(c.code, err.Error(), c.reason)
		}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}

	s.logger.Error(ctx, "request failed", "error", err)
	return newStatus(codes.Internal, common.ErrorInternal.Error(), api.ReasonInternal)
}
