package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/cameportal/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodes = []struct {
	err  error
	code codes.Code
}{
	{common.ErrorValidation, codes.InvalidArgument},
	{common.ErrorEntityNotFound, codes.NotFound},
	{common.ErrorInvalidCredentials, codes.Unauthenticated},
	{common.ErrorNotFound, codes.NotFound},
	{common.ErrorAlreadyExists, codes.AlreadyExists},
	{common.ErrorUnauthorized, codes.Unauthenticated},
	{common.ErrInvalidToken, codes.Unauthenticated},
	{common.ErrorPartialWrite, codes.DataLoss},
	{common.ErrorStorageUnavailable, codes.Unavailable},
	{context.DeadlineExceeded, codes.DeadlineExceeded},
	{context.Canceled, codes.Canceled},
}

// toStatus converts a service error into a gRPC status. Unknown errors are
// reported as Internal without their text.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return status.Error(e.code, err.Error())
		}
	}
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
