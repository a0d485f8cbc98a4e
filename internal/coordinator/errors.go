// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package coordinator

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/doculens/doculens/internal/apperror"
)

// toGRPCError translates an apperror.Error (or any error) into a gRPC
// status error using the kind-to-code mapping in internal/apperror.
func toGRPCError(err error) error {
	if appErr, ok := apperror.As(err); ok {
		return status.Error(appErr.GRPCCode(), appErr.Message)
	}
	return status.Error(codes.Internal, err.Error())
}
