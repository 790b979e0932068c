package apierr

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrUnknownParameter   = errors.New("unknown parameter")
	ErrUndefinedParameter = errors.New("undefined parameter")
	ErrIllegalParameter   = errors.New("illegal parameter value")

	// ErrNotFound is returned by repositories when a row does not exist.
	ErrNotFound = errors.New("not found")
)

// UnknownParameterError reports a key that is not in an endpoint's allow-list.
type UnknownParameterError struct {
	Key string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownParameter, e.Key)
}

func (e *UnknownParameterError) Is(target error) bool {
	return target == ErrUnknownParameter
}

// UndefinedParameterError reports a required parameter that was not supplied.
type UndefinedParameterError struct {
	Key string
}

func (e *UndefinedParameterError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUndefinedParameter, e.Key)
}

func (e *UndefinedParameterError) Is(target error) bool {
	return target == ErrUndefinedParameter
}

// IllegalParameterError reports a known key carrying a value of the wrong shape.
type IllegalParameterError struct {
	Key    string
	Value  any
	Reason string
}

func (e *IllegalParameterError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s for %q: %v", ErrIllegalParameter, e.Key, e.Value)
	}
	return fmt.Sprintf("%s for %q: %v (%s)", ErrIllegalParameter, e.Key, e.Value, e.Reason)
}

func (e *IllegalParameterError) Is(target error) bool {
	return target == ErrIllegalParameter
}

// GRPCStatus converts err into a gRPC status error.
func GRPCStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, ErrUnknownParameter),
		errors.Is(err, ErrUndefinedParameter),
		errors.Is(err, ErrIllegalParameter):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
