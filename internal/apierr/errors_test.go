package apierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, `unknown parameter: "Color"`, (&UnknownParameterError{Key: "Color"}).Error())
	assert.Equal(t, `undefined parameter: "Tags"`, (&UndefinedParameterError{Key: "Tags"}).Error())
	assert.Equal(t, `illegal parameter value for "Tags": 42 (expected a list of strings)`,
		(&IllegalParameterError{Key: "Tags", Value: 42, Reason: "expected a list of strings"}).Error())
}

func TestErrorsIs(t *testing.T) {
	wrapped := fmt.Errorf("list purchases: %w", &UnknownParameterError{Key: "Color"})
	assert.ErrorIs(t, wrapped, ErrUnknownParameter)
	assert.False(t, errors.Is(wrapped, ErrIllegalParameter))

	assert.ErrorIs(t, &UndefinedParameterError{Key: "x"}, ErrUndefinedParameter)
	assert.ErrorIs(t, &IllegalParameterError{Key: "x"}, ErrIllegalParameter)
}

func TestGRPCStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"unknown", &UnknownParameterError{Key: "Color"}, codes.InvalidArgument},
		{"undefined", &UndefinedParameterError{Key: "Tags"}, codes.InvalidArgument},
		{"illegal", &IllegalParameterError{Key: "Tags", Value: 1}, codes.InvalidArgument},
		{"not found", fmt.Errorf("purchase p-1: %w", ErrNotFound), codes.NotFound},
		{"other", errors.New("boom"), codes.Internal},
		{"already status", status.Error(codes.Unauthenticated, "missing user"), codes.Unauthenticated},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, status.Code(GRPCStatus(tc.err)))
		})
	}

	assert.NoError(t, GRPCStatus(nil))
}
