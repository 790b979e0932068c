package auth

import (
	"context"

	"google.golang.org/grpc/metadata"
)

type ctxKey struct{}

const userIDHeader = "x-user-id"

// WithUserID stores the caller's user id on ctx.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// GetUserID reads the user id set by WithUserID, falling back to the
// x-user-id metadata header.
func GetUserID(ctx context.Context) string {
	if val, ok := ctx.Value(ctxKey{}).(string); ok && val != "" {
		return val
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if val := md.Get(userIDHeader); len(val) > 0 {
			return val[0]
		}
	}
	return ""
}

// OutgoingWithUserID attaches userID to outgoing gRPC metadata.
func OutgoingWithUserID(ctx context.Context, userID string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, userIDHeader, userID)
}
