package requestid

import (
	"context"

	"github.com/google/uuid"
)

type contextKey struct{}

func Next() string {
	return uuid.New().String()
}

func ToContext(ctx context.Context, requestId string) context.Context {
	return context.WithValue(ctx, contextKey{}, requestId)
}

func FromContext(ctx context.Context) string {
	value, _ := ctx.Value(contextKey{}).(string)
	return value
}
