package httpware

import (
	"context"

	"github.com/uap-go/uaparser/core"
)

type contextKey struct{}

// WithContext attaches result to ctx under this package's context key.
func WithContext(ctx context.Context, result core.DefaultedResult) context.Context {
	return context.WithValue(ctx, contextKey{}, result)
}

// FromContext retrieves the DefaultedResult the Middleware attached to ctx,
// and whether one was present. A nil ctx or one the middleware never ran on
// reports false.
func FromContext(ctx context.Context) (core.DefaultedResult, bool) {
	if ctx == nil {
		return core.DefaultedResult{}, false
	}
	result, ok := ctx.Value(contextKey{}).(core.DefaultedResult)
	return result, ok
}
