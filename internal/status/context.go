package status

import "context"

type reporterCtxKey struct{}

// WithReporter returns a copy of ctx carrying r.
func WithReporter(ctx context.Context, r Reporter) context.Context {
	return context.WithValue(ctx, reporterCtxKey{}, r)
}

// FromContext returns the Reporter stored in ctx, or fallback when there is
// none.
func FromContext(ctx context.Context, fallback Reporter) Reporter {
	if r, ok := ctx.Value(reporterCtxKey{}).(Reporter); ok && r != nil {
		return r
	}
	return fallback
}
