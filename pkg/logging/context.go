package logging

import "context"

type contextKey string

const runIDKey contextKey = "run_id"

// WithRunID annotates a context with the identifier of an experiment run.
// Every log entry emitted under the returned context carries the run id,
// which keeps interleaved output from parallel runs attributable.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// GetRunID extracts the run identifier from the context, if present.
func GetRunID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey).(string)
	return id, ok
}
