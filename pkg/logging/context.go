package logging

import "context"

type contextKey string

const runIDKey contextKey = "knapsack_run_id"

// WithRunID returns a context carrying the optimizer run ID, so every log
// entry emitted during the run can be correlated.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// GetRunID extracts the run ID from the context, if present.
func GetRunID(ctx context.Context) (string, bool) {
	runID, ok := ctx.Value(runIDKey).(string)
	return runID, ok
}
