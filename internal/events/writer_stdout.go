package events

import (
	"context"

	"go.uber.org/zap"
)

// StdoutWriter logs events instead of storing them. Selected with TRACKER_AUDIT_SINK=stdout.
type StdoutWriter struct{}

func (s *StdoutWriter) Write(ctx context.Context, e Event) error {
	fields := []any{"id", e.ID, "action", e.Action, "time", e.Time}
	if e.UserID != nil {
		fields = append(fields, "user_id", *e.UserID)
	}
	if e.Details != "" {
		fields = append(fields, "details", e.Details)
	}
	zap.S().Named("audit").Infow("event", fields...)
	return nil
}

func (s *StdoutWriter) Close(_ context.Context) error {
	return nil
}
