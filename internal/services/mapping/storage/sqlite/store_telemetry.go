package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/simplemapping/simplemapping/internal/services/mapping/storage"
)

// AppendTelemetryEvent stores one operational event.
func (s *Store) AppendTelemetryEvent(ctx context.Context, event storage.TelemetryEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	if strings.TrimSpace(event.Name) == "" {
		return fmt.Errorf("event name is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO telemetry_events (name, severity, project_id, detail, timestamp)
		 VALUES (?, ?, ?, ?, ?)`,
		event.Name,
		event.Severity,
		event.ProjectID,
		event.Detail,
		toMillis(event.Timestamp),
	)
	if err != nil {
		return fmt.Errorf("append telemetry event: %w", err)
	}
	return nil
}
