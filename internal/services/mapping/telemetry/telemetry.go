// Package telemetry records operational events emitted by the mapping service.
package telemetry

import (
	"context"
	"log"
	"time"

	"github.com/simplemapping/simplemapping/internal/services/mapping/storage"
)

// Event severities.
const (
	SeverityInfo  = "INFO"
	SeverityError = "ERROR"
)

// Emitter appends events to a telemetry store. A nil emitter or a nil
// store drops events, so callers never guard emission.
type Emitter struct {
	store storage.TelemetryStore
	now   func() time.Time
}

// NewEmitter builds an emitter over the given store. The store may be nil.
func NewEmitter(store storage.TelemetryStore, now func() time.Time) *Emitter {
	if now == nil {
		now = time.Now
	}
	return &Emitter{store: store, now: now}
}

// Emit records one event. Storage failures are logged, never surfaced;
// telemetry must not fail the operation it describes.
func (e *Emitter) Emit(ctx context.Context, name, severity, projectID, detail string) {
	if e == nil || e.store == nil {
		return
	}
	event := storage.TelemetryEvent{
		Name:      name,
		Severity:  severity,
		ProjectID: projectID,
		Detail:    detail,
		Timestamp: e.now().UTC(),
	}
	if err := e.store.AppendTelemetryEvent(ctx, event); err != nil {
		log.Printf("telemetry: append %s event: %v", name, err)
	}
}

// Info records an informational event.
func (e *Emitter) Info(ctx context.Context, name, projectID, detail string) {
	e.Emit(ctx, name, SeverityInfo, projectID, detail)
}

// Error records a failure event.
func (e *Emitter) Error(ctx context.Context, name, projectID, detail string) {
	e.Emit(ctx, name, SeverityError, projectID, detail)
}
