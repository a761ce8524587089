// Package service exposes the mapping operations behind plain request and
// response types, independent of any transport.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "github.com/simplemapping/simplemapping/internal/errors"
	"github.com/simplemapping/simplemapping/internal/id"
	"github.com/simplemapping/simplemapping/internal/platform/requestctx"
	"github.com/simplemapping/simplemapping/internal/services/mapping/storage"
	"github.com/simplemapping/simplemapping/internal/services/mapping/telemetry"
	"go.opentelemetry.io/otel/trace"
)

// Service coordinates mapping operations over one store.
type Service struct {
	store       storage.Store
	emitter     *telemetry.Emitter
	clock       func() time.Time
	idGenerator func() (string, error)
}

// New creates a Service with default clock and ID generation.
func New(store storage.Store, emitter *telemetry.Emitter) *Service {
	return &Service{
		store:       store,
		emitter:     emitter,
		clock:       time.Now,
		idGenerator: id.NewID,
	}
}

// notFound rewrites the storage sentinel into the operation's domain code.
func notFound(err error, code apperrors.Code, message string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperrors.New(code, message)
	}
	return err
}

// traceDetail prefixes detail with the active trace ID and acting user,
// when either is known.
func traceDetail(ctx context.Context, detail string) string {
	var parts []string
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		parts = append(parts, "trace="+sc.TraceID().String())
	}
	if actorID := requestctx.ActorIDFromContext(ctx); actorID != "" {
		parts = append(parts, "actor="+actorID)
	}
	if detail != "" {
		parts = append(parts, detail)
	}
	return strings.Join(parts, " ")
}
