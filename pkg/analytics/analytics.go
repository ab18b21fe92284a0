// Package analytics exposes the event-emission seam the contact pipeline
// reports into. The default emitter writes structured log events; a real
// product-analytics sink can replace it without touching the usecase.
package analytics

import (
	"context"
	"log/slog"
)

// Event names emitted by the contact pipeline.
const (
	EventLeadSubmitted      = "lead_submitted"
	EventLeadHoneypot       = "lead_honeypot"
	EventLeadDispatchFailed = "lead_dispatch_failed"
)

// Emitter records a named event with optional properties. Implementations
// must not block the request path on delivery.
type Emitter interface {
	Emit(ctx context.Context, event string, props map[string]any)
}

// LogEmitter writes events as structured log lines.
type LogEmitter struct {
	log *slog.Logger
}

func NewLogEmitter(log *slog.Logger) *LogEmitter {
	return &LogEmitter{log: log}
}

func (e *LogEmitter) Emit(_ context.Context, event string, props map[string]any) {
	attrs := make([]any, 0, 2+2*len(props))
	attrs = append(attrs, "event", event)
	for k, v := range props {
		attrs = append(attrs, k, v)
	}
	e.log.Info("analytics event", attrs...)
}
