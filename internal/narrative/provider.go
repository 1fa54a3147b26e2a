// Package narrative integrates an optional external summary service that
// turns rule-based recommendation reasons into a short narrative. The
// service may be absent, slow or broken; callers must always be able to
// fall back to the rule-based output.
package narrative

import (
	"context"
	"errors"
)

// ErrDisabled is returned by the noop provider when no narrative service
// is configured.
var ErrDisabled = errors.New("narrative enrichment disabled")

// SummaryItem is one recommendation handed to the narrative service.
type SummaryItem struct {
	Institution string   `json:"institution"`
	Reasons     []string `json:"reasons"`
}

// Provider produces a short human-readable summary for a ranked result
// set. Implementations must respect ctx cancellation.
type Provider interface {
	Summarize(ctx context.Context, studentName string, items []SummaryItem) (string, error)
}

// NoopProvider always reports that enrichment is disabled.
type NoopProvider struct{}

func (NoopProvider) Summarize(ctx context.Context, studentName string, items []SummaryItem) (string, error) {
	return "", ErrDisabled
}
