// Package telemetry records operational metrics through the
// OpenTelemetry metric API. Without a configured SDK the instruments
// are no-ops, so callers never need to guard on telemetry being wired.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/crm/backend"

// Metrics holds the instruments for the CRM hot paths
type Metrics struct {
	lookupTotal    metric.Int64Counter
	lookupDuration metric.Float64Histogram
	duplicateTotal metric.Int64Counter
	submitTotal    metric.Int64Counter
}

// NewMetrics creates the CRM instruments on the global meter provider
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)

	lookupTotal, err := meter.Int64Counter("crm_postal_lookup_total",
		metric.WithDescription("Total number of postal-code lookups"),
		metric.WithUnit("{lookups}"))
	if err != nil {
		return nil, err
	}

	lookupDuration, err := meter.Float64Histogram("crm_postal_lookup_duration_seconds",
		metric.WithDescription("Postal-code lookup latency"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	duplicateTotal, err := meter.Int64Counter("crm_duplicate_check_total",
		metric.WithDescription("Total number of natural-key duplicate checks"),
		metric.WithUnit("{checks}"))
	if err != nil {
		return nil, err
	}

	submitTotal, err := meter.Int64Counter("crm_form_submit_total",
		metric.WithDescription("Total number of form submissions"),
		metric.WithUnit("{submissions}"))
	if err != nil {
		return nil, err
	}

	return &Metrics{
		lookupTotal:    lookupTotal,
		lookupDuration: lookupDuration,
		duplicateTotal: duplicateTotal,
		submitTotal:    submitTotal,
	}, nil
}

// RecordLookup records one postal-code lookup and its outcome
func (m *Metrics) RecordLookup(ctx context.Context, outcome string, elapsed time.Duration) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	m.lookupTotal.Add(ctx, 1, attrs)
	m.lookupDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// RecordDuplicateCheck records one natural-key check
func (m *Metrics) RecordDuplicateCheck(ctx context.Context, schema string, duplicate bool) {
	m.duplicateTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("schema", schema),
		attribute.Bool("duplicate", duplicate),
	))
}

// RecordSubmit records one form submission and its status
func (m *Metrics) RecordSubmit(ctx context.Context, schema, status string) {
	m.submitTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("schema", schema),
		attribute.String("status", status),
	))
}
