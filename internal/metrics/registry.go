package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Registry holds the engine's domain metrics. With no meter provider
// installed the instruments are no-ops, so library callers pay nothing
// unless they wire up an exporter.
type Registry struct {
	meter metric.Meter

	// Batch metrics
	BatchDuration    metric.Float64Histogram
	RecordsValidated metric.Int64Counter

	// Verdict metrics
	CompliantCounter metric.Int64Counter
	ViolationCounter metric.Int64Counter
	DuplicateCounter metric.Int64Counter
	SoDCounter       metric.Int64Counter
}

// NewRegistry creates a metrics registry for the validation engine
func NewRegistry(meterName string) (*Registry, error) {
	meter := otel.Meter(meterName)
	r := &Registry{meter: meter}

	var err error

	r.BatchDuration, err = meter.Float64Histogram(
		"validation.batch.duration",
		metric.WithDescription("Duration of a full validation batch in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	r.RecordsValidated, err = meter.Int64Counter(
		"validation.records.total",
		metric.WithDescription("Credit-memo records validated"),
	)
	if err != nil {
		return nil, err
	}

	r.CompliantCounter, err = meter.Int64Counter(
		"validation.verdict.compliant",
		metric.WithDescription("Records whose final verdict is SOX Compliant"),
	)
	if err != nil {
		return nil, err
	}

	r.ViolationCounter, err = meter.Int64Counter(
		"validation.verdict.violation",
		metric.WithDescription("Records whose final verdict is SOX Violation, by risk level"),
	)
	if err != nil {
		return nil, err
	}

	r.DuplicateCounter, err = meter.Int64Counter(
		"validation.duplicates.total",
		metric.WithDescription("Records sharing a memo identifier with another record"),
	)
	if err != nil {
		return nil, err
	}

	r.SoDCounter, err = meter.Int64Counter(
		"validation.sod_violations.total",
		metric.WithDescription("Records where creator and approver are the same person"),
	)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// RecordBatch records batch-level metrics
func (r *Registry) RecordBatch(ctx context.Context, records int, duration time.Duration) {
	r.BatchDuration.Record(ctx, float64(duration.Milliseconds()))
	r.RecordsValidated.Add(ctx, int64(records))
}

// RecordVerdict records one record's final verdict
func (r *Registry) RecordVerdict(ctx context.Context, compliant bool, risk string) {
	if compliant {
		r.CompliantCounter.Add(ctx, 1)
		return
	}
	r.ViolationCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("risk", risk)))
}

// RecordDuplicate counts a duplicate-memo flag
func (r *Registry) RecordDuplicate(ctx context.Context) {
	r.DuplicateCounter.Add(ctx, 1)
}

// RecordSoDViolation counts a separation-of-duties violation
func (r *Registry) RecordSoDViolation(ctx context.Context) {
	r.SoDCounter.Add(ctx, 1)
}
