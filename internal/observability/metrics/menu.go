package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	menuMeterName = "menu.service"

	// Day outcome labels recorded on the planning counter.
	OutcomeAssigned = "assigned"
	OutcomeSkipped  = "skipped"
	OutcomeFailed   = "failed"
)

type MenuMetrics struct {
	daysPlanned      metric.Int64Counter
	drawDuration     metric.Float64Histogram
	horizonDuration  metric.Float64Histogram
	specialDateHits  metric.Int64Counter
	rolloversApplied metric.Int64Counter
}

func NewMenuMetrics() (*MenuMetrics, error) {
	meter := otel.Meter(menuMeterName)

	daysPlanned, err := meter.Int64Counter(
		"menu_planned_days_total",
		metric.WithDescription("Horizon planning day outcomes"),
		metric.WithUnit("{day}"),
	)
	if err != nil {
		return nil, err
	}

	drawDuration, err := meter.Float64Histogram(
		"menu_draw_duration_seconds",
		metric.WithDescription("Time spent choosing a meal for a single date"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5,
		),
	)
	if err != nil {
		return nil, err
	}

	horizonDuration, err := meter.Float64Histogram(
		"menu_horizon_duration_seconds",
		metric.WithDescription("Duration of a full horizon planning run"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30,
		),
	)
	if err != nil {
		return nil, err
	}

	specialDateHits, err := meter.Int64Counter(
		"menu_special_date_hits_total",
		metric.WithDescription("Choices short-circuited by a special date override"),
		metric.WithUnit("{choice}"),
	)
	if err != nil {
		return nil, err
	}

	rolloversApplied, err := meter.Int64Counter(
		"menu_rollovers_total",
		metric.WithDescription("Daily rollover results"),
		metric.WithUnit("{rollover}"),
	)
	if err != nil {
		return nil, err
	}

	return &MenuMetrics{
		daysPlanned:      daysPlanned,
		drawDuration:     drawDuration,
		horizonDuration:  horizonDuration,
		specialDateHits:  specialDateHits,
		rolloversApplied: rolloversApplied,
	}, nil
}

func (m *MenuMetrics) RecordDayOutcome(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.daysPlanned.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *MenuMetrics) RecordDrawDuration(ctx context.Context, duration time.Duration) {
	if m == nil {
		return
	}
	m.drawDuration.Record(ctx, duration.Seconds())
}

func (m *MenuMetrics) RecordHorizonDuration(ctx context.Context, days int, duration time.Duration) {
	if m == nil {
		return
	}
	m.horizonDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.Int("horizon_days", days),
	))
}

func (m *MenuMetrics) RecordSpecialDateHit(ctx context.Context) {
	if m == nil {
		return
	}
	m.specialDateHits.Add(ctx, 1)
}

func (m *MenuMetrics) RecordRollover(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.rolloversApplied.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}
