package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const menuTracerName = "github.com/dinnerplans/menu-service/internal/service/planner"

func MenuTracer() trace.Tracer {
	return otel.Tracer(menuTracerName)
}

func StartHorizonSpan(ctx context.Context, startDate time.Time, numDays int) (context.Context, trace.Span) {
	return MenuTracer().Start(ctx, "menu.plan_horizon",
		trace.WithAttributes(
			attribute.String("horizon.start_date", startDate.Format("2006-01-02")),
			attribute.Int("horizon.days", numDays),
		),
	)
}

func StartChooseSpan(ctx context.Context, date time.Time) (context.Context, trace.Span) {
	return MenuTracer().Start(ctx, "menu.choose_for_date",
		trace.WithAttributes(
			attribute.String("choose.date", date.Format("2006-01-02")),
		),
	)
}

func RecordHorizonResult(span trace.Span, assigned, skipped, failed int) {
	span.SetAttributes(
		attribute.Int("horizon.assigned_count", assigned),
		attribute.Int("horizon.skipped_count", skipped),
		attribute.Int("horizon.failed_count", failed),
	)
	if failed > 0 {
		span.SetStatus(codes.Error, "one or more days failed")
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func RecordChooseResult(span trace.Span, mealID string, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetAttributes(attribute.String("choose.meal_id", mealID))
	span.SetStatus(codes.Ok, "")
}
