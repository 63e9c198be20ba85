package planrecorder

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/dinnerplans/menu-service/internal/domain"
)

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
}

// NewRecorder returns an InfluxDB-backed recorder, or the noop recorder when
// recording is disabled or not configured.
func NewRecorder(ctx context.Context, cfg *Config) (domain.PlanResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "plan result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, plan result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "plan result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
	}, nil
}

func (r *influxDBRecorder) RecordPlanRun(ctx context.Context, record domain.PlanRunRecord) error {
	point := influxdb2.NewPoint(
		"plan_run",
		map[string]string{
			"run_id": record.RunID,
		},
		map[string]any{
			"start_date":     record.StartDate.Format("2006-01-02"),
			"horizon_days":   record.HorizonDays,
			"assigned_count": record.AssignedCount,
			"skipped_count":  record.SkippedCount,
			"failed_count":   record.FailedCount,
			"duration_ms":    record.Duration.Milliseconds(),
		},
		time.Now(),
	)

	if err := r.writeAPI.WritePoint(ctx, point); err != nil {
		slog.WarnContext(ctx, "failed to write plan run to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("run_id", record.RunID),
		)
	}

	return nil
}

func (r *influxDBRecorder) RecordDayOutcomes(ctx context.Context, records []domain.DayOutcomeRecord) error {
	if len(records) == 0 {
		return nil
	}

	for _, record := range records {
		point := influxdb2.NewPoint(
			"plan_day_outcome",
			map[string]string{
				"run_id":  record.RunID,
				"outcome": record.Outcome,
			},
			map[string]any{
				"date":    record.Date.Format("2006-01-02"),
				"meal_id": record.MealID,
			},
			time.Now(),
		)

		if err := r.writeAPI.WritePoint(ctx, point); err != nil {
			slog.WarnContext(ctx, "failed to write day outcome to InfluxDB",
				slog.String("error", err.Error()),
				slog.String("run_id", record.RunID),
				slog.String("outcome", record.Outcome),
			)
		}
	}

	return nil
}

func (r *influxDBRecorder) Close() error {
	r.client.Close()
	return nil
}
