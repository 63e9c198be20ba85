package planrecorder

import (
	"context"

	"github.com/dinnerplans/menu-service/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.PlanResultRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordPlanRun(_ context.Context, _ domain.PlanRunRecord) error {
	return nil
}

func (n *noopRecorder) RecordDayOutcomes(_ context.Context, _ []domain.DayOutcomeRecord) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
