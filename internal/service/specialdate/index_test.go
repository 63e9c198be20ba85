package specialdate

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/dinnerplans/menu-service/internal/domain"
)

func TestIndex_Lookup_Hit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockSpecialDateRepository(ctrl)
	index := NewIndex(mockRepo)

	ctx := context.Background()
	christmas := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().GetByMonthDay(ctx, domain.MonthDay("1225")).Return("turkey-001", true, nil)

	mealID, found, err := index.Lookup(ctx, christmas)
	if err != nil {
		t.Fatalf("Lookup() error = %v, want nil", err)
	}
	if !found {
		t.Fatal("Lookup() found = false, want true")
	}
	if mealID != "turkey-001" {
		t.Errorf("Lookup() mealID = %q, want %q", mealID, "turkey-001")
	}
}

func TestIndex_Lookup_Miss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockSpecialDateRepository(ctrl)
	index := NewIndex(mockRepo)

	ctx := context.Background()
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().GetByMonthDay(ctx, domain.MonthDay("0314")).Return("", false, nil)

	mealID, found, err := index.Lookup(ctx, date)
	if err != nil {
		t.Fatalf("Lookup() error = %v, want nil", err)
	}
	if found {
		t.Errorf("Lookup() found = true with mealID %q, want false", mealID)
	}
}

func TestIndex_Lookup_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockSpecialDateRepository(ctrl)
	index := NewIndex(mockRepo)

	ctx := context.Background()

	mockRepo.EXPECT().GetByMonthDay(ctx, gomock.Any()).Return("", false, errors.New("store unavailable"))

	if _, _, err := index.Lookup(ctx, time.Now()); err == nil {
		t.Error("Lookup() error = nil, want error")
	}
}
