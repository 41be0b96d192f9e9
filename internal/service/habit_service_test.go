package service

import (
	"errors"
	"testing"
	"time"

	"habit_tracker_backend/internal/config"
	"habit_tracker_backend/internal/model"
	"habit_tracker_backend/internal/repository"
	"habit_tracker_backend/internal/util"
	"habit_tracker_backend/pkg/logger"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupService(t *testing.T) *HabitService {
	t.Helper()

	logger.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.Habit{}, &model.HabitEntry{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	return NewHabitService(
		repository.NewHabitRepository(db),
		repository.NewHabitEntryRepository(db),
		config.NewRuntime(&config.Config{}),
		nil,
	)
}

func TestCompleteHabitMissing(t *testing.T) {
	svc := setupService(t)

	err := svc.CompleteHabit(99, nil)
	if !errors.Is(err, util.ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound, got %v", err)
	}
}

func TestCompleteHabitDefaultsTimestamp(t *testing.T) {
	svc := setupService(t)

	id, err := svc.CreateHabit(HabitInput{Name: "晨跑", Frequency: model.FrequencyDaily, Priority: 2})
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	before := time.Now()
	if err := svc.CompleteHabit(id, nil); err != nil {
		t.Fatalf("failed to complete habit: %v", err)
	}

	entries, err := svc.ListEntries(id, 0)
	if err != nil {
		t.Fatalf("failed to list entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].CompletedAt.Before(before.Add(-time.Minute)) {
		t.Fatalf("expected completed_at to default to now, got %v", entries[0].CompletedAt)
	}
}

func TestListHabitsEnrichment(t *testing.T) {
	svc := setupService(t)

	id, err := svc.CreateHabit(HabitInput{
		Name:       "冥想",
		Frequency:  model.FrequencyCustom,
		TargetDays: []string{"monday", "wednesday"},
		Priority:   3,
		Category:   "mind",
	})
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	yesterday := time.Now().AddDate(0, 0, -1)
	if err := svc.CompleteHabit(id, &yesterday); err != nil {
		t.Fatalf("failed to complete habit: %v", err)
	}
	if err := svc.CompleteHabit(id, nil); err != nil {
		t.Fatalf("failed to complete habit: %v", err)
	}

	habits, err := svc.ListHabits()
	if err != nil {
		t.Fatalf("failed to list habits: %v", err)
	}
	if len(habits) != 1 {
		t.Fatalf("expected 1 habit, got %d", len(habits))
	}

	got := habits[0]
	if got.Streak != 2 {
		t.Fatalf("expected streak 2 for two consecutive days, got %d", got.Streak)
	}
	if len(got.Entries) != 2 {
		t.Fatalf("expected 2 entries in the window, got %d", len(got.Entries))
	}
	if len(got.TargetDays) != 2 || got.TargetDays[0] != "monday" {
		t.Fatalf("unexpected target days: %v", got.TargetDays)
	}
}

// 同一天重复打卡经过整个读路径后仍只计一天
func TestDuplicateSameDayCompletionsStreak(t *testing.T) {
	svc := setupService(t)

	id, err := svc.CreateHabit(HabitInput{Name: "喝水", Frequency: model.FrequencyDaily, Priority: 1})
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	yesterday := time.Now().AddDate(0, 0, -1)
	for _, at := range []*time.Time{nil, nil, &yesterday} {
		if err := svc.CompleteHabit(id, at); err != nil {
			t.Fatalf("failed to complete habit: %v", err)
		}
	}

	habit, err := svc.GetHabit(id)
	if err != nil {
		t.Fatalf("failed to fetch habit: %v", err)
	}
	if habit.Streak != 2 {
		t.Fatalf("expected streak 2 with duplicate same-day completions, got %d", habit.Streak)
	}
}

func TestUpdateHabitMissing(t *testing.T) {
	svc := setupService(t)

	err := svc.UpdateHabit(7, HabitInput{Name: "x", Frequency: model.FrequencyDaily, Priority: 1})
	if !errors.Is(err, util.ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound, got %v", err)
	}
}

func TestDeleteHabitMissing(t *testing.T) {
	svc := setupService(t)

	err := svc.DeleteHabit(7)
	if !errors.Is(err, util.ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound, got %v", err)
	}
}
