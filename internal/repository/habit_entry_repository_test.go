package repository

import (
	"testing"
	"time"

	"habit_tracker_backend/internal/model"
)

func TestFindRecentByHabitWindow(t *testing.T) {
	db := setupTestDB(t)
	entryRepo := NewHabitEntryRepository(db)

	habit := makeHabit(t, db, "喝水", 2, time.Now())

	inWindow := time.Now().AddDate(0, 0, -5)
	outOfWindow := time.Now().AddDate(0, 0, -40)
	for _, at := range []time.Time{inWindow, outOfWindow} {
		if err := entryRepo.Create(&model.HabitEntry{HabitID: habit.ID, CompletedAt: at}); err != nil {
			t.Fatalf("failed to create entry: %v", err)
		}
	}

	entries, err := entryRepo.FindRecentByHabit(habit.ID, 30)
	if err != nil {
		t.Fatalf("failed to list entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry within 30-day window, got %d", len(entries))
	}
	if !entries[0].CompletedAt.After(outOfWindow) {
		t.Fatalf("unexpected entry in window: %+v", entries[0])
	}
}

func TestFindDatesByHabitDescending(t *testing.T) {
	db := setupTestDB(t)
	entryRepo := NewHabitEntryRepository(db)

	habit := makeHabit(t, db, "背单词", 2, time.Now())

	times := []time.Time{
		time.Date(2025, 6, 8, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC),
	}
	for _, at := range times {
		if err := entryRepo.Create(&model.HabitEntry{HabitID: habit.ID, CompletedAt: at}); err != nil {
			t.Fatalf("failed to create entry: %v", err)
		}
	}

	dates, err := entryRepo.FindDatesByHabit(habit.ID)
	if err != nil {
		t.Fatalf("failed to list dates: %v", err)
	}
	if len(dates) != 3 {
		t.Fatalf("expected 3 dates, got %d", len(dates))
	}
	for i := 1; i < len(dates); i++ {
		if dates[i].After(dates[i-1]) {
			t.Fatalf("dates not in descending order: %v", dates)
		}
	}
}

func TestFindDatesByHabitScopedToHabit(t *testing.T) {
	db := setupTestDB(t)
	entryRepo := NewHabitEntryRepository(db)

	a := makeHabit(t, db, "a", 2, time.Now())
	b := makeHabit(t, db, "b", 2, time.Now())

	if err := entryRepo.Create(&model.HabitEntry{HabitID: a.ID, CompletedAt: time.Now()}); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	dates, err := entryRepo.FindDatesByHabit(b.ID)
	if err != nil {
		t.Fatalf("failed to list dates: %v", err)
	}
	if len(dates) != 0 {
		t.Fatalf("expected no dates for habit without entries, got %d", len(dates))
	}
}
