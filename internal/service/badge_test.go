package service_test

import (
	"testing"
	"time"

	"github.com/LeeJaeHyuck/calory-calendar/internal/model"
	"github.com/LeeJaeHyuck/calory-calendar/internal/service"
	"github.com/LeeJaeHyuck/calory-calendar/internal/store"
)

func TestEvaluateBadgesAwardsAndRevokes(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	settings := model.Settings{BMR: 1500, GoalBurn: 300, DietStartDate: "2025-03-10"}
	today := time.Date(2025, 3, 12, 10, 0, 0, 0, time.Local)

	mustSaveMeals(t, st, "2025-03-10", 1000) // net burn 500, met
	mustSaveMeals(t, st, "2025-03-11", 1400) // net burn 100, missed

	if err := service.EvaluateBadges(st, settings, today); err != nil {
		t.Fatalf("evaluate badges: %v", err)
	}
	assertBadge(t, st, "2025-03-10", true)
	assertBadge(t, st, "2025-03-11", false)
	// 2025-03-12 has no intake: net burn = bmr = 1500 >= 300, so an empty
	// day still earns its badge.
	assertBadge(t, st, "2025-03-12", true)

	// Editing a past day flips its badge on the next evaluation.
	mustSaveMeals(t, st, "2025-03-10", 1000, 900) // net burn -400 now
	mustSaveMeals(t, st, "2025-03-11", 500)       // net burn 1000 now
	if err := service.EvaluateBadges(st, settings, today); err != nil {
		t.Fatalf("re-evaluate badges: %v", err)
	}
	assertBadge(t, st, "2025-03-10", false)
	assertBadge(t, st, "2025-03-11", true)
}

func TestEvaluateBadgesIdempotent(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	settings := model.Settings{BMR: 1500, GoalBurn: 300, DietStartDate: "2025-03-10"}
	today := time.Date(2025, 3, 11, 0, 0, 0, 0, time.Local)

	mustSaveMeals(t, st, "2025-03-10", 800)
	for i := 0; i < 3; i++ {
		if err := service.EvaluateBadges(st, settings, today); err != nil {
			t.Fatalf("evaluate badges pass %d: %v", i, err)
		}
	}
	count, err := service.CountBadges(st, settings, today)
	if err != nil {
		t.Fatalf("count badges: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 badges after repeated evaluation, got %d", count)
	}
}

func TestEvaluateBadgesNoOpWithoutConfig(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	today := time.Date(2025, 3, 12, 0, 0, 0, 0, time.Local)

	mustSaveMeals(t, st, "2025-03-10", 500)
	if err := service.EvaluateBadges(st, model.Settings{BMR: 1500, GoalBurn: 300}, today); err != nil {
		t.Fatalf("evaluate without start date: %v", err)
	}
	if err := service.EvaluateBadges(st, model.Settings{BMR: 1500, DietStartDate: "2025-03-10"}, today); err != nil {
		t.Fatalf("evaluate without goal burn: %v", err)
	}
	keys, err := st.Keys("badge-")
	if err != nil {
		t.Fatalf("list badge keys: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("expected no badges written, got %v", keys)
	}
}

func TestYesterdayReport(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	settings := model.Settings{BMR: 1500, GoalBurn: 300, DietStartDate: "2025-03-01"}
	now := time.Date(2025, 3, 11, 8, 0, 0, 0, time.Local)

	mustSaveMeals(t, st, "2025-03-10", 1000)
	verdict, err := service.YesterdayReport(st, settings, now)
	if err != nil {
		t.Fatalf("yesterday report: %v", err)
	}
	if verdict == nil || !verdict.Success || verdict.Date != "2025-03-10" {
		t.Fatalf("expected successful verdict for 2025-03-10, got %+v", verdict)
	}

	mustSaveMeals(t, st, "2025-03-10", 1000, 800)
	verdict, err = service.YesterdayReport(st, settings, now)
	if err != nil {
		t.Fatalf("yesterday report after edit: %v", err)
	}
	if verdict == nil || verdict.Success {
		t.Fatalf("expected missed verdict after adding intake, got %+v", verdict)
	}
}

func TestYesterdayReportSkipsBeforeStart(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	settings := model.Settings{BMR: 1500, GoalBurn: 300, DietStartDate: "2025-03-11"}
	now := time.Date(2025, 3, 11, 8, 0, 0, 0, time.Local)

	verdict, err := service.YesterdayReport(st, settings, now)
	if err != nil {
		t.Fatalf("yesterday report: %v", err)
	}
	if verdict != nil {
		t.Fatalf("yesterday precedes the diet start, expected nil verdict")
	}
}

func assertBadge(t *testing.T, st *store.Store, date string, want bool) {
	t.Helper()
	got, err := st.HasBadge(date)
	if err != nil {
		t.Fatalf("has badge %s: %v", date, err)
	}
	if got != want {
		t.Fatalf("badge %s: got %v, want %v", date, got, want)
	}
}
