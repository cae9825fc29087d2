package service_test

import (
	"testing"

	"github.com/LeeJaeHyuck/calory-calendar/internal/model"
	"github.com/LeeJaeHyuck/calory-calendar/internal/service"
)

func TestProjectWeightOneKilogramDeficit(t *testing.T) {
	t.Parallel()
	settings := model.Settings{StartWeightKg: 60, TargetWeightKg: 55, GoalBurn: 770}

	p := service.ProjectWeight(7700, settings)
	if p.EstimatedWeightKg != 59.0 {
		t.Fatalf("a 7700 kcal deficit is exactly one kg: expected 59.0, got %v", p.EstimatedWeightKg)
	}
	if p.LostKg != 1.0 {
		t.Fatalf("expected 1.0 kg lost, got %v", p.LostKg)
	}
	if p.DaysToNextKg == nil || *p.DaysToNextKg != 10 {
		t.Fatalf("expected 10 days to next kg at 770 kcal/day, got %v", p.DaysToNextKg)
	}
	if p.DaysToGoal == nil || *p.DaysToGoal != 40 {
		t.Fatalf("expected 40 days to cover 4 kg at 770 kcal/day, got %v", p.DaysToGoal)
	}
	if p.GoalAchieved {
		t.Fatalf("4 kg above target is not achieved")
	}
}

func TestProjectWeightSurplusGainsWeight(t *testing.T) {
	t.Parallel()
	p := service.ProjectWeight(-3850, model.Settings{StartWeightKg: 60})
	if p.EstimatedWeightKg != 60.5 {
		t.Fatalf("a 3850 kcal surplus is half a kg gained: expected 60.5, got %v", p.EstimatedWeightKg)
	}
	if p.LostKg != -0.5 {
		t.Fatalf("expected -0.5 kg lost, got %v", p.LostKg)
	}
}

func TestProjectWeightRounding(t *testing.T) {
	t.Parallel()
	p := service.ProjectWeight(1200, model.Settings{StartWeightKg: 70})
	// 1200/7700 = 0.1558... kg, estimate rounds to one decimal.
	if p.EstimatedWeightKg != 69.8 {
		t.Fatalf("expected 69.8, got %v", p.EstimatedWeightKg)
	}
}

func TestProjectWeightNoGoalBurnNoForecast(t *testing.T) {
	t.Parallel()
	p := service.ProjectWeight(7700, model.Settings{StartWeightKg: 60, TargetWeightKg: 55})
	if p.DaysToNextKg != nil || p.DaysToGoal != nil {
		t.Fatalf("no goalBurn means no day forecasts, got %+v", p)
	}
}

func TestProjectWeightGoalAchieved(t *testing.T) {
	t.Parallel()
	settings := model.Settings{StartWeightKg: 56, TargetWeightKg: 55, GoalBurn: 500}
	p := service.ProjectWeight(15400, settings) // 2 kg lost, past the target
	if !p.GoalAchieved {
		t.Fatalf("expected goal achieved at estimate %v vs target 55", p.EstimatedWeightKg)
	}
	if p.DaysToGoal == nil || *p.DaysToGoal != 0 {
		t.Fatalf("achieved goal clamps days-to-goal to 0, got %v", p.DaysToGoal)
	}
}

func TestBadgeAdjustedDaysToGoal(t *testing.T) {
	t.Parallel()
	settings := model.Settings{StartWeightKg: 60, TargetWeightKg: 55, GoalBurn: 770}
	// ceil(5*7700/770) = 50 days total.
	if got := service.BadgeAdjustedDaysToGoal(settings, 0); got != 50 {
		t.Fatalf("expected 50 days with no badges, got %d", got)
	}
	if got := service.BadgeAdjustedDaysToGoal(settings, 20); got != 30 {
		t.Fatalf("expected 30 days after 20 badges, got %d", got)
	}
	if got := service.BadgeAdjustedDaysToGoal(settings, 80); got != 0 {
		t.Fatalf("badge surplus clamps to 0, got %d", got)
	}
	if got := service.BadgeAdjustedDaysToGoal(model.Settings{GoalBurn: 0}, 5); got != 0 {
		t.Fatalf("no goalBurn yields 0, got %d", got)
	}
}
