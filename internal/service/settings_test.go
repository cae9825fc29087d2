package service_test

import (
	"testing"

	"github.com/LeeJaeHyuck/calory-calendar/internal/model"
	"github.com/LeeJaeHyuck/calory-calendar/internal/service"
)

func TestSaveSettingsRecomputesGoalBurn(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	saved, err := service.SaveSettings(st, model.Settings{
		BMR:          1600,
		IntakeGoal:   1500,
		ExerciseGoal: 200,
		GoalBurn:     9999, // ignored: derived on every save
	})
	if err != nil {
		t.Fatalf("save settings: %v", err)
	}
	if saved.GoalBurn != 300 {
		t.Fatalf("expected goalBurn 1600+200-1500=300, got %d", saved.GoalBurn)
	}

	loaded, err := service.LoadSettings(st)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if loaded.GoalBurn != 300 {
		t.Fatalf("stored goalBurn drifted: got %d", loaded.GoalBurn)
	}
}

func TestSaveSettingsClampsNegativeGoalBurn(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	saved, err := service.SaveSettings(st, model.Settings{BMR: 1200, IntakeGoal: 2000})
	if err != nil {
		t.Fatalf("save settings: %v", err)
	}
	if saved.GoalBurn != 0 {
		t.Fatalf("goalBurn must clamp at 0, got %d", saved.GoalBurn)
	}
}

func TestSaveSettingsValidation(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	cases := []struct {
		name     string
		settings model.Settings
	}{
		{"negative bmr", model.Settings{BMR: -1}},
		{"negative intake goal", model.Settings{IntakeGoal: -10}},
		{"bad start date", model.Settings{DietStartDate: "03/15/2025"}},
		{"bad view mode", model.Settings{WeeklyViewMode: "weekly"}},
		{"bad report hour", model.Settings{ReportHour: 24}},
	}
	for _, tc := range cases {
		if _, err := service.SaveSettings(st, tc.settings); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	settings, err := service.LoadSettings(st)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if settings.WeeklyViewMode != model.ViewModeAll {
		t.Fatalf("expected default view mode %q, got %q", model.ViewModeAll, settings.WeeklyViewMode)
	}
	if settings.ReportHour != 21 {
		t.Fatalf("expected default report hour 21, got %d", settings.ReportHour)
	}
	if settings.GoalBurn != 0 {
		t.Fatalf("unconfigured goalBurn must be 0, got %d", settings.GoalBurn)
	}
}

func TestEstimateBMR(t *testing.T) {
	t.Parallel()
	male, err := service.EstimateBMR("male", 70, 175, 30)
	if err != nil {
		t.Fatalf("estimate male bmr: %v", err)
	}
	// 10*70 + 6.25*175 - 5*30 + 5 = 1648.75
	if male != 1649 {
		t.Fatalf("expected 1649, got %d", male)
	}

	female, err := service.EstimateBMR("f", 60, 165, 25)
	if err != nil {
		t.Fatalf("estimate female bmr: %v", err)
	}
	// 10*60 + 6.25*165 - 5*25 - 161 = 1345.25
	if female != 1345 {
		t.Fatalf("expected 1345, got %d", female)
	}

	if _, err := service.EstimateBMR("other", 60, 165, 25); err == nil {
		t.Fatalf("expected error for unknown gender")
	}
	if _, err := service.EstimateBMR("male", 0, 165, 25); err == nil {
		t.Fatalf("expected error for zero weight")
	}
}
