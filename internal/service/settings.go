package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/LeeJaeHyuck/calory-calendar/internal/model"
	"github.com/LeeJaeHyuck/calory-calendar/internal/store"
)

// LoadSettings returns the stored settings, or zero-valued defaults when
// nothing has been saved yet. Calculators that need goalBurn > 0 simply
// no-op against the defaults.
func LoadSettings(st *store.Store) (model.Settings, error) {
	settings, ok, err := st.Settings()
	if err != nil {
		return model.Settings{}, err
	}
	if !ok {
		return defaultSettings(), nil
	}
	if settings.WeeklyViewMode == "" {
		settings.WeeklyViewMode = model.ViewModeAll
	}
	return settings, nil
}

func defaultSettings() model.Settings {
	return model.Settings{
		WeeklyViewMode: model.ViewModeAll,
		ReportHour:     21,
	}
}

// SaveSettings validates and persists a settings snapshot. GoalBurn is always
// recomputed here; the stored field is a pure function of bmr, exerciseGoal
// and intakeGoal and never drifts.
func SaveSettings(st *store.Store, settings model.Settings) (model.Settings, error) {
	if settings.BMR < 0 {
		return model.Settings{}, fmt.Errorf("bmr must be >= 0")
	}
	if settings.IntakeGoal < 0 {
		return model.Settings{}, fmt.Errorf("intake goal must be >= 0")
	}
	if settings.ExerciseGoal < 0 {
		return model.Settings{}, fmt.Errorf("exercise goal must be >= 0")
	}
	if settings.MealLimitKcal < 0 {
		return model.Settings{}, fmt.Errorf("meal limit must be >= 0")
	}
	if settings.DietStartDate != "" {
		if _, err := ParseDate(settings.DietStartDate); err != nil {
			return model.Settings{}, err
		}
	}
	switch settings.WeeklyViewMode {
	case "":
		settings.WeeklyViewMode = model.ViewModeAll
	case model.ViewModeAll, model.ViewModePhotos, model.ViewModeCalories:
	default:
		return model.Settings{}, fmt.Errorf("invalid weekly view mode %q (use all, photos, calories)", settings.WeeklyViewMode)
	}
	if settings.ReportHour < 0 || settings.ReportHour > 23 {
		return model.Settings{}, fmt.Errorf("report hour must be between 0 and 23")
	}
	if settings.ReportMinute < 0 || settings.ReportMinute > 59 {
		return model.Settings{}, fmt.Errorf("report minute must be between 0 and 59")
	}

	settings.GoalBurn = GoalBurn(settings.BMR, settings.ExerciseGoal, settings.IntakeGoal)

	if err := st.SaveSettings(settings); err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}

// GoalBurn derives the daily target deficit from the goal fields.
func GoalBurn(bmr, exerciseGoal, intakeGoal int) int {
	burn := bmr + exerciseGoal - intakeGoal
	if burn < 0 {
		return 0
	}
	return burn
}

// EstimateBMR computes a Mifflin-St Jeor basal metabolic rate.
func EstimateBMR(gender string, weightKg, heightCm float64, ageYears int) (int, error) {
	if weightKg <= 0 || heightCm <= 0 || ageYears <= 0 {
		return 0, fmt.Errorf("weight, height, and age are all required")
	}
	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "male", "m":
		return int(math.Round(base + 5)), nil
	case "female", "f":
		return int(math.Round(base - 161)), nil
	default:
		return 0, fmt.Errorf("invalid gender %q (use male or female)", gender)
	}
}
