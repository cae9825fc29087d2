package service

import (
	"math"

	"github.com/LeeJaeHyuck/calory-calendar/internal/model"
)

// KcalPerKg is the energy equivalent of one kilogram of body weight.
const KcalPerKg = 7700

// Projection is a point-in-time weight estimate derived from accumulated net
// burn. It is recomputed fresh from current totals on every use; nothing is
// persisted. DaysToNextKg and DaysToGoal are nil when goalBurn <= 0 (no daily
// deficit rate to project with).
type Projection struct {
	EstimatedWeightKg float64 `json:"estimated_weight_kg"`
	LostKg            float64 `json:"lost_kg"`
	DaysToNextKg      *int    `json:"days_to_next_kg,omitempty"`
	DaysToGoal        *int    `json:"days_to_goal,omitempty"`
	GoalAchieved      bool    `json:"goal_achieved"`
}

// ProjectWeight converts accumulated net burn into an estimated current
// weight and milestone forecasts. Positive totalNetBurn is a deficit (weight
// lost); a surplus projects weight gain.
func ProjectWeight(totalNetBurn int, settings model.Settings) Projection {
	lostKg := float64(totalNetBurn) / KcalPerKg
	estimated := roundKg(settings.StartWeightKg - lostKg)

	out := Projection{
		EstimatedWeightKg: estimated,
		LostKg:            roundKg(lostKg),
	}
	if settings.GoalBurn <= 0 {
		return out
	}

	// Distance down to the next whole-kilogram threshold; a whole-valued
	// estimate needs a full kilogram to reach the next one.
	toNextKg := estimated - math.Floor(estimated)
	if toNextKg == 0 {
		toNextKg = 1
	}
	nextDays := ceilDays(toNextKg * KcalPerKg / float64(settings.GoalBurn))
	out.DaysToNextKg = &nextDays

	remainingKg := estimated - settings.TargetWeightKg
	if remainingKg <= 0 {
		out.GoalAchieved = true
		zero := 0
		out.DaysToGoal = &zero
		return out
	}
	goalDays := ceilDays(remainingKg * KcalPerKg / float64(settings.GoalBurn))
	out.DaysToGoal = &goalDays
	return out
}

// BadgeAdjustedDaysToGoal reports how many more goal-met days are needed to
// reach the target weight, crediting badges already earned. Zero when
// goalBurn is unset or the goal is already reached.
func BadgeAdjustedDaysToGoal(settings model.Settings, badgeCount int) int {
	if settings.GoalBurn <= 0 {
		return 0
	}
	weightDiff := settings.StartWeightKg - settings.TargetWeightKg
	if weightDiff <= 0 {
		return 0
	}
	days := ceilDays(weightDiff*KcalPerKg/float64(settings.GoalBurn)) - badgeCount
	if days < 0 {
		return 0
	}
	return days
}

func roundKg(v float64) float64 {
	return math.Round(v*10) / 10
}

func ceilDays(v float64) int {
	return int(math.Ceil(v))
}
