package service

import (
	"github.com/LeeJaeHyuck/calory-calendar/internal/model"
)

// SlotBalance is one meal slot's subtotal.
type SlotBalance struct {
	Total     int  `json:"total"`
	OverLimit bool `json:"over_limit"`
}

// DailyBalance is the derived energy balance of one day.
//
// The single sign convention used across every code path (daily, weekly,
// monthly, badges, projection) is:
//
//	netBurn = bmr + exerciseKcal - intakeTotal
//
// Positive netBurn is a deficit; the goal is met when netBurn >= goalBurn.
type DailyBalance struct {
	Date         string      `json:"date"`
	IntakeTotal  int         `json:"intake_total"`
	ExerciseKcal int         `json:"exercise_kcal"`
	NetBurn      int         `json:"net_burn"`
	Breakfast    SlotBalance `json:"breakfast"`
	Lunch        SlotBalance `json:"lunch"`
	Dinner       SlotBalance `json:"dinner"`
	GoalMet      bool        `json:"goal_met"`
}

// ComputeDailyBalance derives the balance of one day from its record and a
// settings snapshot. Pure function; negative kcal values are treated as 0.
func ComputeDailyBalance(rec model.DailyRecord, settings model.Settings) DailyBalance {
	out := DailyBalance{
		Date:         rec.Date,
		ExerciseKcal: rec.ExerciseKcal,
	}

	out.Breakfast = slotBalance(rec.Meals.Breakfast, settings.MealLimitKcal)
	out.Lunch = slotBalance(rec.Meals.Lunch, settings.MealLimitKcal)
	out.Dinner = slotBalance(rec.Meals.Dinner, settings.MealLimitKcal)

	out.IntakeTotal = out.Breakfast.Total + out.Lunch.Total + out.Dinner.Total
	out.NetBurn = settings.BMR + rec.ExerciseKcal - out.IntakeTotal
	out.GoalMet = settings.GoalBurn > 0 && out.NetBurn >= settings.GoalBurn
	return out
}

func slotBalance(items []model.MealItem, limitKcal int) SlotBalance {
	out := SlotBalance{}
	for _, item := range items {
		if item.Kcal > 0 {
			out.Total += item.Kcal
		}
	}
	out.OverLimit = limitKcal > 0 && out.Total > limitKcal
	return out
}
