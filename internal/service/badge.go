package service

import (
	"fmt"
	"time"

	"github.com/LeeJaeHyuck/calory-calendar/internal/model"
	"github.com/LeeJaeHyuck/calory-calendar/internal/store"
)

// EvaluateBadges reconciles badge state for every date from the diet start
// date to today inclusive. The badge store is purely a cache of the goal
// predicate: a day that meets the goal gets a badge, a day that no longer
// meets it loses its badge, and re-running with unchanged data changes
// nothing. Run after any write that can affect a past day's eligibility.
//
// Requires a diet start date and goalBurn > 0; no-op otherwise. A read
// failure for one date skips only that date.
func EvaluateBadges(st *store.Store, settings model.Settings, today time.Time) error {
	if settings.DietStartDate == "" || settings.GoalBurn <= 0 {
		return nil
	}
	start, err := ParseDate(settings.DietStartDate)
	if err != nil {
		return err
	}
	today = beginningOfDay(today)

	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		date := FormatDate(d)
		rec, err := st.DayRecord(date)
		if err != nil {
			continue
		}
		met := ComputeDailyBalance(rec, settings).GoalMet

		awarded, err := st.HasBadge(date)
		if err != nil {
			continue
		}
		if met && !awarded {
			if err := st.AwardBadge(date); err != nil {
				return fmt.Errorf("award badge for %s: %w", date, err)
			}
		}
		if !met && awarded {
			if err := st.RevokeBadge(date); err != nil {
				return fmt.Errorf("revoke badge for %s: %w", date, err)
			}
		}
	}
	return nil
}

// CountBadges sums badge presence over [dietStartDate, today]. Returns 0
// without a diet start date.
func CountBadges(st *store.Store, settings model.Settings, today time.Time) (int, error) {
	if settings.DietStartDate == "" {
		return 0, nil
	}
	start, err := ParseDate(settings.DietStartDate)
	if err != nil {
		return 0, err
	}
	today = beginningOfDay(today)

	count := 0
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		awarded, err := st.HasBadge(FormatDate(d))
		if err != nil {
			continue
		}
		if awarded {
			count++
		}
	}
	return count, nil
}

// DayVerdict is the outcome of the goal predicate for a single finished day.
type DayVerdict struct {
	Date     string `json:"date"`
	Success  bool   `json:"success"`
	NetBurn  int    `json:"net_burn"`
	GoalBurn int    `json:"goal_burn"`
	Message  string `json:"message"`
}

// YesterdayReport evaluates yesterday against the goal for the daily report
// reminder. Returns nil when no report applies: goalBurn unset, or yesterday
// precedes the diet start date.
func YesterdayReport(st *store.Store, settings model.Settings, now time.Time) (*DayVerdict, error) {
	if settings.GoalBurn <= 0 {
		return nil, nil
	}
	yesterday := beginningOfDay(now).AddDate(0, 0, -1)
	if settings.DietStartDate != "" {
		start, err := ParseDate(settings.DietStartDate)
		if err != nil {
			return nil, err
		}
		if yesterday.Before(start) {
			return nil, nil
		}
	}

	date := FormatDate(yesterday)
	rec, err := st.DayRecord(date)
	if err != nil {
		rec = model.DailyRecord{Date: date}
	}
	balance := ComputeDailyBalance(rec, settings)

	verdict := &DayVerdict{
		Date:     date,
		Success:  balance.GoalMet,
		NetBurn:  balance.NetBurn,
		GoalBurn: settings.GoalBurn,
	}
	if verdict.Success {
		verdict.Message = "Congratulations! You met yesterday's goal and earned a badge!"
	} else {
		verdict.Message = "You missed yesterday's goal. Try again today!"
	}
	return verdict, nil
}
