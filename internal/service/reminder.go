package service

import (
	"fmt"
	"time"

	"github.com/LeeJaeHyuck/calory-calendar/internal/model"
)

// Scheduler delivers reminders at a future time. The service layer only
// decides what to schedule and when; delivery is the caller's concern (the
// CLI ships a print-only implementation).
type Scheduler interface {
	Schedule(tag string, at time.Time, title, body string) error
	CancelByTag(tag string) error
}

// Reminder tags. One tag per concern so cancellation is targeted.
const (
	TagDailyReport = "daily-report"
	TagBreakfast   = "meal-breakfast"
	TagLunch       = "meal-lunch"
	TagDinner      = "meal-dinner"
)

var slotReminderHour = map[model.Slot]int{
	model.SlotBreakfast: 9,
	model.SlotLunch:     12,
	model.SlotDinner:    18,
}

var slotReminderTag = map[model.Slot]string{
	model.SlotBreakfast: TagBreakfast,
	model.SlotLunch:     TagLunch,
	model.SlotDinner:    TagDinner,
}

// PlanDailyReport schedules (or cancels) the recurring end-of-day report at
// the configured HH:MM. When the configured time has already passed today the
// first occurrence is tomorrow.
func PlanDailyReport(sched Scheduler, settings model.Settings, now time.Time) error {
	if !settings.ReportEnabled {
		return sched.CancelByTag(TagDailyReport)
	}
	at := time.Date(now.Year(), now.Month(), now.Day(), settings.ReportHour, settings.ReportMinute, 0, 0, now.Location())
	if !at.After(now) {
		at = at.AddDate(0, 0, 1)
	}
	return sched.Schedule(TagDailyReport, at, "Daily report", "Check how you did yesterday and keep the streak going.")
}

// PlanMealReminders schedules today's per-slot meal reminders. A slot gets a
// reminder only when reminders are on, its planned items are non-empty, and
// its hour has not yet passed; everything else is cancelled so stale
// reminders never fire.
func PlanMealReminders(sched Scheduler, settings model.Settings, plan model.Meals, now time.Time) error {
	for _, slot := range model.AllSlots {
		tag := slotReminderTag[slot]
		hour := slotReminderHour[slot]
		at := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())

		if !settings.MealRemindersOn || len(plan.Items(slot)) == 0 || !at.After(now) {
			if err := sched.CancelByTag(tag); err != nil {
				return fmt.Errorf("cancel %s reminder: %w", slot, err)
			}
			continue
		}
		body := fmt.Sprintf("Planned %s: %s", slot, summarizeItems(plan.Items(slot)))
		if err := sched.Schedule(tag, at, "Meal reminder", body); err != nil {
			return fmt.Errorf("schedule %s reminder: %w", slot, err)
		}
	}
	return nil
}

// CancelAllReminders removes every reminder this package schedules.
func CancelAllReminders(sched Scheduler) error {
	for _, tag := range []string{TagDailyReport, TagBreakfast, TagLunch, TagDinner} {
		if err := sched.CancelByTag(tag); err != nil {
			return fmt.Errorf("cancel %s: %w", tag, err)
		}
	}
	return nil
}

func summarizeItems(items []model.MealItem) string {
	out := ""
	total := 0
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += item.Name
		total += item.Kcal
	}
	return fmt.Sprintf("%s (%d kcal)", out, total)
}
