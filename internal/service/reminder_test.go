package service_test

import (
	"testing"
	"time"

	"github.com/LeeJaeHyuck/calory-calendar/internal/model"
	"github.com/LeeJaeHyuck/calory-calendar/internal/service"
)

type fakeScheduler struct {
	scheduled map[string]time.Time
	cancelled []string
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{scheduled: make(map[string]time.Time)}
}

func (f *fakeScheduler) Schedule(tag string, at time.Time, title, body string) error {
	f.scheduled[tag] = at
	return nil
}

func (f *fakeScheduler) CancelByTag(tag string) error {
	f.cancelled = append(f.cancelled, tag)
	delete(f.scheduled, tag)
	return nil
}

func TestPlanDailyReport(t *testing.T) {
	t.Parallel()
	sched := newFakeScheduler()
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)
	settings := model.Settings{ReportEnabled: true, ReportHour: 21, ReportMinute: 30}

	if err := service.PlanDailyReport(sched, settings, now); err != nil {
		t.Fatalf("plan daily report: %v", err)
	}
	at, ok := sched.scheduled[service.TagDailyReport]
	if !ok {
		t.Fatalf("expected daily report scheduled")
	}
	want := time.Date(2025, 3, 10, 21, 30, 0, 0, time.Local)
	if !at.Equal(want) {
		t.Fatalf("expected report at %v, got %v", want, at)
	}
}

func TestPlanDailyReportRollsToTomorrow(t *testing.T) {
	t.Parallel()
	sched := newFakeScheduler()
	now := time.Date(2025, 3, 10, 22, 0, 0, 0, time.Local)
	settings := model.Settings{ReportEnabled: true, ReportHour: 21}

	if err := service.PlanDailyReport(sched, settings, now); err != nil {
		t.Fatalf("plan daily report: %v", err)
	}
	at := sched.scheduled[service.TagDailyReport]
	if at.Day() != 11 {
		t.Fatalf("21:00 already passed, expected tomorrow, got %v", at)
	}
}

func TestPlanDailyReportDisabledCancels(t *testing.T) {
	t.Parallel()
	sched := newFakeScheduler()
	sched.scheduled[service.TagDailyReport] = time.Now()

	if err := service.PlanDailyReport(sched, model.Settings{}, time.Now()); err != nil {
		t.Fatalf("plan daily report: %v", err)
	}
	if _, ok := sched.scheduled[service.TagDailyReport]; ok {
		t.Fatalf("disabled report must cancel the pending reminder")
	}
}

func TestPlanMealRemindersSkipsPastAndEmptySlots(t *testing.T) {
	t.Parallel()
	sched := newFakeScheduler()
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.Local) // breakfast hour passed
	settings := model.Settings{MealRemindersOn: true}
	plan := model.Meals{
		Breakfast: []model.MealItem{{Name: "egg", Kcal: 80}},
		Lunch:     []model.MealItem{{Name: "rice", Kcal: 300}},
		// dinner unplanned
	}

	if err := service.PlanMealReminders(sched, settings, plan, now); err != nil {
		t.Fatalf("plan meal reminders: %v", err)
	}
	if _, ok := sched.scheduled[service.TagBreakfast]; ok {
		t.Fatalf("09:00 already passed, breakfast must not be scheduled")
	}
	at, ok := sched.scheduled[service.TagLunch]
	if !ok {
		t.Fatalf("expected lunch reminder")
	}
	if at.Hour() != 12 || at.Day() != 10 {
		t.Fatalf("expected lunch reminder today at 12:00, got %v", at)
	}
	if _, ok := sched.scheduled[service.TagDinner]; ok {
		t.Fatalf("an empty slot gets no reminder")
	}
}

func TestPlanMealRemindersDisabledCancelsAll(t *testing.T) {
	t.Parallel()
	sched := newFakeScheduler()
	sched.scheduled[service.TagLunch] = time.Now()
	now := time.Date(2025, 3, 10, 6, 0, 0, 0, time.Local)
	plan := model.Meals{Lunch: []model.MealItem{{Name: "rice", Kcal: 300}}}

	if err := service.PlanMealReminders(sched, model.Settings{}, plan, now); err != nil {
		t.Fatalf("plan meal reminders: %v", err)
	}
	if len(sched.scheduled) != 0 {
		t.Fatalf("reminders off must cancel every slot, still pending: %v", sched.scheduled)
	}
}
