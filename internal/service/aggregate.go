package service

import (
	"fmt"
	"time"

	"github.com/LeeJaeHyuck/calory-calendar/internal/model"
	"github.com/LeeJaeHyuck/calory-calendar/internal/store"
)

// RangeReport accumulates daily balances over an inclusive date range.
// Totals count only "active" days (intakeTotal > 0); empty days still appear
// in the per-day breakdown so calendar rendering can show them as empty
// cells.
type RangeReport struct {
	FromDate     string         `json:"from_date"`
	ToDate       string         `json:"to_date"`
	TotalIntake  int            `json:"total_intake"`
	TotalNetBurn int            `json:"total_net_burn"`
	ActiveDays   int            `json:"active_days"`
	Days         []DailyBalance `json:"days"`
}

// AggregateRange walks every calendar date from from to to inclusive, in
// ascending order, stepping by exactly one calendar day. A date with no
// stored record (or an unreadable one) contributes a zero balance; one bad
// day never aborts the range.
func AggregateRange(st *store.Store, settings model.Settings, from, to time.Time) (*RangeReport, error) {
	from = beginningOfDay(from)
	to = beginningOfDay(to)
	if from.After(to) {
		return nil, fmt.Errorf("from date must be <= to date")
	}

	report := &RangeReport{
		FromDate: FormatDate(from),
		ToDate:   FormatDate(to),
		Days:     make([]DailyBalance, 0, inclusiveDayCount(from, to)),
	}

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		date := FormatDate(d)
		rec, err := st.DayRecord(date)
		if err != nil {
			rec = model.DailyRecord{Date: date}
		}
		balance := ComputeDailyBalance(rec, settings)
		report.Days = append(report.Days, balance)
		if balance.IntakeTotal > 0 {
			report.ActiveDays++
			report.TotalIntake += balance.IntakeTotal
			report.TotalNetBurn += balance.NetBurn
		}
	}
	return report, nil
}

// LifetimeReport aggregates from the diet start date to today. Without a
// start date cumulative aggregation is undefined and the report is zero.
func LifetimeReport(st *store.Store, settings model.Settings, today time.Time) (*RangeReport, error) {
	if settings.DietStartDate == "" {
		return &RangeReport{Days: []DailyBalance{}}, nil
	}
	start, err := ParseDate(settings.DietStartDate)
	if err != nil {
		return nil, err
	}
	today = beginningOfDay(today)
	if start.After(today) {
		return &RangeReport{FromDate: FormatDate(start), ToDate: FormatDate(today), Days: []DailyBalance{}}, nil
	}
	return AggregateRange(st, settings, start, today)
}

// MonthCell is one cell of the 7-column calendar grid. Leading and trailing
// padding cells have Empty set and no date.
type MonthCell struct {
	Empty     bool   `json:"empty"`
	Date      string `json:"date,omitempty"`
	Day       int    `json:"day,omitempty"`
	Intake    int    `json:"intake,omitempty"`
	NetBurn   int    `json:"net_burn,omitempty"`
	HasRecord bool   `json:"has_record,omitempty"`
}

type MonthGrid struct {
	Year         int         `json:"year"`
	Month        time.Month  `json:"month"`
	Cells        []MonthCell `json:"cells"`
	TotalIntake  int         `json:"total_intake"`
	TotalNetBurn int         `json:"total_net_burn"`
	ActiveDays   int         `json:"active_days"`
	Projection   Projection  `json:"projection"`
}

// BuildMonthGrid aggregates one calendar month and lays it out Monday-first:
// leading empties = (weekday of the 1st + 6) mod 7, trailing empties pad the
// cell count to a multiple of 7. The month report projection derives from the
// month's accumulated net burn.
func BuildMonthGrid(st *store.Store, settings model.Settings, year int, month time.Month) (*MonthGrid, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)

	report, err := AggregateRange(st, settings, first, last)
	if err != nil {
		return nil, err
	}

	grid := &MonthGrid{
		Year:         year,
		Month:        month,
		TotalIntake:  report.TotalIntake,
		TotalNetBurn: report.TotalNetBurn,
		ActiveDays:   report.ActiveDays,
	}

	startPad := (int(first.Weekday()) + 6) % 7
	grid.Cells = make([]MonthCell, 0, startPad+len(report.Days)+6)
	for i := 0; i < startPad; i++ {
		grid.Cells = append(grid.Cells, MonthCell{Empty: true})
	}
	for i, balance := range report.Days {
		grid.Cells = append(grid.Cells, MonthCell{
			Date:      balance.Date,
			Day:       i + 1,
			Intake:    balance.IntakeTotal,
			NetBurn:   balance.NetBurn,
			HasRecord: balance.IntakeTotal > 0,
		})
	}
	for len(grid.Cells)%7 != 0 {
		grid.Cells = append(grid.Cells, MonthCell{Empty: true})
	}

	grid.Projection = ProjectWeight(grid.TotalNetBurn, settings)
	return grid, nil
}

// SlotDetail is one slot of a weekly row: subtotal plus the named items.
type SlotDetail struct {
	Total int              `json:"total"`
	Items []model.MealItem `json:"items"`
}

type WeekRow struct {
	Date         string        `json:"date"`
	Breakfast    SlotDetail    `json:"breakfast"`
	Lunch        SlotDetail    `json:"lunch"`
	Dinner       SlotDetail    `json:"dinner"`
	Total        int           `json:"total"`
	NetBurn      int           `json:"net_burn"`
	WeightKg     float64       `json:"weight_kg"`
	ExerciseKcal int           `json:"exercise_kcal"`
	Photos       []model.Photo `json:"photos"`
	GoalMet      bool          `json:"goal_met"`
}

type WeekReport struct {
	WeekOfMonth int       `json:"week_of_month"`
	Monday      string    `json:"monday"`
	ViewMode    string    `json:"view_mode"`
	Rows        []WeekRow `json:"rows"`
}

// BuildWeekReport loads the Monday-start week containing anchor, offset by
// offset weeks. Rows always span exactly seven days; days without records
// render as zero rows.
func BuildWeekReport(st *store.Store, settings model.Settings, anchor time.Time, offset int) (*WeekReport, error) {
	anchor = anchor.AddDate(0, 0, offset*7)
	monday := beginningOfWeek(anchor)

	report := &WeekReport{
		WeekOfMonth: WeekOfMonth(anchor),
		Monday:      FormatDate(monday),
		ViewMode:    settings.WeeklyViewMode,
		Rows:        make([]WeekRow, 0, 7),
	}
	if report.ViewMode == "" {
		report.ViewMode = model.ViewModeAll
	}

	for i := 0; i < 7; i++ {
		date := FormatDate(monday.AddDate(0, 0, i))
		rec, err := st.DayRecord(date)
		if err != nil {
			rec = model.DailyRecord{Date: date}
		}
		balance := ComputeDailyBalance(rec, settings)
		report.Rows = append(report.Rows, WeekRow{
			Date:         date,
			Breakfast:    slotDetail(rec.Meals.Breakfast, balance.Breakfast.Total),
			Lunch:        slotDetail(rec.Meals.Lunch, balance.Lunch.Total),
			Dinner:       slotDetail(rec.Meals.Dinner, balance.Dinner.Total),
			Total:        balance.IntakeTotal,
			NetBurn:      balance.NetBurn,
			WeightKg:     rec.WeightKg,
			ExerciseKcal: rec.ExerciseKcal,
			Photos:       rec.Photos,
			GoalMet:      balance.GoalMet,
		})
	}
	return report, nil
}

func slotDetail(items []model.MealItem, total int) SlotDetail {
	detail := SlotDetail{Total: total, Items: make([]model.MealItem, 0, len(items))}
	for _, item := range items {
		if item.Name != "" || item.Kcal > 0 {
			detail.Items = append(detail.Items, item)
		}
	}
	return detail
}
