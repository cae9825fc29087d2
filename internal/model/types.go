package model

// MealItem is a single food entry inside one meal slot.
type MealItem struct {
	Name string `json:"name"`
	Kcal int    `json:"kcal"`
}

// Meals holds the three meal slots of one day. JSON field names are
// capitalized because that is the wire format of the `meals-<date>` records.
type Meals struct {
	Breakfast []MealItem `json:"Breakfast"`
	Lunch     []MealItem `json:"Lunch"`
	Dinner    []MealItem `json:"Dinner"`
}

type Slot string

const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotDinner    Slot = "dinner"
)

var AllSlots = []Slot{SlotBreakfast, SlotLunch, SlotDinner}

// Items returns the entries of one slot.
func (m Meals) Items(slot Slot) []MealItem {
	switch slot {
	case SlotBreakfast:
		return m.Breakfast
	case SlotLunch:
		return m.Lunch
	case SlotDinner:
		return m.Dinner
	}
	return nil
}

// SetItems replaces the entries of one slot.
func (m *Meals) SetItems(slot Slot, items []MealItem) {
	switch slot {
	case SlotBreakfast:
		m.Breakfast = items
	case SlotLunch:
		m.Lunch = items
	case SlotDinner:
		m.Dinner = items
	}
}

type Photo struct {
	URI       string `json:"uri"`
	Timestamp string `json:"timestamp"`
}

// DailyRecord is everything stored for one calendar date. A missing record
// means "no data", which is distinct from a record holding zero values.
type DailyRecord struct {
	Date         string
	Meals        Meals
	WeightKg     float64
	ExerciseKcal int
	Photos       []Photo
	DiaryText    string
}

// Settings is the user-edited singleton stored under the `user-settings` key.
// GoalBurn is derived: max(0, bmr + exerciseGoal - intakeGoal), recomputed on
// every save and never edited independently.
type Settings struct {
	BMR            int     `json:"bmr"`
	IntakeGoal     int     `json:"intake"`
	ExerciseGoal   int     `json:"exercise"`
	GoalBurn       int     `json:"goalBurn"`
	MealLimitKcal  int     `json:"mealLimit"`
	StartWeightKg  float64 `json:"weight"`
	TargetWeightKg float64 `json:"targetWeight"`
	DietStartDate  string  `json:"startDate"`
	WeeklyViewMode string  `json:"weeklyViewMode"`

	ReportEnabled   bool `json:"notificationEnabled"`
	ReportHour      int  `json:"notificationHour"`
	ReportMinute    int  `json:"notificationMinute"`
	MealRemindersOn bool `json:"mealNotificationEnabled"`
}

// Weekly view modes.
const (
	ViewModeAll      = "all"
	ViewModePhotos   = "photos"
	ViewModeCalories = "calories"
)

// FoodCatalogEntry is a derived catalog row: one per distinct food name seen
// across all historical records, kcal = most recently seen value.
type FoodCatalogEntry struct {
	Name string `json:"name"`
	Kcal int    `json:"kcal"`
}
