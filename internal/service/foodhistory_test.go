package service_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/LeeJaeHyuck/calory-calendar/internal/model"
	"github.com/LeeJaeHyuck/calory-calendar/internal/service"
)

func TestBuildCatalogLastSeenWins(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	if err := st.SaveMeals("2025-03-01", model.Meals{
		Lunch: []model.MealItem{{Name: "닭가슴살", Kcal: 150}, {Name: "rice", Kcal: 300}},
	}); err != nil {
		t.Fatalf("save meals: %v", err)
	}
	if err := st.SaveMeals("2025-03-05", model.Meals{
		Dinner: []model.MealItem{{Name: "닭가슴살", Kcal: 160}},
	}); err != nil {
		t.Fatalf("save meals: %v", err)
	}

	catalog, err := service.BuildCatalog(st)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	if len(catalog) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(catalog))
	}
	byName := make(map[string]int)
	for _, entry := range catalog {
		byName[entry.Name] = entry.Kcal
	}
	if byName["닭가슴살"] != 160 {
		t.Fatalf("expected last-seen kcal 160, got %d", byName["닭가슴살"])
	}
	if byName["rice"] != 300 {
		t.Fatalf("expected rice 300, got %d", byName["rice"])
	}
}

func TestBuildCatalogSkipsBlankAndNonPositive(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	if err := st.SaveMeals("2025-03-01", model.Meals{
		Breakfast: []model.MealItem{
			{Name: "", Kcal: 200},
			{Name: "  ", Kcal: 200},
			{Name: "free coffee", Kcal: 0},
			{Name: "egg", Kcal: 80},
		},
	}); err != nil {
		t.Fatalf("save meals: %v", err)
	}

	catalog, err := service.BuildCatalog(st)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	if len(catalog) != 1 || catalog[0].Name != "egg" {
		t.Fatalf("expected only the egg entry, got %+v", catalog)
	}
}

func TestLoadCatalogRebuildsMissingCache(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	mustSaveMeals(t, st, "2025-03-01", 400)

	catalog, err := service.LoadCatalog(st)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if len(catalog) != 1 {
		t.Fatalf("expected rebuilt catalog with 1 entry, got %d", len(catalog))
	}

	cached, ok, err := st.CatalogCache()
	if err != nil || !ok {
		t.Fatalf("expected cache written after rebuild: ok=%v err=%v", ok, err)
	}
	if len(cached) != 1 {
		t.Fatalf("expected 1 cached entry, got %d", len(cached))
	}
}

func TestRecentFoodNamesSevenDayWindow(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	today := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)

	if err := st.SaveMeals("2025-03-04", model.Meals{Lunch: []model.MealItem{{Name: "inside", Kcal: 100}}}); err != nil {
		t.Fatalf("save meals: %v", err)
	}
	if err := st.SaveMeals("2025-03-03", model.Meals{Lunch: []model.MealItem{{Name: "outside", Kcal: 100}}}); err != nil {
		t.Fatalf("save meals: %v", err)
	}

	recent, err := service.RecentFoodNames(st, today)
	if err != nil {
		t.Fatalf("recent food names: %v", err)
	}
	if !recent["inside"] {
		t.Fatalf("day 6 back is inside the window")
	}
	if recent["outside"] {
		t.Fatalf("day 7 back is outside the window")
	}
}

func TestRecommendMealPlanInvariants(t *testing.T) {
	t.Parallel()
	catalog := []model.FoodCatalogEntry{
		{Name: "egg", Kcal: 80},
		{Name: "rice", Kcal: 300},
		{Name: "chicken", Kcal: 160},
		{Name: "salad", Kcal: 120},
		{Name: "bibimbap", Kcal: 650},
		{Name: "soup", Kcal: 90},
		{Name: "pasta", Kcal: 550},
	}
	recent := map[string]bool{"chicken": true, "soup": true}
	rng := rand.New(rand.NewSource(42))

	const target = 1500
	budgets := map[model.Slot]int{
		model.SlotBreakfast: 450,
		model.SlotLunch:     600,
		model.SlotDinner:    450,
	}
	for i := 0; i < 50; i++ {
		plan := service.RecommendMealPlan(rng, target, catalog, recent)
		for _, slot := range model.AllSlots {
			items := plan.Items(slot)
			if len(items) == 0 || len(items) > 3 {
				t.Fatalf("slot %s: expected 1-3 items, got %d", slot, len(items))
			}
			seen := make(map[string]bool)
			subtotal := 0
			for _, item := range items {
				if seen[item.Name] {
					t.Fatalf("slot %s repeats %q", slot, item.Name)
				}
				seen[item.Name] = true
				subtotal += item.Kcal
			}
			if subtotal > budgets[slot]+100 {
				t.Fatalf("slot %s subtotal %d exceeds budget %d + 100", slot, subtotal, budgets[slot])
			}
		}
	}
}

func TestRecommendMealPlanEmptyInputs(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	if plan := service.RecommendMealPlan(rng, 0, []model.FoodCatalogEntry{{Name: "egg", Kcal: 80}}, nil); len(plan.Breakfast) != 0 {
		t.Fatalf("zero target yields an empty plan")
	}
	if plan := service.RecommendMealPlan(rng, 1500, nil, nil); len(plan.Lunch) != 0 {
		t.Fatalf("empty catalog yields an empty plan")
	}
}
