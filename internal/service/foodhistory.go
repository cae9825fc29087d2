package service

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/LeeJaeHyuck/calory-calendar/internal/model"
	"github.com/LeeJaeHyuck/calory-calendar/internal/store"
)

// BuildCatalog scans every stored meals record and derives the food catalog:
// one entry per distinct name, kcal = most recently seen value. Items with
// empty names or kcal <= 0 are skipped. The catalog content is the contract,
// not its order; entries are returned name-sorted for stable display.
func BuildCatalog(st *store.Store) ([]model.FoodCatalogEntry, error) {
	keys, err := st.Keys(store.MealsPrefix)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int)
	for _, key := range keys {
		date := strings.TrimPrefix(key, store.MealsPrefix)
		meals, err := st.MealsFor(date)
		if err != nil {
			continue
		}
		for _, slot := range model.AllSlots {
			for _, item := range meals.Items(slot) {
				name := strings.TrimSpace(item.Name)
				if name == "" || item.Kcal <= 0 {
					continue
				}
				byName[name] = item.Kcal
			}
		}
	}

	entries := make([]model.FoodCatalogEntry, 0, len(byName))
	for name, kcal := range byName {
		entries = append(entries, model.FoodCatalogEntry{Name: name, Kcal: kcal})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// RebuildCatalogCache rebuilds the catalog from source records and writes it
// to the food-history-cache key. The cache is never authoritative; this is
// the only way it gets content.
func RebuildCatalogCache(st *store.Store) ([]model.FoodCatalogEntry, error) {
	entries, err := BuildCatalog(st)
	if err != nil {
		return nil, err
	}
	if err := st.SaveCatalogCache(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// LoadCatalog returns the cached catalog, rebuilding the cache when it is
// missing or unreadable.
func LoadCatalog(st *store.Store) ([]model.FoodCatalogEntry, error) {
	entries, ok, err := st.CatalogCache()
	if err != nil {
		return nil, err
	}
	if ok {
		return entries, nil
	}
	return RebuildCatalogCache(st)
}

// RecentFoodNames collects the food names logged during the seven days up to
// and including today.
func RecentFoodNames(st *store.Store, today time.Time) (map[string]bool, error) {
	today = beginningOfDay(today)
	recent := make(map[string]bool)
	for i := 0; i < 7; i++ {
		date := FormatDate(today.AddDate(0, 0, -i))
		meals, err := st.MealsFor(date)
		if err != nil {
			continue
		}
		for _, slot := range model.AllSlots {
			for _, item := range meals.Items(slot) {
				name := strings.TrimSpace(item.Name)
				if name != "" {
					recent[name] = true
				}
			}
		}
	}
	return recent, nil
}

// Sub-budget split across the three slots.
var slotBudgetShare = map[model.Slot]float64{
	model.SlotBreakfast: 0.30,
	model.SlotLunch:     0.40,
	model.SlotDinner:    0.30,
}

// RecommendMealPlan drafts a day's meals against a calorie budget. The split
// is 30/40/30 across breakfast/lunch/dinner; each slot greedily draws 1-3
// distinct catalog entries, weighting foods seen in the last 7 days twice as
// heavily, keeping the running subtotal at most 100 kcal over the slot
// budget, and stopping once 80% of the budget is reached. Best effort and
// deliberately non-deterministic: callers own the rng.
func RecommendMealPlan(rng *rand.Rand, targetKcal int, catalog []model.FoodCatalogEntry, recent map[string]bool) model.Meals {
	var plan model.Meals
	if targetKcal <= 0 || len(catalog) == 0 {
		return plan
	}
	for _, slot := range model.AllSlots {
		budget := int(float64(targetKcal) * slotBudgetShare[slot])
		plan.SetItems(slot, fillSlot(rng, budget, catalog, recent))
	}
	return plan
}

func fillSlot(rng *rand.Rand, budget int, catalog []model.FoodCatalogEntry, recent map[string]bool) []model.MealItem {
	const maxItems = 3
	pool := make([]model.FoodCatalogEntry, len(catalog))
	copy(pool, catalog)

	items := make([]model.MealItem, 0, maxItems)
	subtotal := 0
	for len(items) < maxItems && len(pool) > 0 {
		if len(items) > 0 && subtotal*10 >= budget*8 {
			break
		}
		idx := weightedPick(rng, pool, recent)
		candidate := pool[idx]
		pool = append(pool[:idx], pool[idx+1:]...)

		if subtotal+candidate.Kcal > budget+100 {
			continue
		}
		items = append(items, model.MealItem{Name: candidate.Name, Kcal: candidate.Kcal})
		subtotal += candidate.Kcal
	}
	return items
}

func weightedPick(rng *rand.Rand, pool []model.FoodCatalogEntry, recent map[string]bool) int {
	total := 0
	for _, entry := range pool {
		total += entryWeight(entry, recent)
	}
	n := rng.Intn(total)
	for i, entry := range pool {
		n -= entryWeight(entry, recent)
		if n < 0 {
			return i
		}
	}
	return len(pool) - 1
}

func entryWeight(entry model.FoodCatalogEntry, recent map[string]bool) int {
	if recent[entry.Name] {
		return 2
	}
	return 1
}
