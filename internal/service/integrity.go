package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/LeeJaeHyuck/calory-calendar/internal/model"
	"github.com/LeeJaeHyuck/calory-calendar/internal/store"
)

// Issue is one finding from an integrity scan.
type Issue struct {
	Key     string `json:"key"`
	Problem string `json:"problem"`
}

// ScanStore walks every stored record and reports values that the typed
// readers would silently coerce to zero: unparseable JSON, dated keys with
// bad dates, badge values other than the "true" marker, and keys outside any
// known family. It never repairs anything; that stays a human decision.
func ScanStore(st *store.Store) ([]Issue, error) {
	keys, err := st.Keys("")
	if err != nil {
		return nil, fmt.Errorf("list record keys: %w", err)
	}

	var issues []Issue
	for _, key := range keys {
		raw, ok, err := st.Get(key)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", key, err)
		}
		if !ok {
			continue
		}
		if problem := checkRecord(key, raw); problem != "" {
			issues = append(issues, Issue{Key: key, Problem: problem})
		}
	}
	return issues, nil
}

func checkRecord(key, raw string) string {
	switch {
	case key == store.SettingsKey:
		return checkJSON(raw, &model.Settings{})
	case key == store.CatalogCacheKey:
		return checkJSON(raw, &[]model.FoodCatalogEntry{})
	case strings.HasPrefix(key, store.MealsPrefix):
		if p := checkDate(key, store.MealsPrefix); p != "" {
			return p
		}
		return checkJSON(raw, &model.Meals{})
	case strings.HasPrefix(key, store.WeightPrefix):
		if p := checkDate(key, store.WeightPrefix); p != "" {
			return p
		}
		return checkJSON(raw, new(float64))
	case strings.HasPrefix(key, store.ExercisePrefix):
		if p := checkDate(key, store.ExercisePrefix); p != "" {
			return p
		}
		return checkJSON(raw, new(int))
	case strings.HasPrefix(key, store.PhotosPrefix):
		if p := checkDate(key, store.PhotosPrefix); p != "" {
			return p
		}
		return checkJSON(raw, &[]model.Photo{})
	case strings.HasPrefix(key, store.DiaryPrefix):
		return checkDate(key, store.DiaryPrefix)
	case strings.HasPrefix(key, store.BadgePrefix):
		if p := checkDate(key, store.BadgePrefix); p != "" {
			return p
		}
		if raw != "true" {
			return fmt.Sprintf("badge value %q is not the award marker", raw)
		}
		return ""
	default:
		return "key does not belong to any known record family"
	}
}

func checkDate(key, prefix string) string {
	date := strings.TrimPrefix(key, prefix)
	if _, err := ParseDate(date); err != nil {
		return fmt.Sprintf("key date %q is not YYYY-MM-DD", date)
	}
	return ""
}

func checkJSON(raw string, dst any) string {
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return "value is not valid JSON for its record type"
	}
	return ""
}
