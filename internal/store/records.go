package store

import (
	"encoding/json"
	"fmt"

	"github.com/LeeJaeHyuck/calory-calendar/internal/model"
)

// Typed accessors for the per-day record families. A malformed stored value
// is treated the same as an absent one: the calculation proceeds with
// zero-valued defaults and the bad record stays in place for `calcal doctor`
// to report. Only I/O-level failures surface as errors.

func (s *Store) MealsFor(date string) (model.Meals, error) {
	raw, ok, err := s.Get(MealsKey(date))
	if err != nil || !ok {
		return model.Meals{}, err
	}
	var meals model.Meals
	if err := json.Unmarshal([]byte(raw), &meals); err != nil {
		return model.Meals{}, nil
	}
	return meals, nil
}

func (s *Store) SaveMeals(date string, meals model.Meals) error {
	raw, err := json.Marshal(meals)
	if err != nil {
		return fmt.Errorf("encode meals for %s: %w", date, err)
	}
	return s.Put(MealsKey(date), string(raw))
}

func (s *Store) WeightFor(date string) (float64, error) {
	raw, ok, err := s.Get(WeightKey(date))
	if err != nil || !ok {
		return 0, err
	}
	var weight float64
	if err := json.Unmarshal([]byte(raw), &weight); err != nil {
		return 0, nil
	}
	return weight, nil
}

func (s *Store) SaveWeight(date string, weightKg float64) error {
	raw, err := json.Marshal(weightKg)
	if err != nil {
		return fmt.Errorf("encode weight for %s: %w", date, err)
	}
	return s.Put(WeightKey(date), string(raw))
}

func (s *Store) ExerciseFor(date string) (int, error) {
	raw, ok, err := s.Get(ExerciseKey(date))
	if err != nil || !ok {
		return 0, err
	}
	var kcal int
	if err := json.Unmarshal([]byte(raw), &kcal); err != nil {
		return 0, nil
	}
	return kcal, nil
}

func (s *Store) SaveExercise(date string, kcal int) error {
	raw, err := json.Marshal(kcal)
	if err != nil {
		return fmt.Errorf("encode exercise for %s: %w", date, err)
	}
	return s.Put(ExerciseKey(date), string(raw))
}

func (s *Store) PhotosFor(date string) ([]model.Photo, error) {
	raw, ok, err := s.Get(PhotosKey(date))
	if err != nil || !ok {
		return nil, err
	}
	var photos []model.Photo
	if err := json.Unmarshal([]byte(raw), &photos); err != nil {
		return nil, nil
	}
	return photos, nil
}

func (s *Store) SavePhotos(date string, photos []model.Photo) error {
	raw, err := json.Marshal(photos)
	if err != nil {
		return fmt.Errorf("encode photos for %s: %w", date, err)
	}
	return s.Put(PhotosKey(date), string(raw))
}

func (s *Store) DiaryFor(date string) (string, error) {
	raw, ok, err := s.Get(DiaryKey(date))
	if err != nil || !ok {
		return "", err
	}
	var text string
	if err := json.Unmarshal([]byte(raw), &text); err != nil {
		return "", nil
	}
	return text, nil
}

func (s *Store) SaveDiary(date, text string) error {
	raw, err := json.Marshal(text)
	if err != nil {
		return fmt.Errorf("encode diary for %s: %w", date, err)
	}
	return s.Put(DiaryKey(date), string(raw))
}

// DayRecord assembles the full record for one date. Missing families stay at
// their zero values; "no data" is a valid state.
func (s *Store) DayRecord(date string) (model.DailyRecord, error) {
	rec := model.DailyRecord{Date: date}
	meals, err := s.MealsFor(date)
	if err != nil {
		return rec, err
	}
	rec.Meals = meals
	weight, err := s.WeightFor(date)
	if err != nil {
		return rec, err
	}
	rec.WeightKg = weight
	exercise, err := s.ExerciseFor(date)
	if err != nil {
		return rec, err
	}
	rec.ExerciseKcal = exercise
	photos, err := s.PhotosFor(date)
	if err != nil {
		return rec, err
	}
	rec.Photos = photos
	diary, err := s.DiaryFor(date)
	if err != nil {
		return rec, err
	}
	rec.DiaryText = diary
	return rec, nil
}

// Badge records hold the literal string "true"; presence is the test, not a
// boolean parse.

func (s *Store) HasBadge(date string) (bool, error) {
	raw, ok, err := s.Get(BadgeKey(date))
	if err != nil {
		return false, err
	}
	return ok && raw == "true", nil
}

func (s *Store) AwardBadge(date string) error {
	return s.Put(BadgeKey(date), "true")
}

func (s *Store) RevokeBadge(date string) error {
	return s.Delete(BadgeKey(date))
}

func (s *Store) Settings() (model.Settings, bool, error) {
	raw, ok, err := s.Get(SettingsKey)
	if err != nil || !ok {
		return model.Settings{}, false, err
	}
	var settings model.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return model.Settings{}, false, nil
	}
	return settings, true, nil
}

func (s *Store) SaveSettings(settings model.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return s.Put(SettingsKey, string(raw))
}

func (s *Store) CatalogCache() ([]model.FoodCatalogEntry, bool, error) {
	raw, ok, err := s.Get(CatalogCacheKey)
	if err != nil || !ok {
		return nil, false, err
	}
	var entries []model.FoodCatalogEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, false, nil
	}
	return entries, true, nil
}

func (s *Store) SaveCatalogCache(entries []model.FoodCatalogEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode food history cache: %w", err)
	}
	return s.Put(CatalogCacheKey, string(raw))
}
