package store

// Record key namespaces. Date keys use local-calendar YYYY-MM-DD, zero
// padded, no timezone offset.
const (
	SettingsKey     = "user-settings"
	CatalogCacheKey = "food-history-cache"

	MealsPrefix    = "meals-"
	WeightPrefix   = "weight-"
	ExercisePrefix = "exercise-"
	PhotosPrefix   = "photos-"
	DiaryPrefix    = "diary-"
	BadgePrefix    = "badge-"
)

func MealsKey(date string) string    { return MealsPrefix + date }
func WeightKey(date string) string   { return WeightPrefix + date }
func ExerciseKey(date string) string { return ExercisePrefix + date }
func PhotosKey(date string) string   { return PhotosPrefix + date }
func DiaryKey(date string) string    { return DiaryPrefix + date }
func BadgeKey(date string) string    { return BadgePrefix + date }
