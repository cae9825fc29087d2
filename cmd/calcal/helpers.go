package calcal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/LeeJaeHyuck/calory-calendar/internal/app"
	"github.com/LeeJaeHyuck/calory-calendar/internal/db"
	"github.com/LeeJaeHyuck/calory-calendar/internal/model"
	"github.com/LeeJaeHyuck/calory-calendar/internal/service"
	"github.com/LeeJaeHyuck/calory-calendar/internal/store"
)

func withStore(run func(*store.Store) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(store.New(sqldb))
}

func parseKcalArg(name, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}

func parseSlotArg(value string) (model.Slot, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "breakfast", "b":
		return model.SlotBreakfast, nil
	case "lunch", "l":
		return model.SlotLunch, nil
	case "dinner", "d":
		return model.SlotDinner, nil
	default:
		return "", fmt.Errorf("invalid slot %q (use breakfast, lunch, dinner)", value)
	}
}

// dateOrToday resolves an optional --date flag to a YYYY-MM-DD string.
func dateOrToday(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return service.FormatDate(time.Now()), nil
	}
	parsed, err := service.ParseDate(date)
	if err != nil {
		return "", err
	}
	return service.FormatDate(parsed), nil
}

// refreshDerived re-evaluates badges and rebuilds the food catalog cache
// after a write that can change a day's balance. Writes settle before any
// dependent read happens.
func refreshDerived(st *store.Store) error {
	settings, err := service.LoadSettings(st)
	if err != nil {
		return err
	}
	if err := service.EvaluateBadges(st, settings, time.Now()); err != nil {
		return err
	}
	if _, err := service.RebuildCatalogCache(st); err != nil {
		return err
	}
	return nil
}
