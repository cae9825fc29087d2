package calcal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/LeeJaeHyuck/calory-calendar/internal/service"
	"github.com/LeeJaeHyuck/calory-calendar/internal/store"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage goals, limits, and reminder settings",
}

var (
	setBMR           int
	setIntakeGoal    int
	setExerciseGoal  int
	setMealLimit     int
	setStartWeight   float64
	setTargetWeight  float64
	setStartDate     string
	setViewMode      string
	setReport        bool
	setReportTime    string
	setMealReminders bool
)

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update settings; goal burn is derived automatically",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			settings, err := service.LoadSettings(st)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("bmr") {
				settings.BMR = setBMR
			}
			if flags.Changed("intake-goal") {
				settings.IntakeGoal = setIntakeGoal
			}
			if flags.Changed("exercise-goal") {
				settings.ExerciseGoal = setExerciseGoal
			}
			if flags.Changed("meal-limit") {
				settings.MealLimitKcal = setMealLimit
			}
			if flags.Changed("weight") {
				settings.StartWeightKg = setStartWeight
			}
			if flags.Changed("target-weight") {
				settings.TargetWeightKg = setTargetWeight
			}
			if flags.Changed("start-date") {
				settings.DietStartDate = setStartDate
			}
			if flags.Changed("view") {
				settings.WeeklyViewMode = setViewMode
			}
			if flags.Changed("report") {
				settings.ReportEnabled = setReport
			}
			if flags.Changed("report-time") {
				hour, minute, err := parseClock(setReportTime)
				if err != nil {
					return err
				}
				settings.ReportHour = hour
				settings.ReportMinute = minute
			}
			if flags.Changed("meal-reminders") {
				settings.MealRemindersOn = setMealReminders
			}

			saved, err := service.SaveSettings(st, settings)
			if err != nil {
				return err
			}
			// Changed goals can flip past days, so badges get reconciled
			// before anything reads them.
			if err := service.EvaluateBadges(st, saved, time.Now()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goal burn: %d kcal/day\n", saved.GoalBurn)
			return nil
		})
	},
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			settings, err := service.LoadSettings(st)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "BMR: %d kcal\n", settings.BMR)
			fmt.Fprintf(out, "Intake goal: %d kcal\n", settings.IntakeGoal)
			fmt.Fprintf(out, "Exercise goal: %d kcal\n", settings.ExerciseGoal)
			fmt.Fprintf(out, "Goal burn: %d kcal/day\n", settings.GoalBurn)
			fmt.Fprintf(out, "Meal limit: %d kcal\n", settings.MealLimitKcal)
			fmt.Fprintf(out, "Start weight: %.1f kg\n", settings.StartWeightKg)
			fmt.Fprintf(out, "Target weight: %.1f kg\n", settings.TargetWeightKg)
			fmt.Fprintf(out, "Diet start: %s\n", valueOrUnset(settings.DietStartDate))
			fmt.Fprintf(out, "Weekly view: %s\n", settings.WeeklyViewMode)
			fmt.Fprintf(out, "Daily report: %s at %02d:%02d\n", onOff(settings.ReportEnabled), settings.ReportHour, settings.ReportMinute)
			fmt.Fprintf(out, "Meal reminders: %s\n", onOff(settings.MealRemindersOn))
			return nil
		})
	},
}

var (
	bmrGender string
	bmrWeight float64
	bmrHeight float64
	bmrAge    int
)

var settingsBMRCmd = &cobra.Command{
	Use:   "estimate-bmr",
	Short: "Estimate basal metabolic rate from body stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		bmr, err := service.EstimateBMR(bmrGender, bmrWeight, bmrHeight, bmrAge)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Estimated BMR: %d kcal/day\n", bmr)
		fmt.Fprintln(cmd.OutOrStdout(), "Apply it with: calcal settings set --bmr", bmr)
		return nil
	},
}

func parseClock(value string) (int, int, error) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q (expected HH:MM)", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q (expected HH:MM)", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q (expected HH:MM)", value)
	}
	return hour, minute, nil
}

func valueOrUnset(v string) string {
	if v == "" {
		return "not set"
	}
	return v
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsBMRCmd)

	settingsSetCmd.Flags().IntVar(&setBMR, "bmr", 0, "Basal metabolic rate in kcal")
	settingsSetCmd.Flags().IntVar(&setIntakeGoal, "intake-goal", 0, "Daily intake goal in kcal")
	settingsSetCmd.Flags().IntVar(&setExerciseGoal, "exercise-goal", 0, "Daily exercise goal in kcal")
	settingsSetCmd.Flags().IntVar(&setMealLimit, "meal-limit", 0, "Per-meal kcal limit (0 disables)")
	settingsSetCmd.Flags().Float64Var(&setStartWeight, "weight", 0, "Starting weight in kg")
	settingsSetCmd.Flags().Float64Var(&setTargetWeight, "target-weight", 0, "Target weight in kg")
	settingsSetCmd.Flags().StringVar(&setStartDate, "start-date", "", "Diet start date YYYY-MM-DD")
	settingsSetCmd.Flags().StringVar(&setViewMode, "view", "", "Weekly view mode: all, photos, calories")
	settingsSetCmd.Flags().BoolVar(&setReport, "report", false, "Enable the daily report reminder")
	settingsSetCmd.Flags().StringVar(&setReportTime, "report-time", "", "Daily report time HH:MM")
	settingsSetCmd.Flags().BoolVar(&setMealReminders, "meal-reminders", false, "Enable per-meal reminders")

	settingsBMRCmd.Flags().StringVar(&bmrGender, "gender", "", "male or female")
	settingsBMRCmd.Flags().Float64Var(&bmrWeight, "weight", 0, "Weight in kg")
	settingsBMRCmd.Flags().Float64Var(&bmrHeight, "height", 0, "Height in cm")
	settingsBMRCmd.Flags().IntVar(&bmrAge, "age", 0, "Age in years")
}
