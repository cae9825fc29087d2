package calcal

import (
	"fmt"

	"github.com/LeeJaeHyuck/calory-calendar/internal/service"
	"github.com/LeeJaeHyuck/calory-calendar/internal/store"
	"github.com/spf13/cobra"
)

var dayDate string

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Show one day's calorie balance and goal status",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dateOrToday(dayDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			settings, err := service.LoadSettings(st)
			if err != nil {
				return err
			}
			rec, err := st.DayRecord(date)
			if err != nil {
				return err
			}
			balance := service.ComputeDailyBalance(rec, settings)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", balance.Date)
			fmt.Fprintf(out, "Breakfast: %d kcal%s\n", balance.Breakfast.Total, overLimitMark(balance.Breakfast.OverLimit))
			fmt.Fprintf(out, "Lunch: %d kcal%s\n", balance.Lunch.Total, overLimitMark(balance.Lunch.OverLimit))
			fmt.Fprintf(out, "Dinner: %d kcal%s\n", balance.Dinner.Total, overLimitMark(balance.Dinner.OverLimit))
			fmt.Fprintf(out, "Intake: %d kcal\n", balance.IntakeTotal)
			fmt.Fprintf(out, "Exercise: %d kcal\n", balance.ExerciseKcal)
			fmt.Fprintf(out, "Net burn: %d kcal\n", balance.NetBurn)
			if settings.GoalBurn > 0 {
				fmt.Fprintf(out, "Goal: %d kcal/day (%s)\n", settings.GoalBurn, metLabel(balance.GoalMet))
			} else {
				fmt.Fprintln(out, "Goal: not set")
			}
			if rec.WeightKg > 0 {
				fmt.Fprintf(out, "Weight: %.1f kg\n", rec.WeightKg)
			}
			if rec.DiaryText != "" {
				fmt.Fprintf(out, "Diary: %s\n", rec.DiaryText)
			}
			return nil
		})
	},
}

func overLimitMark(over bool) string {
	if over {
		return " (over limit)"
	}
	return ""
}

func metLabel(met bool) string {
	if met {
		return "met"
	}
	return "missed"
}

func init() {
	rootCmd.AddCommand(dayCmd)
	dayCmd.Flags().StringVar(&dayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
