package calcal

import (
	"fmt"
	"io"
	"time"

	"github.com/LeeJaeHyuck/calory-calendar/internal/service"
	"github.com/LeeJaeHyuck/calory-calendar/internal/store"
	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project current weight from the lifetime calorie deficit",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			settings, err := service.LoadSettings(st)
			if err != nil {
				return err
			}
			report, err := service.LifetimeReport(st, settings, time.Now())
			if err != nil {
				return err
			}
			projection := service.ProjectWeight(report.TotalNetBurn, settings)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Since %s: %d active days, %d kcal net burn\n", valueOrUnset(settings.DietStartDate), report.ActiveDays, report.TotalNetBurn)
			printProjection(out, projection)

			badges, err := service.CountBadges(st, settings, time.Now())
			if err != nil {
				return err
			}
			if remaining := service.BadgeAdjustedDaysToGoal(settings, badges); remaining > 0 {
				fmt.Fprintf(out, "Goal days remaining (after %d badges): %d\n", badges, remaining)
			}
			return nil
		})
	},
}

func printProjection(out io.Writer, p service.Projection) {
	fmt.Fprintf(out, "Estimated weight: %.1f kg (%.1f kg lost)\n", p.EstimatedWeightKg, p.LostKg)
	if p.GoalAchieved {
		fmt.Fprintln(out, "Target weight reached!")
		return
	}
	if p.DaysToNextKg != nil {
		fmt.Fprintf(out, "Next kg in ~%d day(s)\n", *p.DaysToNextKg)
	}
	if p.DaysToGoal != nil {
		fmt.Fprintf(out, "Target weight in ~%d day(s)\n", *p.DaysToGoal)
	}
}

func init() {
	rootCmd.AddCommand(projectCmd)
}
