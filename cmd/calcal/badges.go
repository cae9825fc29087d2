package calcal

import (
	"fmt"
	"time"

	"github.com/LeeJaeHyuck/calory-calendar/internal/service"
	"github.com/LeeJaeHyuck/calory-calendar/internal/store"
	"github.com/spf13/cobra"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show earned goal badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			settings, err := service.LoadSettings(st)
			if err != nil {
				return err
			}
			count, err := service.CountBadges(st, settings, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Badges earned: %d\n", count)
			return nil
		})
	},
}

var badgesCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Re-evaluate badges for every day since the diet start",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			settings, err := service.LoadSettings(st)
			if err != nil {
				return err
			}
			if err := service.EvaluateBadges(st, settings, time.Now()); err != nil {
				return err
			}
			count, err := service.CountBadges(st, settings, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Badges after check: %d\n", count)
			return nil
		})
	},
}

var badgesYesterdayCmd = &cobra.Command{
	Use:   "yesterday",
	Short: "Show whether yesterday's goal was met",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			settings, err := service.LoadSettings(st)
			if err != nil {
				return err
			}
			verdict, err := service.YesterdayReport(st, settings, time.Now())
			if err != nil {
				return err
			}
			if verdict == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No report for yesterday (goal not configured, or the diet had not started).")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: net burn %d vs goal %d\n", verdict.Date, verdict.NetBurn, verdict.GoalBurn)
			fmt.Fprintln(cmd.OutOrStdout(), verdict.Message)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(badgesCmd)
	badgesCmd.AddCommand(badgesCheckCmd)
	badgesCmd.AddCommand(badgesYesterdayCmd)
}
