package calcal

import (
	"fmt"
	"io"
	"time"

	"github.com/LeeJaeHyuck/calory-calendar/internal/service"
	"github.com/LeeJaeHyuck/calory-calendar/internal/store"
	"github.com/spf13/cobra"
)

// printScheduler writes the reminder plan instead of delivering it. The CLI
// has no notification daemon; this shows what a delivery backend would do.
type printScheduler struct {
	out io.Writer
}

func (p printScheduler) Schedule(tag string, at time.Time, title, body string) error {
	fmt.Fprintf(p.out, "schedule %-14s %s  %s: %s\n", tag, at.Format("2006-01-02 15:04"), title, body)
	return nil
}

func (p printScheduler) CancelByTag(tag string) error {
	fmt.Fprintf(p.out, "cancel   %s\n", tag)
	return nil
}

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Show the reminder plan for today",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			settings, err := service.LoadSettings(st)
			if err != nil {
				return err
			}
			now := time.Now()
			sched := printScheduler{out: cmd.OutOrStdout()}

			if err := service.PlanDailyReport(sched, settings, now); err != nil {
				return err
			}
			plan, err := st.MealsFor(service.FormatDate(now))
			if err != nil {
				return err
			}
			return service.PlanMealReminders(sched, settings, plan, now)
		})
	},
}

func init() {
	rootCmd.AddCommand(remindCmd)
}
