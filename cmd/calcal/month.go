package calcal

import (
	"fmt"
	"time"

	"github.com/LeeJaeHyuck/calory-calendar/internal/service"
	"github.com/LeeJaeHyuck/calory-calendar/internal/store"
	"github.com/spf13/cobra"
)

var monthFlag string

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Show the monthly calendar grid with totals and projection",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		year, month := now.Year(), now.Month()
		if monthFlag != "" {
			parsed, err := time.ParseInLocation("2006-01", monthFlag, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --month %q (expected YYYY-MM)", monthFlag)
			}
			year, month = parsed.Year(), parsed.Month()
		}
		return withStore(func(st *store.Store) error {
			settings, err := service.LoadSettings(st)
			if err != nil {
				return err
			}
			grid, err := service.BuildMonthGrid(st, settings, year, month)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %d\n", grid.Month, grid.Year)
			fmt.Fprintln(out, "Mon   Tue   Wed   Thu   Fri   Sat   Sun")
			for i, cell := range grid.Cells {
				if cell.Empty {
					fmt.Fprint(out, "      ")
				} else if cell.HasRecord {
					fmt.Fprintf(out, "%2d*   ", cell.Day)
				} else {
					fmt.Fprintf(out, "%2d    ", cell.Day)
				}
				if (i+1)%7 == 0 {
					fmt.Fprintln(out)
				}
			}
			fmt.Fprintf(out, "\nActive days: %d\n", grid.ActiveDays)
			fmt.Fprintf(out, "Total intake: %d kcal\n", grid.TotalIntake)
			fmt.Fprintf(out, "Total net burn: %d kcal\n", grid.TotalNetBurn)
			printProjection(out, grid.Projection)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(monthCmd)
	monthCmd.Flags().StringVar(&monthFlag, "month", "", "Month YYYY-MM (default current)")
}
