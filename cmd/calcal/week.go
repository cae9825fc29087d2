package calcal

import (
	"fmt"
	"io"
	"time"

	"github.com/LeeJaeHyuck/calory-calendar/internal/model"
	"github.com/LeeJaeHyuck/calory-calendar/internal/service"
	"github.com/LeeJaeHyuck/calory-calendar/internal/store"
	"github.com/spf13/cobra"
)

var (
	weekDate   string
	weekOffset int
	weekView   string
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show a Monday-first weekly breakdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		anchor := time.Now()
		if weekDate != "" {
			parsed, err := service.ParseDate(weekDate)
			if err != nil {
				return err
			}
			anchor = parsed
		}
		return withStore(func(st *store.Store) error {
			settings, err := service.LoadSettings(st)
			if err != nil {
				return err
			}
			if weekView != "" {
				settings.WeeklyViewMode = weekView
			}
			report, err := service.BuildWeekReport(st, settings, anchor, weekOffset)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Week %d (from %s)\n", report.WeekOfMonth, report.Monday)
			for _, row := range report.Rows {
				fmt.Fprintf(out, "%s  intake %4d  net %5d%s\n", row.Date, row.Total, row.NetBurn, badgeMark(row.GoalMet))
				switch report.ViewMode {
				case model.ViewModePhotos:
					for _, photo := range row.Photos {
						fmt.Fprintf(out, "    photo %s\n", photo.URI)
					}
				case model.ViewModeCalories:
					fmt.Fprintf(out, "    B %d / L %d / D %d\n", row.Breakfast.Total, row.Lunch.Total, row.Dinner.Total)
				default:
					printSlotItems(out, "B", row.Breakfast)
					printSlotItems(out, "L", row.Lunch)
					printSlotItems(out, "D", row.Dinner)
					for _, photo := range row.Photos {
						fmt.Fprintf(out, "    photo %s\n", photo.URI)
					}
				}
				if row.WeightKg > 0 {
					fmt.Fprintf(out, "    weight %.1f kg\n", row.WeightKg)
				}
			}
			return nil
		})
	},
}

func printSlotItems(out io.Writer, label string, detail service.SlotDetail) {
	for _, item := range detail.Items {
		fmt.Fprintf(out, "    %s %s  %d kcal\n", label, item.Name, item.Kcal)
	}
}

func badgeMark(met bool) string {
	if met {
		return "  *"
	}
	return ""
}

func init() {
	rootCmd.AddCommand(weekCmd)
	weekCmd.Flags().StringVar(&weekDate, "date", "", "Anchor date YYYY-MM-DD (default today)")
	weekCmd.Flags().IntVar(&weekOffset, "offset", 0, "Week offset from the anchor (e.g. -1 for last week)")
	weekCmd.Flags().StringVar(&weekView, "view", "", "Override view mode: all, photos, calories")
}
