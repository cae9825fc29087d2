package calcal

import (
	"fmt"

	"github.com/LeeJaeHyuck/calory-calendar/internal/store"
	"github.com/spf13/cobra"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Log daily exercise burn",
}

var exerciseDate string

var exerciseSetCmd = &cobra.Command{
	Use:   "set <kcal>",
	Short: "Record exercise kcal for a day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kcal, err := parseKcalArg("kcal", args[0])
		if err != nil {
			return err
		}
		date, err := dateOrToday(exerciseDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			if err := st.SaveExercise(date, kcal); err != nil {
				return err
			}
			// Exercise changes the day's net burn, so badges move too.
			if err := refreshDerived(st); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %d kcal of exercise on %s\n", kcal, date)
			return nil
		})
	},
}

var exerciseShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show exercise kcal for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dateOrToday(exerciseDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			kcal, err := st.ExerciseFor(date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exercise on %s: %d kcal\n", date, kcal)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exerciseCmd)
	exerciseCmd.AddCommand(exerciseSetCmd)
	exerciseCmd.AddCommand(exerciseShowCmd)
	exerciseCmd.PersistentFlags().StringVar(&exerciseDate, "date", "", "Date YYYY-MM-DD (default today)")
}
