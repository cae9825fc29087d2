package calcal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/LeeJaeHyuck/calory-calendar/internal/store"
	"github.com/spf13/cobra"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Log measured body weight",
}

var weightDate string

var weightSetCmd = &cobra.Command{
	Use:   "set <kg>",
	Short: "Record weight for a day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kg, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
		if err != nil || kg <= 0 {
			return fmt.Errorf("invalid weight %q (kg, > 0)", args[0])
		}
		date, err := dateOrToday(weightDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			if err := st.SaveWeight(date, kg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %.1f kg on %s\n", kg, date)
			return nil
		})
	},
}

var weightShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show recorded weight for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dateOrToday(weightDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			kg, err := st.WeightFor(date)
			if err != nil {
				return err
			}
			if kg == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No weight recorded on %s\n", date)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Weight on %s: %.1f kg\n", date, kg)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightSetCmd)
	weightCmd.AddCommand(weightShowCmd)
	weightCmd.PersistentFlags().StringVar(&weightDate, "date", "", "Date YYYY-MM-DD (default today)")
}
