package calcal

import (
	"fmt"
	"strings"

	"github.com/LeeJaeHyuck/calory-calendar/internal/store"
	"github.com/spf13/cobra"
)

var diaryCmd = &cobra.Command{
	Use:   "diary",
	Short: "Keep a short diary note per day",
}

var diaryDate string

var diarySetCmd = &cobra.Command{
	Use:   "set <text>",
	Short: "Write the diary note for a day",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		date, err := dateOrToday(diaryDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			if err := st.SaveDiary(date, text); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved diary for %s\n", date)
			return nil
		})
	},
}

var diaryShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the diary note for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dateOrToday(diaryDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			text, err := st.DiaryFor(date)
			if err != nil {
				return err
			}
			if text == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "No diary on %s\n", date)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", date, text)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(diaryCmd)
	diaryCmd.AddCommand(diarySetCmd)
	diaryCmd.AddCommand(diaryShowCmd)
	diaryCmd.PersistentFlags().StringVar(&diaryDate, "date", "", "Date YYYY-MM-DD (default today)")
}
