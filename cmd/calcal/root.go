package calcal

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "calcal",
	Short: "calcal tracks daily calorie balance, badges, and weight goals",
	Long:  "calcal is a local-first diet tracking CLI: log meals, weight, and exercise per day, earn badges for met goals, and project weight from your accumulated calorie deficit.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
