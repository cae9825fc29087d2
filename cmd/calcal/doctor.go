package calcal

import (
	"fmt"

	"github.com/LeeJaeHyuck/calory-calendar/internal/service"
	"github.com/LeeJaeHyuck/calory-calendar/internal/store"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks on the record store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			issues, err := service.ScanStore(st)
			if err != nil {
				return err
			}
			if len(issues) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "All records healthy.")
				return nil
			}
			for _, issue := range issues {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", issue.Key, issue.Problem)
			}
			return fmt.Errorf("doctor found %d integrity issue(s)", len(issues))
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
