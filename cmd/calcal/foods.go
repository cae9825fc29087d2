package calcal

import (
	"fmt"

	"github.com/LeeJaeHyuck/calory-calendar/internal/service"
	"github.com/LeeJaeHyuck/calory-calendar/internal/store"
	"github.com/spf13/cobra"
)

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "Browse the food catalog derived from logged meals",
}

var foodsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known foods with their latest kcal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			catalog, err := service.LoadCatalog(st)
			if err != nil {
				return err
			}
			if len(catalog) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No foods logged yet.")
				return nil
			}
			for _, entry := range catalog {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %d kcal\n", entry.Name, entry.Kcal)
			}
			return nil
		})
	},
}

var foodsRebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the food catalog cache from meal records",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			catalog, err := service.RebuildCatalogCache(st)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rebuilt catalog with %d food(s)\n", len(catalog))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(foodsCmd)
	foodsCmd.AddCommand(foodsListCmd)
	foodsCmd.AddCommand(foodsRebuildCmd)
}
