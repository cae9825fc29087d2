package calcal

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/LeeJaeHyuck/calory-calendar/internal/model"
	"github.com/LeeJaeHyuck/calory-calendar/internal/service"
	"github.com/LeeJaeHyuck/calory-calendar/internal/store"
	"github.com/spf13/cobra"
)

var (
	suggestTarget int
	suggestSeed   int64
	suggestApply  bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest a day's meal plan from your food history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			settings, err := service.LoadSettings(st)
			if err != nil {
				return err
			}
			target := suggestTarget
			if target == 0 {
				target = settings.IntakeGoal
			}
			if target <= 0 {
				return fmt.Errorf("no intake target: set --target or an intake goal")
			}

			catalog, err := service.LoadCatalog(st)
			if err != nil {
				return err
			}
			if len(catalog) == 0 {
				return fmt.Errorf("no food history yet: log some meals first")
			}
			recent, err := service.RecentFoodNames(st, time.Now())
			if err != nil {
				return err
			}

			seed := suggestSeed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			plan := service.RecommendMealPlan(rand.New(rand.NewSource(seed)), target, catalog, recent)

			out := cmd.OutOrStdout()
			total := 0
			for _, slot := range model.AllSlots {
				fmt.Fprintf(out, "%s:\n", slot)
				for _, item := range plan.Items(slot) {
					fmt.Fprintf(out, "  %s  %d kcal\n", item.Name, item.Kcal)
					total += item.Kcal
				}
			}
			fmt.Fprintf(out, "Total: %d / %d kcal\n", total, target)

			if suggestApply {
				date := service.FormatDate(time.Now())
				if err := st.SaveMeals(date, plan); err != nil {
					return err
				}
				if err := refreshDerived(st); err != nil {
					return err
				}
				fmt.Fprintf(out, "Applied plan to %s\n", date)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().IntVar(&suggestTarget, "target", 0, "Target kcal (default: intake goal)")
	suggestCmd.Flags().Int64Var(&suggestSeed, "seed", 0, "Random seed (0 uses the clock)")
	suggestCmd.Flags().BoolVar(&suggestApply, "apply", false, "Save the plan as today's meals")
}
