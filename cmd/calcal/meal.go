package calcal

import (
	"fmt"

	"github.com/LeeJaeHyuck/calory-calendar/internal/model"
	"github.com/LeeJaeHyuck/calory-calendar/internal/store"
	"github.com/spf13/cobra"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log meals per slot",
}

var mealDate string

var mealAddCmd = &cobra.Command{
	Use:   "add <slot> <name> <kcal>",
	Short: "Add a food item to a meal slot",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := parseSlotArg(args[0])
		if err != nil {
			return err
		}
		name := args[1]
		if name == "" {
			return fmt.Errorf("food name must not be empty")
		}
		kcal, err := parseKcalArg("kcal", args[2])
		if err != nil {
			return err
		}
		date, err := dateOrToday(mealDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			meals, err := st.MealsFor(date)
			if err != nil {
				return err
			}
			meals.SetItems(slot, append(meals.Items(slot), model.MealItem{Name: name, Kcal: kcal}))
			if err := st.SaveMeals(date, meals); err != nil {
				return err
			}
			if err := refreshDerived(st); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%d kcal) to %s on %s\n", name, kcal, slot, date)
			return nil
		})
	},
}

var mealRemoveCmd = &cobra.Command{
	Use:   "remove <slot> <index>",
	Short: "Remove an item from a meal slot by 1-based index",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := parseSlotArg(args[0])
		if err != nil {
			return err
		}
		index, err := parseKcalArg("index", args[1])
		if err != nil {
			return err
		}
		date, err := dateOrToday(mealDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			meals, err := st.MealsFor(date)
			if err != nil {
				return err
			}
			items := meals.Items(slot)
			if index > len(items) {
				return fmt.Errorf("%s on %s has only %d item(s)", slot, date, len(items))
			}
			removed := items[index-1]
			meals.SetItems(slot, append(items[:index-1], items[index:]...))
			if err := st.SaveMeals(date, meals); err != nil {
				return err
			}
			if err := refreshDerived(st); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s (%d kcal) from %s on %s\n", removed.Name, removed.Kcal, slot, date)
			return nil
		})
	},
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a day's meals by slot",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dateOrToday(mealDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			meals, err := st.MealsFor(date)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Meals on %s\n", date)
			for _, slot := range model.AllSlots {
				items := meals.Items(slot)
				total := 0
				for _, item := range items {
					total += item.Kcal
				}
				fmt.Fprintf(out, "%s (%d kcal):\n", slot, total)
				if len(items) == 0 {
					fmt.Fprintln(out, "  (none)")
					continue
				}
				for i, item := range items {
					fmt.Fprintf(out, "  %d. %s  %d kcal\n", i+1, item.Name, item.Kcal)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealAddCmd)
	mealCmd.AddCommand(mealRemoveCmd)
	mealCmd.AddCommand(mealListCmd)
	mealCmd.PersistentFlags().StringVar(&mealDate, "date", "", "Date YYYY-MM-DD (default today)")
}
