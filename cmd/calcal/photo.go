package calcal

import (
	"fmt"
	"time"

	"github.com/LeeJaeHyuck/calory-calendar/internal/model"
	"github.com/LeeJaeHyuck/calory-calendar/internal/store"
	"github.com/spf13/cobra"
)

var photoCmd = &cobra.Command{
	Use:   "photo",
	Short: "Attach meal photos to a day",
}

var photoDate string

var photoAddCmd = &cobra.Command{
	Use:   "add <uri>",
	Short: "Attach a photo to a day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == "" {
			return fmt.Errorf("photo uri must not be empty")
		}
		date, err := dateOrToday(photoDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			photos, err := st.PhotosFor(date)
			if err != nil {
				return err
			}
			photos = append(photos, model.Photo{URI: args[0], Timestamp: time.Now().Format(time.RFC3339)})
			if err := st.SavePhotos(date, photos); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Attached photo to %s (%d total)\n", date, len(photos))
			return nil
		})
	},
}

var photoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a day's photos",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dateOrToday(photoDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			photos, err := st.PhotosFor(date)
			if err != nil {
				return err
			}
			if len(photos) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No photos on %s\n", date)
				return nil
			}
			for i, photo := range photos {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s (%s)\n", i+1, photo.URI, photo.Timestamp)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(photoCmd)
	photoCmd.AddCommand(photoAddCmd)
	photoCmd.AddCommand(photoListCmd)
	photoCmd.PersistentFlags().StringVar(&photoDate, "date", "", "Date YYYY-MM-DD (default today)")
}
