package cmd

import "github.com/spf13/cobra"

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all tasks",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		list, err := loadList()
		if err != nil {
			return err
		}
		if err := list.Clear(); err != nil {
			return err
		}
		printUnchecked(list)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
