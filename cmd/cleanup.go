package cmd

import "github.com/spf13/cobra"

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove all checked tasks",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		list, err := loadList()
		if err != nil {
			return err
		}
		if err := list.Cleanup(); err != nil {
			return err
		}
		printUnchecked(list)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanupCmd)
}
