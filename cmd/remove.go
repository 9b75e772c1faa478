package cmd

import "github.com/spf13/cobra"

var removeCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove a task by index",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		list, err := loadList()
		if err != nil {
			return err
		}
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		if _, err := list.Remove(index); err != nil {
			return err
		}
		printUnchecked(list)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
