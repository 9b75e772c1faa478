package cmd

import "github.com/spf13/cobra"

var checkCmd = &cobra.Command{
	Use:   "check <index>",
	Short: "Check a task by index",
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
		// Out-of-range indexes are a silent no-op; the listing below is
		// all the feedback the user gets either way.
		if _, err := list.Check(index); err != nil {
			return err
		}
		printUnchecked(list)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
