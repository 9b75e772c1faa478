package cmd

import (
	"github.com/spf13/cobra"

	"github.com/todocli/todo/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Edit the list interactively",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		list, err := loadList()
		if err != nil {
			return err
		}
		return tui.Run(list)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
