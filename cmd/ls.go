package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/todocli/todo/internal/output"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List unchecked tasks",
	Args:  cobra.NoArgs,
	RunE:  runLs,
}

func init() {
	lsCmd.Flags().Bool("all", false, "list all tasks, including checked ones")
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, _ []string) error {
	list, err := loadList()
	if err != nil {
		return err
	}

	if all, _ := cmd.Flags().GetBool("all"); all {
		output.PrintTasks(os.Stdout, list.All())
		return nil
	}

	printUnchecked(list)
	return nil
}
