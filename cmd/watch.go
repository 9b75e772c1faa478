package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/todocli/todo/internal/config"
	"github.com/todocli/todo/internal/todolist"
	"github.com/todocli/todo/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reprint the open tasks whenever the todo file changes",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	path, err := config.Resolve(flagFile)
	if err != nil {
		return err
	}

	// Initial load also creates the file, so the watcher has something
	// to observe on first run.
	list, err := todolist.Load(path)
	if err != nil {
		return err
	}
	printUnchecked(list)

	reload := func() {
		list, err := todolist.Load(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return
		}
		fmt.Println()
		printUnchecked(list)
	}

	w, err := watcher.New(path, reload)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w.Run(ctx, func(err error) {
		fmt.Fprintln(os.Stderr, "watch error:", err)
	})
	return nil
}
