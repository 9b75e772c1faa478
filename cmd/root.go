// Package cmd implements the todo CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/todocli/todo/internal/clierr"
	"github.com/todocli/todo/internal/config"
	"github.com/todocli/todo/internal/output"
	"github.com/todocli/todo/internal/todolist"
)

// version is set at build time via ldflags.
var version = "dev"

// Global flags.
var (
	flagFile    string
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "todo [task...]",
	Short: "CLI todo-list tool",
	Long: `todo keeps an ordered task list in a plain-text file, one "- [ ] note"
line per task. Run it with text to add a task; every command prints the
remaining open tasks when it is done.`,
	Version:       version,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runRoot,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		configureColor()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagFile, "file", "", "path to the todo file (default ~/todo.txt)")
	pf.BoolVar(&flagNoColor, "no-color", false, "disable color output")
	pf.SetNormalizeFunc(normalizeFlags)
}

// normalizeFlags lets --nocolor work as an alias for --no-color.
func normalizeFlags(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "nocolor" {
		name = "no-color"
	}
	return pflag.NormalizedName(name)
}

// Execute runs the root command.
func Execute() {
	_, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	var cliErr *clierr.Error
	if errors.As(err, &cliErr) {
		os.Exit(cliErr.ExitCode())
	}
	os.Exit(1)
}

// runRoot adds a task when positional text is given, then prints the
// open tasks. With no arguments it just prints them.
func runRoot(_ *cobra.Command, args []string) error {
	list, err := loadList()
	if err != nil {
		return err
	}

	if len(args) > 0 {
		// Stored verbatim, but a note with no content at all addresses
		// nothing and is rejected, like the original's required argument.
		note := strings.Join(args, " ")
		if strings.TrimSpace(note) == "" {
			return clierr.New(clierr.InvalidNote, "task note must not be empty")
		}
		if err := list.Add(note); err != nil {
			return err
		}
	}

	printUnchecked(list)
	return nil
}

// loadList resolves the todo file path and loads it.
func loadList() (*todolist.List, error) {
	path, err := config.Resolve(flagFile)
	if err != nil {
		return nil, err
	}
	return todolist.Load(path)
}

// printUnchecked writes the open-task listing, the trailing step of
// every command except ls --all, watch, and tui.
func printUnchecked(list *todolist.List) {
	output.PrintTasks(os.Stdout, list.Unchecked())
}

// parseIndex converts a positional index argument. A non-integer is
// fatal; out-of-range integers are left to the list's silent no-op.
func parseIndex(arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, clierr.Newf(clierr.InvalidIndex, "invalid index %q: expected a number", arg)
	}
	return i, nil
}

// configureColor applies the flag > config > terminal color policy.
func configureColor() {
	if flagNoColor {
		output.DisableColor()
		return
	}

	mode := config.ColorAuto
	if home, err := os.UserHomeDir(); err == nil {
		if cfg, err := config.Load(home); err == nil && cfg.Color != "" {
			mode = cfg.Color
		}
	}

	switch mode {
	case config.ColorAlways:
	case config.ColorNever:
		output.DisableColor()
	default:
		if !output.ColorWanted() {
			output.DisableColor()
		}
	}
}
