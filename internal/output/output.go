// Package output renders task listings for the terminal.
package output

import (
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/todocli/todo/internal/task"
)

var (
	dimStyle  = lipgloss.NewStyle().Faint(true)
	doneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	todoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Display glyphs. These are the terminal form only; the persisted form
// is always the "- [x]"/"- [ ]" line grammar.
const (
	doneGlyph = "✓"
	todoGlyph = "✖"
)

// DisableColor strips all styling from listing output.
func DisableColor() {
	dimStyle = lipgloss.NewStyle()
	doneStyle = lipgloss.NewStyle()
	todoStyle = lipgloss.NewStyle()
}

// ColorWanted reports whether styled output should be used for stdout
// under the "auto" policy: a real terminal with NO_COLOR/CLICOLOR unset.
func ColorWanted() bool {
	if termenv.EnvNoColor() {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Display returns the terminal form of a task: status glyph, space, note.
func Display(t task.Task) string {
	if t.Status == task.Done {
		return doneStyle.Render(doneGlyph) + " " + t.Note
	}
	return todoStyle.Render(todoGlyph) + " " + t.Note
}

// PrintTasks writes one listing line per task: a dimmed 1-based index
// followed by the display form. The index is the task's position in the
// full list, so it stays valid as a check/undo/remove argument even in
// filtered listings.
func PrintTasks(w io.Writer, tasks iter.Seq2[int, task.Task]) {
	for i, t := range tasks {
		fmt.Fprintf(w, " %s %s\n", dimStyle.Render(strconv.Itoa(i)+"."), Display(t))
	}
}
