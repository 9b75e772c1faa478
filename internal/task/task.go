// Package task handles single todo entries and their line format.
package task

import (
	"strings"

	"github.com/todocli/todo/internal/clierr"
)

// Status is the binary state of a task.
type Status int

const (
	// Todo marks an open task.
	Todo Status = iota
	// Done marks a completed task.
	Done
)

// Task represents one todo entry: a status plus a free-text note.
// The note is the content of a single line and never contains a line break.
type Task struct {
	Status Status
	Note   string
}

// New constructs an open task with the given note.
func New(note string) Task {
	return Task{Status: Todo, Note: note}
}

// Check returns the task marked done. Already-done tasks are returned unchanged.
func (t Task) Check() Task {
	t.Status = Done
	return t
}

// Undo returns the task reopened. Already-open tasks are returned unchanged.
func (t Task) Undo() Task {
	t.Status = Todo
	return t
}

// Line format markers. The note is everything after the marker, verbatim.
const (
	doneMarker = "- [x] "
	todoMarker = "- [ ] "
)

// Parse reads one line of the todo file. The line must match exactly
// `- [x] note` or `- [ ] note` (note may be empty); anything else is a
// PARSE_ERROR. Malformed lines are fatal for the caller; a file that
// stops matching the grammar was edited out from under us.
func Parse(line string) (Task, error) {
	if note, ok := strings.CutPrefix(line, doneMarker); ok {
		return Task{Status: Done, Note: note}, nil
	}
	if note, ok := strings.CutPrefix(line, todoMarker); ok {
		return Task{Status: Todo, Note: note}, nil
	}
	return Task{}, clierr.Newf(clierr.ParseError, "malformed task line %q", line)
}

// Render produces the persisted form, the exact inverse of Parse.
func (t Task) Render() string {
	if t.Status == Done {
		return doneMarker + t.Note
	}
	return todoMarker + t.Note
}

// ValidateNote rejects notes that would corrupt the one-line-per-task format.
func ValidateNote(note string) error {
	if strings.ContainsAny(note, "\r\n") {
		return clierr.New(clierr.InvalidNote, "task note must not contain a line break")
	}
	return nil
}
