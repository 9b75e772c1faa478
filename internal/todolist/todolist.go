// Package todolist owns the ordered, file-backed task collection and the
// mutate-then-persist protocol: every mutation rewrites the whole file so
// the on-disk state is always a complete snapshot of memory.
package todolist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/todocli/todo/internal/clierr"
	"github.com/todocli/todo/internal/task"
)

const fileMode = 0o600

// Outcome reports whether an index-addressed mutation was applied.
// Out-of-range indexes are a deliberate silent no-op at the CLI, but
// callers and tests still need to tell the two cases apart.
type Outcome int

const (
	// Applied means the mutation ran and was persisted.
	Applied Outcome = iota
	// OutOfRange means the index missed the list; nothing was written.
	OutOfRange
)

// List is the ordered task collection for one invocation, backed by a file.
type List struct {
	path  string
	tasks []task.Task
}

// Load reads the todo file at path, creating it if it does not exist.
// Blank lines produce no task. Any other line that fails to parse aborts
// the load with its 1-based line number; a malformed file indicates
// external corruption and is never imported best-effort.
func Load(path string) (*List, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, fileMode) //nolint:gosec // path resolved from user config
	if err != nil {
		return nil, clierr.Wrap(clierr.IOError, err, "opening todo file")
	}
	defer f.Close()

	// Notes have no length cap, so read whole lines rather than scan
	// with a fixed token limit.
	l := &List{path: path}
	r := bufio.NewReader(f)
	for line := 1; ; line++ {
		text, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, clierr.Wrap(clierr.IOError, err, "reading todo file")
		}
		text = strings.TrimSuffix(text, "\n")
		text = strings.TrimSuffix(text, "\r")
		if text != "" {
			t, perr := task.Parse(text)
			if perr != nil {
				return nil, clierr.Newf(clierr.ParseError, "%s:%d: %v", path, line, perr)
			}
			l.tasks = append(l.tasks, t)
		}
		if err != nil {
			return l, nil
		}
	}
}

// Save rewrites the entire backing file, one rendered line per task in
// list order. It writes to a temp file in the same directory and renames
// it over the original so an interrupted write never leaves a truncated
// file behind. This is the sole write path.
func (l *List) Save() error {
	dir := filepath.Dir(l.path)
	tmp, err := os.CreateTemp(dir, ".todo-*")
	if err != nil {
		return clierr.Wrap(clierr.IOError, err, "creating temp file")
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, t := range l.tasks {
		fmt.Fprintln(w, t.Render())
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return clierr.Wrap(clierr.IOError, err, "writing todo file")
	}
	if err := tmp.Close(); err != nil {
		return clierr.Wrap(clierr.IOError, err, "writing todo file")
	}
	if err := os.Chmod(tmp.Name(), fileMode); err != nil {
		return clierr.Wrap(clierr.IOError, err, "writing todo file")
	}
	if err := os.Rename(tmp.Name(), l.path); err != nil {
		return clierr.Wrap(clierr.IOError, err, "replacing todo file")
	}
	return nil
}

// Add appends an open task built from note and persists.
func (l *List) Add(note string) error {
	if err := task.ValidateNote(note); err != nil {
		return err
	}
	l.tasks = append(l.tasks, task.New(note))
	return l.Save()
}

// Check marks the task at the 1-based index done, in place, and persists.
func (l *List) Check(index int) (Outcome, error) {
	return l.replace(index, task.Task.Check)
}

// Undo reopens the task at the 1-based index, in place, and persists.
func (l *List) Undo(index int) (Outcome, error) {
	return l.replace(index, task.Task.Undo)
}

func (l *List) replace(index int, fn func(task.Task) task.Task) (Outcome, error) {
	if index < 1 || index > len(l.tasks) {
		return OutOfRange, nil
	}
	l.tasks[index-1] = fn(l.tasks[index-1])
	if err := l.Save(); err != nil {
		return Applied, err
	}
	return Applied, nil
}

// Remove deletes the task at the 1-based index; later tasks shift down.
func (l *List) Remove(index int) (Outcome, error) {
	if index < 1 || index > len(l.tasks) {
		return OutOfRange, nil
	}
	l.tasks = append(l.tasks[:index-1], l.tasks[index:]...)
	if err := l.Save(); err != nil {
		return Applied, err
	}
	return Applied, nil
}

// Cleanup drops every done task, preserving the order of the rest.
// It always persists, even when nothing was removed.
func (l *List) Cleanup() error {
	kept := l.tasks[:0]
	for _, t := range l.tasks {
		if t.Status == task.Todo {
			kept = append(kept, t)
		}
	}
	l.tasks = kept
	return l.Save()
}

// Clear drops all tasks regardless of status and persists.
func (l *List) Clear() error {
	l.tasks = nil
	return l.Save()
}

// Len returns the number of tasks in the list.
func (l *List) Len() int { return len(l.tasks) }

// Get returns the task at the 1-based index, reporting whether it exists.
func (l *List) Get(index int) (task.Task, bool) {
	if index < 1 || index > len(l.tasks) {
		return task.Task{}, false
	}
	return l.tasks[index-1], true
}

// Unchecked yields only the open tasks in list order. The index is the
// 1-based position within the FULL list; filtering does not renumber,
// so the printed index always addresses the task in check/undo/remove.
func (l *List) Unchecked() iter.Seq2[int, task.Task] {
	return l.filtered(func(t task.Task) bool { return t.Status == task.Todo })
}

// All yields every task with the same 1-based indexing as Unchecked.
func (l *List) All() iter.Seq2[int, task.Task] {
	return l.filtered(func(task.Task) bool { return true })
}

func (l *List) filtered(keep func(task.Task) bool) iter.Seq2[int, task.Task] {
	return func(yield func(int, task.Task) bool) {
		for i, t := range l.tasks {
			if !keep(t) {
				continue
			}
			if !yield(i+1, t) {
				return
			}
		}
	}
}
