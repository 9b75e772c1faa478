package task

import "testing"

func TestParseRenderRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		task Task
		line string
	}{
		{"open task", Task{Status: Todo, Note: "buy milk"}, "- [ ] buy milk"},
		{"done task", Task{Status: Done, Note: "write spec"}, "- [x] write spec"},
		{"empty note open", Task{Status: Todo, Note: ""}, "- [ ] "},
		{"empty note done", Task{Status: Done, Note: ""}, "- [x] "},
		{"note with brackets", Task{Status: Todo, Note: "fix [ ] rendering"}, "- [ ] fix [ ] rendering"},
		{"note with leading dash", Task{Status: Done, Note: "- nested"}, "- [x] - nested"},
		{"note with trailing space", Task{Status: Todo, Note: "pad "}, "- [ ] pad "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.Render(); got != tt.line {
				t.Errorf("Render: got %q, want %q", got, tt.line)
			}
			parsed, err := Parse(tt.line)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.line, err)
			}
			if parsed != tt.task {
				t.Errorf("Parse(Render): got %+v, want %+v", parsed, tt.task)
			}
		})
	}
}

func TestParseRejectsMalformedLines(t *testing.T) {
	lines := []string{
		"",
		"buy milk",
		"- [y] wrong status",
		"- [X] uppercase status",
		"-[x] missing space",
		"- [x]",
		"- [ ]",
		"[x] no dash",
		" - [x] leading space",
	}

	for _, line := range lines {
		if _, err := Parse(line); err == nil {
			t.Errorf("Parse(%q): expected error, got nil", line)
		}
	}
}

func TestCheckUndoIdempotent(t *testing.T) {
	open := New("a")
	if open.Status != Todo {
		t.Fatalf("New task should start open")
	}

	checked := open.Check()
	if checked.Status != Done || checked.Note != "a" {
		t.Errorf("Check: got %+v", checked)
	}
	if checked.Check() != checked {
		t.Errorf("Check should be idempotent")
	}

	undone := checked.Undo()
	if undone != open {
		t.Errorf("Undo after Check should restore the open task, got %+v", undone)
	}
	if undone.Undo() != undone {
		t.Errorf("Undo should be idempotent")
	}
}

func TestCheckUndoNonStrictInverse(t *testing.T) {
	// Starting from Done, Check(Undo) restores the original...
	done := Task{Status: Done, Note: "n"}
	if done.Undo().Check() != done {
		t.Errorf("Check(Undo(done)) should restore done")
	}
	// ...but Undo(Check) from Done does not: both operations are no-op-safe,
	// not full inverses.
	if done.Check().Undo() == done {
		t.Errorf("Undo(Check(done)) should yield an open task, not done")
	}
}

func TestValidateNote(t *testing.T) {
	if err := ValidateNote("plain note"); err != nil {
		t.Errorf("plain note rejected: %v", err)
	}
	if err := ValidateNote(""); err != nil {
		t.Errorf("empty note rejected: %v", err)
	}
	if err := ValidateNote("two\nlines"); err == nil {
		t.Errorf("embedded newline accepted")
	}
	if err := ValidateNote("carriage\rreturn"); err == nil {
		t.Errorf("embedded carriage return accepted")
	}
}
