// Package tui provides an interactive checklist over the todo file.
// Every mutation goes through todolist immediately, so quitting at any
// point never loses state: the file always matches what is on screen.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/todocli/todo/internal/output"
	"github.com/todocli/todo/internal/task"
	"github.com/todocli/todo/internal/todolist"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

type model struct {
	list   *todolist.List
	cursor int
	adding bool
	input  textinput.Model
	errMsg string
}

// Run starts the interactive checklist on the given list and blocks
// until the user quits.
func Run(list *todolist.List) error {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New task..."
	ti.CharLimit = 200

	m := model{list: list, input: ti}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.adding {
		return m.updateAdding(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < m.list.Len()-1 {
				m.cursor++
			}
		case " ", "x":
			m.toggle()
		case "d":
			if _, err := m.list.Remove(m.cursor + 1); err != nil {
				m.errMsg = err.Error()
			}
			m.clampCursor()
		case "C":
			if err := m.list.Cleanup(); err != nil {
				m.errMsg = err.Error()
			}
			m.clampCursor()
		case "a":
			m.adding = true
			m.errMsg = ""
			m.input.SetValue("")
			m.input.Focus()
		}
	}
	return m, nil
}

func (m *model) toggle() {
	t, ok := m.list.Get(m.cursor + 1)
	if !ok {
		return
	}
	var err error
	if t.Status == task.Done {
		_, err = m.list.Undo(m.cursor + 1)
	} else {
		_, err = m.list.Check(m.cursor + 1)
	}
	if err != nil {
		m.errMsg = err.Error()
	}
}

func (m model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			note := strings.TrimSpace(m.input.Value())
			if note == "" {
				m.errMsg = "task cannot be empty"
				return m, nil
			}
			if err := m.list.Add(note); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.cursor = m.list.Len() - 1
			m.leaveAdding()
			return m, nil
		case "esc":
			m.leaveAdding()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) leaveAdding() {
	m.adding = false
	m.errMsg = ""
	m.input.Blur()
}

func (m *model) clampCursor() {
	if m.cursor >= m.list.Len() {
		m.cursor = m.list.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("todo") + "\n\n")

	if m.list.Len() == 0 {
		b.WriteString(dimStyle.Render("  no tasks, press a to add one") + "\n")
	}
	for i, t := range m.list.All() {
		prefix := "  "
		if i-1 == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%s\n", prefix, output.Display(t))
	}

	if m.adding {
		b.WriteString("\n" + m.input.View() + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("space/x toggle · d delete · a add · C cleanup · q quit") + "\n")
	return b.String()
}
