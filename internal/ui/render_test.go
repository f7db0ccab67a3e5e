package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/hamidafilali-design/Taskmanager/internal/todo"
)

func TestRenderEmpty(t *testing.T) {
	for _, tasks := range [][]todo.Task{nil, {}} {
		out := Render(tasks, 0)
		if !strings.Contains(out, "Your task list is empty. Add something!") {
			t.Errorf("empty render missing message:\n%s", out)
		}
		if !strings.Contains(out, "Status") {
			t.Errorf("empty render missing panel title:\n%s", out)
		}
	}
}

func TestRenderTable(t *testing.T) {
	tasks := []todo.Task{
		{Description: "Write report", Done: true},
		{Description: "Read book"},
	}
	out := Render(tasks, 0)

	for _, want := range []string{"Student Task Manager", "#", "Task Description", "Status", "Write report", "Read book", "Done", "Pending"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	if !strings.Contains(out, "1 done · 1 pending") {
		t.Errorf("render missing status summary:\n%s", out)
	}

	// Rows keep insertion order and 1-based numbering.
	first := strings.Index(out, "Write report")
	second := strings.Index(out, "Read book")
	if first < 0 || second < 0 || first > second {
		t.Errorf("rows out of order:\n%s", out)
	}
	for i, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Write report") && !strings.Contains(line, "1") {
			t.Errorf("line %d lacks position 1: %q", i, line)
		}
		if strings.Contains(line, "Read book") && !strings.Contains(line, "2") {
			t.Errorf("line %d lacks position 2: %q", i, line)
		}
	}
}

func TestRenderIsStateless(t *testing.T) {
	tasks := []todo.Task{{Description: "a"}}
	first := Render(tasks, 0)
	Render([]todo.Task{{Description: "other", Done: true}}, 0)
	if again := Render(tasks, 0); again != first {
		t.Errorf("render changed between calls:\n%s\n---\n%s", first, again)
	}
}

func TestRenderWidthCap(t *testing.T) {
	tasks := []todo.Task{{Description: strings.Repeat("long description ", 8)}}
	natural := Render(tasks, 0)
	capped := Render(tasks, 60)

	if lipgloss.Width(capped) > 60 {
		t.Errorf("capped render is %d wide, want <= 60", lipgloss.Width(capped))
	}
	if lipgloss.Width(natural) <= 60 {
		t.Fatalf("natural render unexpectedly narrow: %d", lipgloss.Width(natural))
	}
	if wide := Render(tasks, 1000); wide != natural {
		t.Error("a wide terminal should not stretch the table")
	}
}

func TestRenderMenu(t *testing.T) {
	out := renderMenu()
	for _, want := range []string{"1. View", "2. Add", "3. Complete", "4. Exit"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu missing %q: %q", want, out)
		}
	}
}
