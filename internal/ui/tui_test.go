package ui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/hamidafilali-design/Taskmanager/internal/todo"
)

type fakeSaver struct {
	saves int
	last  []todo.Task
	err   error
}

func (f *fakeSaver) Save(tasks []todo.Task) error {
	f.saves++
	f.last = append([]todo.Task(nil), tasks...)
	return f.err
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter     = tea.KeyMsg{Type: tea.KeyEnter}
	esc       = tea.KeyMsg{Type: tea.KeyEsc}
	backspace = tea.KeyMsg{Type: tea.KeyBackspace}
	space     = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	ctrlC     = tea.KeyMsg{Type: tea.KeyCtrlC}
)

// send feeds msgs to m and returns the command from the last one.
func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestAddTask(t *testing.T) {
	saver := &fakeSaver{}
	m := NewModel(saver, nil, nil)

	send(m, runes("2"), runes("Buy"), space, runes("milk"), enter)

	want := []todo.Task{{Description: "Buy milk"}}
	if !reflect.DeepEqual(m.Tasks(), want) {
		t.Errorf("tasks: got %+v, want %+v", m.Tasks(), want)
	}
	if saver.saves != 1 {
		t.Errorf("saves: got %d, want 1", saver.saves)
	}
	if m.mode != modeMenu {
		t.Errorf("mode after submit: got %v, want menu", m.mode)
	}
	if !strings.Contains(m.View(), "Task added successfully!") {
		t.Errorf("view missing confirmation:\n%s", m.View())
	}
}

func TestAddBlankIsIgnored(t *testing.T) {
	saver := &fakeSaver{}
	m := NewModel(saver, nil, nil)

	send(m, runes("2"), space, space, enter)

	if len(m.Tasks()) != 0 || saver.saves != 0 {
		t.Errorf("blank add: %d tasks, %d saves; want none", len(m.Tasks()), saver.saves)
	}
	if strings.Contains(m.View(), "Task added") {
		t.Error("blank add should not confirm")
	}
}

func TestAddEditing(t *testing.T) {
	saver := &fakeSaver{}
	m := NewModel(saver, nil, nil)

	// "q" is text while prompting, not quit.
	send(m, runes("2"), runes("Readx"), backspace, runes(" q"), enter)
	if got := m.Tasks(); len(got) != 1 || got[0].Description != "Read q" {
		t.Errorf("tasks: got %+v, want one task %q", got, "Read q")
	}

	send(m, runes("2"), runes("discard me"), esc)
	if len(m.Tasks()) != 1 || saver.saves != 1 {
		t.Errorf("esc should cancel: %d tasks, %d saves", len(m.Tasks()), saver.saves)
	}
	if m.mode != modeMenu {
		t.Errorf("mode after esc: got %v, want menu", m.mode)
	}
}

func TestMarkDone(t *testing.T) {
	saver := &fakeSaver{}
	tasks := []todo.Task{{Description: "one"}, {Description: "two"}, {Description: "three"}}
	m := NewModel(saver, tasks, nil)

	send(m, runes("3"), runes("2"), enter)

	want := []bool{false, true, false}
	for i, task := range m.Tasks() {
		if task.Done != want[i] {
			t.Errorf("task %d done: got %v, want %v", i+1, task.Done, want[i])
		}
	}
	if saver.saves != 1 {
		t.Errorf("saves: got %d, want 1", saver.saves)
	}
	if !strings.Contains(m.View(), "Task marked as completed.") {
		t.Errorf("view missing confirmation:\n%s", m.View())
	}
}

func TestMarkDoneOutOfRange(t *testing.T) {
	for _, input := range []string{"0", "4", "99999999999999999999999"} {
		t.Run(input, func(t *testing.T) {
			saver := &fakeSaver{}
			tasks := []todo.Task{{Description: "one"}, {Description: "two"}, {Description: "three"}}
			m := NewModel(saver, tasks, nil)

			send(m, runes("3"), runes(input), enter)

			for i, task := range m.Tasks() {
				if task.Done {
					t.Errorf("task %d marked done", i+1)
				}
			}
			if saver.saves != 0 {
				t.Errorf("saves: got %d, want 0", saver.saves)
			}
			if strings.Contains(m.View(), "marked as completed") {
				t.Error("out-of-range should not confirm")
			}
		})
	}
}

func TestMarkPromptAcceptsDigitsOnly(t *testing.T) {
	saver := &fakeSaver{}
	m := NewModel(saver, []todo.Task{{Description: "one"}}, nil)

	send(m, runes("3"), enter)
	if m.mode != modeMark || saver.saves != 0 {
		t.Fatalf("empty entry should keep prompting: mode %v, saves %d", m.mode, saver.saves)
	}

	send(m, runes("a1b"), enter)
	if !m.Tasks()[0].Done {
		t.Error("expected task 1 done after typing a1b")
	}
}

func TestMarkSkippedOnEmptyList(t *testing.T) {
	m := NewModel(&fakeSaver{}, nil, nil)
	send(m, runes("3"))
	if m.mode != modeMenu {
		t.Errorf("mode: got %v, want menu when list is empty", m.mode)
	}
}

func TestSaveFailureIsShownAndNotFatal(t *testing.T) {
	var logBuf bytes.Buffer
	logger := log.NewWithOptions(&logBuf, log.Options{Level: log.DebugLevel})
	saver := &fakeSaver{err: &todo.SaveError{Path: "tasks.json", Err: errors.New("disk full")}}
	m := NewModel(saver, nil, logger)

	cmd := send(m, runes("2"), runes("Buy milk"), enter)
	if isQuit(cmd) {
		t.Fatal("save failure must not quit")
	}

	view := m.View()
	if !strings.Contains(view, "Error saving tasks: disk full") {
		t.Errorf("view missing save error:\n%s", view)
	}
	if len(m.Tasks()) != 1 {
		t.Errorf("in-memory list: got %d tasks, want 1", len(m.Tasks()))
	}
	if !strings.Contains(logBuf.String(), "Save failed") {
		t.Errorf("save failure not logged: %q", logBuf.String())
	}

	// The menu keeps working.
	send(m, runes("3"), runes("1"), enter)
	if !m.Tasks()[0].Done {
		t.Error("mark done after failed save did not apply")
	}
}

func TestViewMode(t *testing.T) {
	m := NewModel(&fakeSaver{}, []todo.Task{{Description: "one"}}, nil)

	send(m, runes("1"))
	if m.mode != modeView || !strings.Contains(m.View(), "Press Enter to return...") {
		t.Fatalf("expected view mode, got %v:\n%s", m.mode, m.View())
	}
	send(m, enter)
	if m.mode != modeMenu {
		t.Errorf("enter should return to menu, got %v", m.mode)
	}

	// Enter on the menu is the default action.
	send(m, enter)
	if m.mode != modeView {
		t.Errorf("default action: got %v, want view", m.mode)
	}
}

func TestQuit(t *testing.T) {
	for name, key := range map[string]tea.KeyMsg{"4": runes("4"), "q": runes("q"), "ctrl+c": ctrlC} {
		t.Run(name, func(t *testing.T) {
			m := NewModel(&fakeSaver{}, nil, nil)
			if !isQuit(send(m, key)) {
				t.Fatal("expected quit command")
			}
			if !strings.Contains(m.View(), "Goodbye!") {
				t.Errorf("view after quit: %q", m.View())
			}
		})
	}
}

func TestCtrlCQuitsWhilePrompting(t *testing.T) {
	m := NewModel(&fakeSaver{}, nil, nil)
	if !isQuit(send(m, runes("2"), runes("half typed"), ctrlC)) {
		t.Fatal("ctrl+c should quit from the add prompt")
	}
}

func TestUnknownKeysIgnored(t *testing.T) {
	saver := &fakeSaver{}
	m := NewModel(saver, nil, nil)
	if cmd := send(m, runes("x"), runes("9"), esc); cmd != nil {
		t.Error("unexpected command for unknown keys")
	}
	if m.mode != modeMenu || saver.saves != 0 {
		t.Errorf("state changed: mode %v, saves %d", m.mode, saver.saves)
	}
}

func TestWindowSize(t *testing.T) {
	m := NewModel(&fakeSaver{}, nil, nil)
	send(m, tea.WindowSizeMsg{Width: 40, Height: 20})
	if m.width != 40 {
		t.Errorf("width: got %d, want 40", m.width)
	}
}

func TestMenuPersistsToStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), todo.DefaultFile)
	store, err := todo.NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	m := NewModel(store, store.Load(), nil)

	send(m,
		runes("2"), runes("Write report"), enter,
		runes("2"), runes("Read book"), enter,
		runes("3"), runes("1"), enter,
	)

	want := []todo.Task{
		{Description: "Write report", Done: true},
		{Description: "Read book"},
	}
	if got := store.Load(); !reflect.DeepEqual(got, want) {
		t.Errorf("reloaded: got %+v, want %+v", got, want)
	}
}

func TestIsTTY(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("buffer reported as TTY")
	}
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTTY(f) {
		t.Error("regular file reported as TTY")
	}
}
