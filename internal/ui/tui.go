// Package ui provides the interactive terminal menu.
package ui

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/hamidafilali-design/Taskmanager/internal/logging"
	"github.com/hamidafilali-design/Taskmanager/internal/todo"
	"github.com/hamidafilali-design/Taskmanager/internal/utils"
)

// Confirmations shown after a change. The non-interactive commands print
// the same text.
const (
	MsgAdded   = "✨ Task added successfully!"
	MsgMarked  = "Check! Task marked as completed."
	MsgGoodbye = "Goodbye!"
)

const (
	msgSaveFailed = "Error saving tasks:"
	promptAdd     = "What needs to be done?"
	promptMark    = "Enter task number"
	promptAction  = "Action [1/2/3/4] (1):"
	promptReturn  = "Press Enter to return..."
)

// Option configures Run.
type Option func(*runConfig)

type runConfig struct {
	logger *log.Logger
	input  io.Reader
	output io.Writer
}

// WithLogger sets the logger for menu actions. The menu owns the terminal,
// so the logger should not write to it.
func WithLogger(logger *log.Logger) Option {
	return func(c *runConfig) {
		c.logger = logger
	}
}

// WithInput reads key presses from r instead of stdin.
func WithInput(r io.Reader) Option {
	return func(c *runConfig) {
		c.input = r
	}
}

// WithOutput draws to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(c *runConfig) {
		c.output = w
	}
}

// Run shows the menu until the user exits. Every change is saved through
// store as it happens.
func Run(ctx context.Context, store todo.Saver, tasks []todo.Task, opts ...Option) error {
	c := &runConfig{}
	for _, opt := range opts {
		opt(c)
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if c.input != nil {
		programOpts = append(programOpts, tea.WithInput(c.input))
	}
	if c.output != nil {
		programOpts = append(programOpts, tea.WithOutput(c.output))
	}

	program := tea.NewProgram(NewModel(store, tasks, c.logger), programOpts...)
	_, err := program.Run()
	return err
}

type mode int

const (
	modeMenu mode = iota
	modeView
	modeAdd
	modeMark
)

type notice struct {
	text string
	err  bool
}

// Model is the bubbletea model of the menu. All task list changes happen
// in Update.
type Model struct {
	store    todo.Saver
	tasks    []todo.Task
	logger   *log.Logger
	mode     mode
	input    []rune
	notice   notice
	width    int
	quitting bool
}

// NewModel creates a menu over tasks. A nil logger discards output.
func NewModel(store todo.Saver, tasks []todo.Task, logger *log.Logger) *Model {
	if logger == nil {
		logger = logging.Discard()
	}
	if tasks == nil {
		tasks = []todo.Task{}
	}
	return &Model{
		store:  store,
		tasks:  tasks,
		logger: logger,
	}
}

// Tasks returns the current task list.
func (m *Model) Tasks() []todo.Task {
	return m.tasks
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		switch m.mode {
		case modeView:
			return m.updateView(msg)
		case modeAdd:
			return m.updateAdd(msg)
		case modeMark:
			return m.updateMark(msg)
		default:
			return m.updateMenu(msg)
		}
	}
	return m, nil
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "1", "enter":
		m.notice = notice{}
		m.mode = modeView
	case "2":
		m.startPrompt(modeAdd)
	case "3":
		if len(m.tasks) == 0 {
			// Nothing to complete.
			m.notice = notice{}
			return m, nil
		}
		m.startPrompt(modeMark)
	case "4", "q":
		return m.quit()
	}
	return m, nil
}

func (m *Model) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "q":
		m.mode = modeMenu
	}
	return m, nil
}

func (m *Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.submitAdd(string(m.input))
	case tea.KeyEsc:
		m.cancelPrompt()
	case tea.KeyBackspace:
		m.backspace()
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, msg.Runes...)
	}
	return m, nil
}

func (m *Model) updateMark(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if len(m.input) == 0 {
			return m, nil
		}
		m.submitMark(string(m.input))
	case tea.KeyEsc:
		m.cancelPrompt()
	case tea.KeyBackspace:
		m.backspace()
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r >= '0' && r <= '9' {
				m.input = append(m.input, r)
			}
		}
	}
	return m, nil
}

func (m *Model) startPrompt(next mode) {
	m.notice = notice{}
	m.input = m.input[:0]
	m.mode = next
}

func (m *Model) cancelPrompt() {
	m.input = m.input[:0]
	m.mode = modeMenu
}

func (m *Model) backspace() {
	if len(m.input) > 0 {
		m.input = m.input[:len(m.input)-1]
	}
}

func (m *Model) submitAdd(description string) {
	m.cancelPrompt()

	before := len(m.tasks)
	tasks, err := todo.Add(m.store, m.tasks, description)
	m.tasks = tasks
	if err != nil {
		m.reportSaveError(err)
		return
	}
	if len(tasks) > before {
		m.notice = notice{text: MsgAdded}
		m.logger.Info("Task added", "position", len(tasks))
	}
}

func (m *Model) submitMark(input string) {
	m.cancelPrompt()

	position, err := utils.ParsePosition(input)
	if err != nil {
		return
	}
	inRange := todo.InRange(m.tasks, position)
	tasks, err := todo.MarkDone(m.store, m.tasks, position)
	m.tasks = tasks
	if err != nil {
		m.reportSaveError(err)
		return
	}
	if inRange {
		m.notice = notice{text: MsgMarked}
		m.logger.Info("Task completed", "position", position)
	}
}

func (m *Model) reportSaveError(err error) {
	cause := err
	var saveErr *todo.SaveError
	if errors.As(err, &saveErr) {
		cause = saveErr.Err
	}
	m.notice = notice{text: msgSaveFailed + " " + cause.Error(), err: true}
	m.logger.Error("Save failed", "err", err)
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) View() string {
	if m.quitting {
		return goodbyeStyle.Render(MsgGoodbye) + "\n"
	}

	var b strings.Builder
	b.WriteString(Render(m.tasks, m.width))
	b.WriteString("\n")

	if m.mode == modeView {
		b.WriteString("\n" + promptReturn + "\n")
		return b.String()
	}

	if m.notice.text != "" {
		style := successStyle
		if m.notice.err {
			style = errorStyle
		}
		b.WriteString("\n" + style.Render(m.notice.text) + "\n")
	}

	b.WriteString("\n" + renderMenu() + "\n")

	switch m.mode {
	case modeAdd:
		b.WriteString("\n" + addStyle.Render(promptAdd) + " " + string(m.input) + "█\n")
	case modeMark:
		b.WriteString("\n" + markStyle.Render(promptMark) + ": " + string(m.input) + "█\n")
	default:
		b.WriteString(promptAction + "\n")
	}

	return b.String()
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
