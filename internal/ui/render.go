package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/hamidafilali-design/Taskmanager/internal/todo"
)

const (
	tableTitle   = "Student Task Manager"
	emptyMessage = "Your task list is empty. Add something!"
	doneLabel    = "✅ Done"
	pendingLabel = "⏳ Pending"
)

var (
	green   = lipgloss.Color("2")
	red     = lipgloss.Color("1")
	yellow  = lipgloss.Color("3")
	blue    = lipgloss.Color("4")
	magenta = lipgloss.Color("5")
	cyan    = lipgloss.Color("6")

	titleStyle   = lipgloss.NewStyle().Italic(true)
	summaryStyle = lipgloss.NewStyle().Faint(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	indexStyle   = cellStyle.Faint(true)
	doneStyle    = cellStyle.Strikethrough(true).Faint(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	panelTitleStyle = lipgloss.NewStyle().Bold(true)
	emptyStyle      = lipgloss.NewStyle().Foreground(yellow)

	successStyle = lipgloss.NewStyle().Bold(true).Foreground(green)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(red)
	addStyle     = lipgloss.NewStyle().Bold(true).Foreground(blue)
	markStyle    = lipgloss.NewStyle().Bold(true).Foreground(magenta)
	goodbyeStyle = lipgloss.NewStyle().Italic(true).Foreground(cyan)
	menuKeyStyle = lipgloss.NewStyle().Bold(true)
)

// Render draws the task list as a table, or a status panel when it is
// empty. It holds no state; width caps the table width when positive.
func Render(tasks []todo.Task, width int) string {
	if len(tasks) == 0 {
		return renderEmpty()
	}

	rows := make([][]string, 0, len(tasks))
	for i, task := range tasks {
		rows = append(rows, []string{strconv.Itoa(i + 1), task.Description, statusLabel(task)})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Task Description", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(tasks) {
				return cellStyle
			}
			return cellStyleFor(tasks[row], col)
		})

	rendered := t.Render()
	if width > 0 && lipgloss.Width(rendered) > width {
		rendered = t.Width(width).Render()
	}

	title := lipgloss.PlaceHorizontal(lipgloss.Width(rendered), lipgloss.Center, titleStyle.Render(tableTitle))
	summary := lipgloss.PlaceHorizontal(lipgloss.Width(rendered), lipgloss.Right, renderSummary(tasks))
	return lipgloss.JoinVertical(lipgloss.Left, title, rendered, summary)
}

func cellStyleFor(task todo.Task, col int) lipgloss.Style {
	style := cellStyle
	if task.Done {
		style = doneStyle
	}
	switch col {
	case 0:
		if !task.Done {
			style = indexStyle
		}
	case 2:
		style = style.Align(lipgloss.Center)
		if task.Done {
			style = style.Foreground(green)
		} else {
			style = style.Foreground(red)
		}
	}
	return style
}

func statusLabel(task todo.Task) string {
	if task.Status() == todo.StatusDone {
		return doneLabel
	}
	return pendingLabel
}

// renderSummary counts tasks by status, e.g. "1 done · 2 pending".
func renderSummary(tasks []todo.Task) string {
	counts := todo.Counts(tasks)
	return summaryStyle.Render(fmt.Sprintf("%d %s · %d %s",
		counts[todo.StatusDone], todo.StatusDone,
		counts[todo.StatusPending], todo.StatusPending))
}

func renderEmpty() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Status"))
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(emptyStyle.Render(emptyMessage)))
	return b.String()
}

// renderMenu draws the action menu line.
func renderMenu() string {
	items := []struct{ key, label string }{
		{"1.", "View"},
		{"2.", "Add"},
		{"3.", "Complete"},
		{"4.", "Exit"},
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, menuKeyStyle.Render(item.key)+" "+item.label)
	}
	return strings.Join(parts, " ")
}
