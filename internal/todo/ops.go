package todo

import "strings"

// Add appends a pending task and saves the full list.
// A blank description is ignored: the list is returned unchanged and
// nothing is saved. Invalid UTF-8 is replaced with U+FFFD, as the file
// encoding would, so the list in memory matches the saved one. A save
// error is returned with the updated list; the new task stays in memory.
func Add(s Saver, tasks []Task, description string) ([]Task, error) {
	if strings.TrimSpace(description) == "" {
		return tasks, nil
	}
	description = strings.ToValidUTF8(description, "\uFFFD")
	tasks = append(tasks, Task{Description: description})
	return tasks, s.Save(tasks)
}

// MarkDone marks the task at the 1-based position as done and saves the
// full list. Positions outside the list are ignored without saving.
// Marking a task that is already done still saves.
func MarkDone(s Saver, tasks []Task, position int) ([]Task, error) {
	if !InRange(tasks, position) {
		return tasks, nil
	}
	tasks[position-1].Done = true
	return tasks, s.Save(tasks)
}

// InRange reports whether position addresses a task in the list.
func InRange(tasks []Task, position int) bool {
	return position >= 1 && position <= len(tasks)
}
