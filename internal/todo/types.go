package todo

import "fmt"

// Status represents a task status.
type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
)

// Task represents a single task in the list.
type Task struct {
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

// Status reports whether the task is pending or done.
func (t Task) Status() Status {
	if t.Done {
		return StatusDone
	}
	return StatusPending
}

// Counts returns the number of tasks in each status.
func Counts(tasks []Task) map[Status]int {
	counts := map[Status]int{
		StatusPending: 0,
		StatusDone:    0,
	}
	for _, task := range tasks {
		counts[task.Status()]++
	}
	return counts
}

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // JSON path to the error location
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// SaveError reports a task file that could not be written. The in-memory
// list is left as it was when Save was called.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *SaveError) Unwrap() error {
	return e.Err
}
