package todo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// DefaultFile is the task file name used when none is configured.
const DefaultFile = "tasks.json"

// Saver persists the full task list.
type Saver interface {
	Save(tasks []Task) error
}

// StoreOption configures a Store.
type StoreOption func(*storeConfig)

type storeConfig struct {
	logger     *log.Logger
	schemaPath string
}

// WithLogger sets the logger used to report files that could not be loaded.
func WithLogger(logger *log.Logger) StoreOption {
	return func(c *storeConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSchemaPath validates loaded content against the schema file at path
// instead of the embedded one.
func WithSchemaPath(path string) StoreOption {
	return func(c *storeConfig) {
		c.schemaPath = path
	}
}

// Store reads and writes the task file at a fixed path.
type Store struct {
	path   string
	schema *jsonschema.Schema
	logger *log.Logger
}

// NewStore creates a store for the task file at path. It fails only when
// the configured schema cannot be compiled.
func NewStore(path string, opts ...StoreOption) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("task file path is empty")
	}

	c := &storeConfig{
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}

	schema, err := CompileSchema(ValidationOptions{SchemaPath: c.schemaPath})
	if err != nil {
		return nil, err
	}

	return &Store{
		path:   path,
		schema: schema,
		logger: c.logger,
	}, nil
}

// Path returns the task file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the tasks in the file. It never fails: a missing file gives
// an empty list silently, and any other problem gives an empty list and a
// warning.
func (s *Store) Load() []Task {
	tasks, err := s.Read()
	if err == nil {
		return tasks
	}
	if !errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn("Ignoring unusable task file", "path", s.path, "err", err)
	}
	return []Task{}
}

// Read loads and validates the task file, reporting every failure.
func (s *Store) Read() ([]Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	if result := validateWithSchema(s.schema, data); !result.Valid {
		return nil, result.Err()
	}

	tasks := []Task{}
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parse task file: %w", err)
	}
	return tasks, nil
}

// Validate reads the task file and checks it against the schema.
// The error is non-nil only when the file cannot be read.
func (s *Store) Validate() (*ValidationResult, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	return validateWithSchema(s.schema, data), nil
}

// Save writes the full task list with 2-space indentation. On failure the
// file is left as the write left it and a *SaveError is returned.
func (s *Store) Save(tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return &SaveError{Path: s.path, Err: fmt.Errorf("marshal task file: %w", err)}
	}

	// Add trailing newline
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &SaveError{Path: s.path, Err: err}
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return &SaveError{Path: s.path, Err: err}
	}

	return nil
}
