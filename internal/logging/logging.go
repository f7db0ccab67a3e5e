// Package logging builds leveled loggers and manages per-session log files.
package logging

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Options holds configuration for a logger.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	ReportCaller    bool
	Prefix          string
}

// DefaultOptions returns default logger options.
func DefaultOptions() Options {
	return Options{
		Level:           log.InfoLevel,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "taskmanager",
	}
}

// OptionsFromConfig builds Options from string configuration values.
// This is useful when loading config from TOML or environment variables.
func OptionsFromConfig(level, format string, timestamps, caller bool) Options {
	opts := DefaultOptions()
	opts.Level = ParseLevel(level)
	opts.Formatter = ParseFormatter(format)
	opts.ReportTimestamp = timestamps
	opts.ReportCaller = caller
	return opts
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		ReportCaller:    opts.ReportCaller,
		Prefix:          opts.Prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ParseLevel parses a string log level to a charmbracelet/log Level.
// Unknown values map to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter parses a string formatter name to a charmbracelet/log Formatter.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// LogExt is the extension of session log files.
const LogExt = ".log"

// RunLogger is the log file of one interactive session.
type RunLogger struct {
	Dir     string
	RunID   string
	LogPath string
	file    *os.File
}

// NewRunLogger opens a fresh session log for the task file at tasksPath,
// creating its log directory as needed.
func NewRunLogger(baseDir, tasksPath string) (*RunLogger, error) {
	dir, err := FindLogDir(baseDir, tasksPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating session log dir: %w", err)
	}

	r := &RunLogger{Dir: dir, RunID: runID()}
	r.LogPath = filepath.Join(dir, r.RunID+LogExt)
	r.file, err = os.OpenFile(r.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening session log: %w", err)
	}
	return r, nil
}

// Writer returns the session log file.
func (r *RunLogger) Writer() io.Writer {
	return r.file
}

// Close closes the session log. It is safe on a nil RunLogger.
func (r *RunLogger) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// FindLogDir returns the session log directory for the task file at
// tasksPath. Task files in different directories get different log
// directories. A relative baseDir is taken relative to that directory.
func FindLogDir(baseDir, tasksPath string) (string, error) {
	if baseDir == "" {
		return "", errors.New("session log dir is not configured")
	}

	owner := "."
	if tasksPath != "" {
		owner = filepath.Dir(tasksPath)
	}
	if abs, err := filepath.Abs(owner); err == nil {
		owner = abs
	}

	if !filepath.IsAbs(baseDir) {
		baseDir = filepath.Join(owner, baseDir)
	}
	name := slugify(filepath.Base(owner)) + "-" + hashPath(owner)
	return filepath.Join(filepath.Clean(baseDir), name), nil
}

var slugUnsafe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// slugify makes a directory name readable in a log path.
func slugify(input string) string {
	slug := strings.Trim(slugUnsafe.ReplaceAllString(input, "_"), "_")
	if slug == "" || slug == "." {
		return "tasks"
	}
	return slug
}

func hashPath(input string) string {
	return fmt.Sprintf("%x", sha1.Sum([]byte(input)))[:8]
}

// runID names a session log. Names sort by start time.
func runID() string {
	return fmt.Sprintf("%s-%s", time.Now().UTC().Format("20060102-150405"), uuid.NewString()[:8])
}
