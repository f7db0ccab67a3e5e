package config

import (
	"strconv"

	"github.com/hamidafilali-design/Taskmanager/internal/appdir"
	"github.com/hamidafilali-design/Taskmanager/internal/todo"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// Default values.
const (
	DefaultTasksFile = todo.DefaultFile
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Field keys, as spelled in TOML files.
const (
	FieldTasksFile     = "tasks_file"
	FieldSchemaFile    = "schema_file"
	FieldLogDir        = "log_dir"
	FieldLogLevel      = "log_level"
	FieldLogFormat     = "log_format"
	FieldLogTimestamps = "log_timestamps"
	FieldLogCaller     = "log_caller"
)

// Fields returns the configurable field keys in display order.
func Fields() []string {
	return []string{
		FieldTasksFile,
		FieldSchemaFile,
		FieldLogDir,
		FieldLogLevel,
		FieldLogFormat,
		FieldLogTimestamps,
		FieldLogCaller,
	}
}

// Config holds the full configuration for taskmanager.
type Config struct {
	// Paths
	TasksFile  string `toml:"tasks_file"`
	SchemaFile string `toml:"schema_file"` // empty selects the embedded schema
	LogDir     string `toml:"log_dir"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Working directory relative paths are resolved against (computed)
	WorkDir string `toml:"-"`

	// Sources maps field keys to where their value came from.
	Sources map[string]ConfigSource `toml:"-"`

	// Files lists the config files that were read, in merge order.
	Files []string `toml:"-"`
}

// Value returns the string form of a field, or "" for an unknown key.
func (c *Config) Value(field string) string {
	switch field {
	case FieldTasksFile:
		return c.TasksFile
	case FieldSchemaFile:
		return c.SchemaFile
	case FieldLogDir:
		return c.LogDir
	case FieldLogLevel:
		return c.LogLevel
	case FieldLogFormat:
		return c.LogFormat
	case FieldLogTimestamps:
		return strconv.FormatBool(c.LogTimestamps)
	case FieldLogCaller:
		return strconv.FormatBool(c.LogCaller)
	}
	return ""
}

// Source returns where field's value came from.
func (c *Config) Source(field string) ConfigSource {
	if src, ok := c.Sources[field]; ok {
		return src
	}
	return SourceDefault
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.TasksFile = DefaultTasksFile
	cfg.SchemaFile = ""
	cfg.LogDir = appdir.DefaultLogDir()
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.LogCaller = false

	cfg.Sources = make(map[string]ConfigSource, len(Fields()))
	for _, field := range Fields() {
		cfg.Sources[field] = SourceDefault
	}
}
