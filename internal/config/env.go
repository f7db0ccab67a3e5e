package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names.
const (
	EnvTasksFile     = "TASKMANAGER_FILE"
	EnvSchemaFile    = "TASKMANAGER_SCHEMA"
	EnvLogDir        = "TASKMANAGER_LOG_DIR"
	EnvLogLevel      = "TASKMANAGER_LOG_LEVEL"
	EnvLogFormat     = "TASKMANAGER_LOG_FORMAT"
	EnvLogTimestamps = "TASKMANAGER_LOG_TIMESTAMPS"
	EnvLogCaller     = "TASKMANAGER_LOG_CALLER"
)

// loadFromEnv overrides config from environment variables.
// Empty variables are treated as unset.
func loadFromEnv(cfg *Config) error {
	stringVars := []struct {
		env    string
		field  string
		target *string
	}{
		{EnvTasksFile, FieldTasksFile, &cfg.TasksFile},
		{EnvSchemaFile, FieldSchemaFile, &cfg.SchemaFile},
		{EnvLogDir, FieldLogDir, &cfg.LogDir},
		{EnvLogLevel, FieldLogLevel, &cfg.LogLevel},
		{EnvLogFormat, FieldLogFormat, &cfg.LogFormat},
	}
	for _, s := range stringVars {
		if v := os.Getenv(s.env); v != "" {
			*s.target = v
			cfg.Sources[s.field] = SourceEnv
		}
	}

	boolVars := []struct {
		env    string
		field  string
		target *bool
	}{
		{EnvLogTimestamps, FieldLogTimestamps, &cfg.LogTimestamps},
		{EnvLogCaller, FieldLogCaller, &cfg.LogCaller},
	}
	for _, b := range boolVars {
		v := os.Getenv(b.env)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", b.env, v, err)
		}
		*b.target = parsed
		cfg.Sources[b.field] = SourceEnv
	}

	return nil
}
