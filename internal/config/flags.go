package config

import (
	"github.com/spf13/pflag"
)

// Flag names.
const (
	FlagFile          = "file"
	FlagSchema        = "schema"
	FlagLogDir        = "log-dir"
	FlagLogLevel      = "log-level"
	FlagLogFormat     = "log-format"
	FlagLogTimestamps = "log-timestamps"
	FlagLogCaller     = "log-caller"
)

// BindFlags registers the configuration flags on fs. Defaults shown in help
// are the built-in ones; only flags the user sets override other sources.
func BindFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagFile, "f", DefaultTasksFile, "Path to task file")
	fs.String(FlagSchema, "", "Path to a JSON Schema for the task file (default: embedded)")
	fs.String(FlagLogDir, "", "Directory for interactive session logs (default ~/.taskmanager/logs)")
	fs.String(FlagLogLevel, DefaultLogLevel, "Log level (debug|info|warn|error)")
	fs.String(FlagLogFormat, DefaultLogFormat, "Log format (text|json|logfmt)")
	fs.Bool(FlagLogTimestamps, false, "Include timestamps in log output")
	fs.Bool(FlagLogCaller, false, "Include caller location in log output")
}

// applyFlags copies explicitly set flags onto cfg.
func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}

	stringVars := []struct {
		flag   string
		field  string
		target *string
	}{
		{FlagFile, FieldTasksFile, &cfg.TasksFile},
		{FlagSchema, FieldSchemaFile, &cfg.SchemaFile},
		{FlagLogDir, FieldLogDir, &cfg.LogDir},
		{FlagLogLevel, FieldLogLevel, &cfg.LogLevel},
		{FlagLogFormat, FieldLogFormat, &cfg.LogFormat},
	}
	for _, s := range stringVars {
		if !changed(fs, s.flag) {
			continue
		}
		v, err := fs.GetString(s.flag)
		if err != nil {
			return err
		}
		*s.target = v
		cfg.Sources[s.field] = SourceFlag
	}

	boolVars := []struct {
		flag   string
		field  string
		target *bool
	}{
		{FlagLogTimestamps, FieldLogTimestamps, &cfg.LogTimestamps},
		{FlagLogCaller, FieldLogCaller, &cfg.LogCaller},
	}
	for _, b := range boolVars {
		if !changed(fs, b.flag) {
			continue
		}
		v, err := fs.GetBool(b.flag)
		if err != nil {
			return err
		}
		*b.target = v
		cfg.Sources[b.field] = SourceFlag
	}

	return nil
}

func changed(fs *pflag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	return f != nil && f.Changed
}
