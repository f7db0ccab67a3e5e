// Package appdir provides constants and utilities for the files taskmanager keeps on disk.
package appdir

import "path/filepath"

const (
	// Name is the application name used for directories and env prefixes.
	Name = "taskmanager"

	// Dir is the name of the per-user state directory.
	Dir = ".taskmanager"

	// ConfigFile is the config file name.
	ConfigFile = "taskmanager.toml"

	// HiddenConfigFile is the alternative project config file name.
	HiddenConfigFile = ".taskmanager.toml"

	// LogsDir is the log directory name inside Dir.
	LogsDir = "logs"
)

// DirPath returns the state directory inside home.
func DirPath(home string) string {
	return filepath.Join(home, Dir)
}

// UserConfigPath returns the preferred user config path inside home.
func UserConfigPath(home string) string {
	return filepath.Join(DirPath(home), ConfigFile)
}

// ProjectConfigPaths returns the project config candidates in workDir,
// in lookup order.
func ProjectConfigPaths(workDir string) []string {
	return []string{
		filepath.Join(workDir, ConfigFile),
		filepath.Join(workDir, HiddenConfigFile),
	}
}

// DefaultLogDir returns the unexpanded default log directory.
func DefaultLogDir() string {
	return "~/" + Dir + "/" + LogsDir
}
