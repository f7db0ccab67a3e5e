package config

import (
	"os"
	"path/filepath"

	"github.com/hamidafilali-design/Taskmanager/internal/appdir"
)

// findProjectConfigFile looks for a config file in workDir.
func findProjectConfigFile(workDir string) string {
	for _, path := range appdir.ProjectConfigPaths(workDir) {
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// findUserConfigFile returns ~/.taskmanager/taskmanager.toml if it exists,
// else taskmanager/taskmanager.toml under the OS config dir
// ($XDG_CONFIG_HOME, Application Support or %AppData%).
func findUserConfigFile() string {
	if home, err := os.UserHomeDir(); err == nil {
		if path := appdir.UserConfigPath(home); fileExists(path) {
			return path
		}
	}

	if cfgDir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(cfgDir, appdir.Name, appdir.ConfigFile)
		if fileExists(path) {
			return path
		}
	}

	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
