package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// Load loads configuration for the current working directory.
// fs holds the CLI flags registered by BindFlags; it may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return LoadFrom(wd, fs)
}

// LoadFrom loads configuration in priority order:
// 1. Defaults
// 2. User config file (~/.taskmanager/taskmanager.toml or OS-specific config dir)
// 3. Project config file (taskmanager.toml or .taskmanager.toml in workDir)
// 4. Environment variables
// 5. CLI flags that were explicitly set
func LoadFrom(workDir string, fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{WorkDir: workDir}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
	}

	// 3. Try to load from project config file (overrides user config)
	if projectConfigFile := findProjectConfigFile(workDir); projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
	}

	// 4. Override from environment
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	// 5. Apply CLI flags (they override everything)
	if err := applyFlags(cfg, fs); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 6. Compute derived values
	finalizeConfig(cfg)

	return cfg, nil
}

// loadConfigFile decodes the TOML file at path over cfg and records the
// keys it defines as coming from source.
func loadConfigFile(cfg *Config, path string, source ConfigSource) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	for _, field := range Fields() {
		if md.IsDefined(field) {
			cfg.Sources[field] = source
		}
	}
	cfg.Files = append(cfg.Files, path)
	return nil
}

// finalizeConfig expands paths and makes them absolute.
func finalizeConfig(cfg *Config) {
	cfg.LogDir = resolvePath(cfg.WorkDir, expandPath(cfg.LogDir))
	cfg.TasksFile = resolvePath(cfg.WorkDir, expandPath(cfg.TasksFile))
	if cfg.SchemaFile != "" {
		cfg.SchemaFile = resolvePath(cfg.WorkDir, expandPath(cfg.SchemaFile))
	}
}

func resolvePath(workDir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(workDir, p)
}
