package config

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

// expandPath expands environment variables and a leading ~ in p.
func expandPath(p string) string {
	p = expandEnv(p)
	switch {
	case p == "~":
		return homeJoin(p, "")
	case strings.HasPrefix(p, "~/"),
		runtime.GOOS == "windows" && strings.HasPrefix(p, `~\`):
		return homeJoin(p, p[2:])
	}
	return p
}

// homeJoin joins rest onto the home directory, or returns fallback when
// home cannot be determined.
func homeJoin(fallback, rest string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return fallback
	}
	if rest == "" {
		return home
	}
	return filepath.Join(home, rest)
}

// expandEnv expands $VAR and ${VAR}, plus %VAR% on Windows.
func expandEnv(p string) string {
	p = os.ExpandEnv(p)
	if runtime.GOOS == "windows" {
		p = expandWindowsEnv(p)
	}
	return p
}

var windowsEnvRef = regexp.MustCompile(`%([^%]+)%`)

// expandWindowsEnv replaces %VAR% references. Unset variables are left as
// written.
func expandWindowsEnv(p string) string {
	return windowsEnvRef.ReplaceAllStringFunc(p, func(ref string) string {
		if val, ok := os.LookupEnv(ref[1 : len(ref)-1]); ok {
			return val
		}
		return ref
	})
}
