// Package config provides configuration helpers shared by the CLI commands.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands environment variables and a leading ~ in a
// user-supplied file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	path = os.ExpandEnv(path)

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}

	return path
}
