// Package config loads CLI settings and resolves file paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/pocketledger/internal/common"
)

// inMemory is the SQLite name for a private in-memory database.
const inMemory = ":memory:"

// ResolvePath turns a configured location into a clean absolute path.
// $VAR references are expanded first, then a leading ~ becomes the home
// directory. Relative paths resolve against the working directory, so the
// ledger opened is the same one reported by migrate --status. ":memory:"
// and the empty string are returned unchanged.
func ResolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == inMemory {
		return path, nil
	}

	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: cannot expand %q: %w", common.ErrInvalidConfig, path, err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve %q: %w", common.ErrInvalidConfig, path, err)
	}
	return abs, nil
}
