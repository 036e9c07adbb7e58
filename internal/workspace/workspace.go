// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Build directory resolution and artifact naming

package workspace

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/sony-level/clrun/internal/apperr"
)

var (
	// mutex ensures thread-safe run ID generation
	idMutex sync.Mutex
	// lastTimestamp prevents duplicate IDs in the same second
	lastTimestamp string
	lastCounter   int
)

// ResetRunIDState resets the global run ID generation state (for testing)
func ResetRunIDState() {
	idMutex.Lock()
	defer idMutex.Unlock()
	lastTimestamp = ""
	lastCounter = 0
}

// GenerateRunID creates a unique run ID with format: YYYYMMDD-HHMMSS-<pid>-4hexchars
// or YYYYMMDD-HHMMSS-<pid>-NNN (counter format) for rapid successive calls.
// The pid keeps IDs from concurrent clrun processes apart.
func GenerateRunID() (string, error) {
	idMutex.Lock()
	defer idMutex.Unlock()

	timestamp := time.Now().Format("20060102-150405")
	pid := os.Getpid()

	if timestamp == lastTimestamp {
		lastCounter++
		return fmt.Sprintf("%s-%d-%03d", timestamp, pid, lastCounter), nil
	}

	randomBytes := make([]byte, 2)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	lastTimestamp = timestamp
	lastCounter = 0

	return fmt.Sprintf("%s-%d-%s", timestamp, pid, hex.EncodeToString(randomBytes)), nil
}

// DefaultDir returns <home>/.clrun/build
func DefaultDir(home string) string {
	return filepath.Join(home, RootDirName, BuildSubdir)
}

// Resolve locates the build directory and creates it if missing.
// If config is nil, the default location under the user's home is used.
func Resolve(config *WorkspaceConfig) (*Workspace, error) {
	if config == nil {
		config = &WorkspaceConfig{}
	}

	dir := config.Dir
	if dir == "" {
		homeDir := config.HomeDir
		if homeDir == nil {
			homeDir = os.UserHomeDir
		}
		home, err := homeDir()
		if err != nil || home == "" {
			return nil, apperr.Environment("No home directory", err)
		}
		dir = DefaultDir(home)
	}

	// A relative dir would make BinaryPath a bare name that exec looks up on PATH
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, apperr.Environment("Failed to create .clrun directory", err)
	}

	created := false
	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return nil, apperr.Environment("Failed to create .clrun directory",
			fmt.Errorf("%s is not a directory", dir))
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, apperr.Environment("Failed to create .clrun directory", err)
		}
		created = true
	case err != nil:
		return nil, apperr.Environment("Failed to create .clrun directory", err)
	}

	return &Workspace{Dir: dir, Created: created}, nil
}

// BinaryPath returns the artifact path for a run
func (w *Workspace) BinaryPath(runID string) string {
	name := BinaryPrefix + RunIDSeparator + runID
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(w.Dir, name)
}
