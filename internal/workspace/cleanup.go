// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Artifact removal

package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// RemoveBinary deletes a compiled artifact.
// An artifact that is already gone is not an error.
func RemoveBinary(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// SweepStale removes artifacts older than maxAge left behind by runs that
// never reached cleanup. Returns the number of files removed.
func (w *Workspace) SweepStale(maxAge time.Duration) (int, error) {
	if maxAge <= 0 {
		return 0, nil
	}

	entries, err := os.ReadDir(w.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read build directory: %w", err)
	}

	now := time.Now()
	cleaned := 0
	var errs []error

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !strings.HasPrefix(entry.Name(), BinaryPrefix+RunIDSeparator) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) < maxAge {
			continue
		}

		path := filepath.Join(w.Dir, entry.Name())
		if err := RemoveBinary(path); err != nil {
			errs = append(errs, err)
			continue
		}
		cleaned++
	}

	return cleaned, errors.Join(errs...)
}
