// Package archive keeps a copy of an unusable settings file before it is
// overwritten by first-run setup.
package archive

import (
	"fmt"
	"os"
	"time"
)

// Preserve renames path to <path>.corrupt-<timestamp> and returns the new
// location.
func Preserve(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("file does not exist: %s", path)
	}

	timestamp := time.Now().Format("20060102-150405")
	archivePath := fmt.Sprintf("%s.corrupt-%s", path, timestamp)

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		timestamp = time.Now().Format("20060102-150405.000000")
		archivePath = fmt.Sprintf("%s.corrupt-%s", path, timestamp)
	}

	if err := os.Rename(path, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", path, err)
	}

	return archivePath, nil
}
