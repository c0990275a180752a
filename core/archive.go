// archive.go moves previous run output aside before a new run writes.
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// archiveDirName is the subdirectory inside the output directory that
// holds archived runs. It is never archived itself.
const archiveDirName = "archive"

// ArchiveOutputDir moves any existing entries of dir into
// dir/archive/<timestamp>/ so a fresh run starts with an empty output
// directory. Returns the archive path, or "" when dir is missing or
// already empty.
func ArchiveOutputDir(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("core: reading output dir: %w", err)
	}

	var movable []os.DirEntry
	for _, entry := range entries {
		if entry.Name() == archiveDirName {
			continue
		}
		movable = append(movable, entry)
	}
	if len(movable) == 0 {
		return "", nil
	}

	stamp := time.Now().Format("20060102_150405")
	dest := filepath.Join(dir, archiveDirName, stamp)
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return "", fmt.Errorf("core: creating archive dir: %w", err)
	}

	for _, entry := range movable {
		src := filepath.Join(dir, entry.Name())
		dst := filepath.Join(dest, entry.Name())
		if err := os.Rename(src, dst); err != nil {
			return "", fmt.Errorf("core: archiving %s: %w", entry.Name(), err)
		}
	}
	return dest, nil
}
