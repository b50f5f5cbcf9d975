// Package fileutil provides shared file operation helpers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WriteAtomic writes data to outPath through a temp file in the target
// directory followed by a rename, so a failed run never leaves a partial
// output at the final path. The mode is applied before the rename.
func WriteAtomic(outPath string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(outPath), ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}

	// Best-effort cleanup of the temp file on any failure.
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("writing temporary file: %w", err)
	}

	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("setting file permissions: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if err = os.Rename(tmp.Name(), outPath); err != nil {
		return fmt.Errorf("renaming output file: %w", err)
	}

	return nil
}

// FinalizeOutput optionally preserves timestamps and returns the output file size.
func FinalizeOutput(outPath string, preserveTimestamps bool, modTime time.Time) (int64, error) {
	if preserveTimestamps {
		if err := os.Chtimes(outPath, modTime, modTime); err != nil {
			return 0, fmt.Errorf("preserving timestamps: %w", err)
		}
	}

	outInfo, err := os.Stat(outPath)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", outPath, err)
	}

	return outInfo.Size(), nil
}
