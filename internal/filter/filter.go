// Package filter selects candidate files for processing based on the
// configured container suffix.
package filter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Resolve takes positional args (files or directories). Explicit files are
// added directly, bypassing the suffix rule. Directories are walked: when
// decrypting only files carrying the suffix are kept, when encrypting files
// already carrying it are skipped so a second run does not wrap containers
// in containers. Returns the selected files and the total number of
// candidates scanned.
func Resolve(args []string, suffix string, decrypt bool) (files []string, scanned int, err error) {
	seen := make(map[string]struct{})

	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return nil, 0, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			scanned++

			if _, ok := seen[arg]; ok {
				continue
			}

			seen[arg] = struct{}{}
			files = append(files, arg)

			continue
		}

		walked, total, err := walkDir(arg, suffix, decrypt)
		if err != nil {
			return nil, 0, err
		}

		scanned += total

		for _, path := range walked {
			if _, ok := seen[path]; ok {
				continue
			}

			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	if len(files) == 0 {
		return nil, scanned, fmt.Errorf("no files to process in: %v", args)
	}

	return files, scanned, nil
}

// walkDir walks root recursively, returning files that pass the suffix rule.
func walkDir(root, suffix string, decrypt bool) (files []string, total int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		total++

		if !keep(path, suffix, decrypt) {
			return nil
		}

		files = append(files, path)

		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("walking %q: %w", root, err)
	}

	return files, total, nil
}

// keep reports whether a walked file participates in the operation.
func keep(path, suffix string, decrypt bool) bool {
	if decrypt {
		return strings.HasSuffix(path, suffix)
	}

	return !strings.HasSuffix(path, suffix)
}
