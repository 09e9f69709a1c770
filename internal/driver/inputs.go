package driver

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Collect resolves paths into the sorted list of .rs inputs. Directories are
// walked recursively, skipping hidden directories and target/. Files that
// already carry the output suffix are generated and never inputs.
func Collect(paths []string, outputSuffix string) ([]string, error) {
	var inputs []string

	isInput := func(path string) bool {
		return strings.HasSuffix(path, ".rs") &&
			!strings.HasSuffix(path, outputSuffix) &&
			!strings.HasSuffix(path, ".unformatted.rs")
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %q: %w", root, err)
		}

		if !info.IsDir() {
			inputs = append(inputs, filepath.Clean(root))
			continue
		}

		err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if entry.IsDir() {
				name := entry.Name()
				if path != root && (strings.HasPrefix(name, ".") || name == "target") {
					return filepath.SkipDir
				}

				return nil
			}

			if isInput(path) {
				inputs = append(inputs, path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %q: %w", root, err)
		}
	}

	slices.Sort(inputs)

	return slices.Compact(inputs), nil
}
