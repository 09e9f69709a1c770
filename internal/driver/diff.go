package driver

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	godiffpatch "github.com/sourcegraph/go-diff-patch"
)

// WriteDiff writes one unified patch per generated file whose content differs
// from what is on disk; a missing file diffs against empty content. It
// returns the number of changed files.
func (r *Report) WriteDiff(w io.Writer) (int, error) {
	changed := 0

	for _, res := range r.Results {
		if res.File == nil {
			continue
		}

		original, err := os.ReadFile(res.File.Filename)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return changed, fmt.Errorf("reading %s: %w", res.File.Filename, err)
		}

		if string(original) == string(res.File.Content) {
			continue
		}

		patch := godiffpatch.GeneratePatch(res.File.Filename, string(original), string(res.File.Content))
		if _, err := io.WriteString(w, patch); err != nil {
			return changed, err
		}

		changed++
	}

	return changed, nil
}
