package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files. With an output directory every file
// lands there under its base name; without one each Filename is used as a
// path, so output sits next to its input.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	for _, file := range files {
		outputPath := file.Filename
		if outputDir != "" {
			outputPath = filepath.Join(outputDir, filepath.Base(file.Filename))
		}

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}
