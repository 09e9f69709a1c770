package gen

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// formatSource pipes src through rustfmt.
func formatSource(rustfmt string, src []byte) ([]byte, error) {
	cmd := exec.Command(rustfmt, "--edition", "2021", "--emit", "stdout")
	cmd.Stdin = bytes.NewReader(src)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("rustfmt: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return stdout.Bytes(), nil
}

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output, or in outDir when set. This is best-effort and should never
// make generation fail harder.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if filename == "" {
		return nil
	}

	dir := outDir
	if dir == "" {
		dir = filepath.Dir(filename)
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}
	// Keep it a .rs file so editors can syntax highlight, but avoid colliding
	// with real output.
	debugName := strings.TrimSuffix(filepath.Base(filename), ".rs") + ".unformatted.rs"

	return os.WriteFile(filepath.Join(dir, debugName), content, filePerm)
}
