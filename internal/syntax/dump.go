package syntax

import (
	"fmt"
	"io"
	"strings"

	"derive-generator/internal/source"
)

// Dump writes one line per tree: line:column, kind and text. Group contents
// follow their group, indented one level.
func Dump(w io.Writer, s Stream, file *source.File) error {
	return dump(w, s, file, 0)
}

func dump(w io.Writer, s Stream, file *source.File, depth int) error {
	for _, t := range s {
		pos := file.Position(t.Span().Start)

		text := t.Token.Text
		if t.Group != nil {
			text = t.Group.Open.Text + t.Group.Close.Text
		}

		_, err := fmt.Fprintf(w, "%s%d:%d\t%s\t%s\n", strings.Repeat("  ", depth), pos.Line, pos.Column, t.Kind(), text)
		if err != nil {
			return err
		}

		if t.Group != nil {
			if err := dump(w, t.Group.Stream, file, depth+1); err != nil {
				return err
			}
		}
	}

	return nil
}
