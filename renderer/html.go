package renderer

import (
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTML converts a markdown report to HTML, tables included.
func HTML(w io.Writer, markdown string) error {
	conv := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := conv.Convert([]byte(markdown), w); err != nil {
		return fmt.Errorf("cannot convert report to HTML: %w", err)
	}
	return nil
}
