package cli

import (
	"encoding/json"
	"io"
)

// OutputFormatter renders a command result as indented JSON or as text.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

func (f *OutputFormatter) Render(data interface{}, text func(w io.Writer) error) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
	return text(f.Writer)
}
