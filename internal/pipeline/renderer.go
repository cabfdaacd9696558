package pipeline

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Renderer writes results in the configured output format.
type Renderer struct {
	format string // "text" or "json"
}

// NewRenderer creates a renderer for the given format. Anything other
// than "json" renders as text.
func NewRenderer(format string) *Renderer {
	return &Renderer{format: format}
}

// Render writes one result to w.
func (r *Renderer) Render(w io.Writer, res Result) error {
	if r.format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if _, err := fmt.Fprintln(w, res.Comment); err != nil {
		return err
	}

	if res.Guidance != nil {
		out, err := yaml.Marshal(res.Guidance)
		if err != nil {
			return fmt.Errorf("marshal guidance: %w", err)
		}
		if _, err := fmt.Fprintf(w, "\n%s", out); err != nil {
			return err
		}
	}

	return nil
}
