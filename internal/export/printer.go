package export

import (
	"fmt"
	"os"
)

// HTMLFilePrinter is a PrintTrigger for hosts without a print dialog: it
// writes the rendered page to disk so an external tool (browser, headless
// renderer) can finish the PDF conversion. A partially written file is
// removed on failure so no broken output is left visible.
type HTMLFilePrinter struct {
	Path string
}

func (p HTMLFilePrinter) Print(html string) error {
	if p.Path == "" {
		return fmt.Errorf("no output path configured")
	}
	if err := os.WriteFile(p.Path, []byte(html), 0o644); err != nil {
		os.Remove(p.Path)
		return fmt.Errorf("failed to write print page: %w", err)
	}
	return nil
}
