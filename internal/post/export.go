package post

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExportMarkdown writes text to path as a Markdown file, creating parent
// directories. The post is written verbatim with a trailing newline.
func ExportMarkdown(path, text string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("export %q: %w", path, err)
	}
	return nil
}
