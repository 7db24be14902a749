// plugins/wordcount/wordcount.go
package wordcount

import (
	"fmt"

	"github.com/bethropolis/postfmt/internal/plugin"
	"github.com/bethropolis/postfmt/internal/post"
)

// Ensure WordCount implements plugin.Plugin
var _ plugin.Plugin = (*WordCount)(nil)

// WordCount adds the :wc command, a one-shot summary of the post.
type WordCount struct {
	api plugin.EditorAPI
}

// New creates a new instance of the WordCount plugin.
func New() plugin.Plugin {
	return &WordCount{}
}

// Name returns the unique name of the plugin.
func (p *WordCount) Name() string {
	return "wordcount"
}

// Initialize registers the :wc command.
func (p *WordCount) Initialize(api plugin.EditorAPI) error {
	p.api = api
	if err := api.RegisterCommand("wc", p.executeWordCount); err != nil {
		return fmt.Errorf("failed to register 'wc' command: %w", err)
	}
	return nil
}

// Shutdown performs cleanup (nothing needed for this simple plugin).
func (p *WordCount) Shutdown() error {
	return nil
}

func (p *WordCount) executeWordCount(args []string) error {
	if p.api == nil {
		return fmt.Errorf("wordcount plugin not initialized with API")
	}

	text := p.api.GetText()
	stats := post.Analyze(text, p.api.FoldLimit())
	p.api.SetStatusMessage("Chars: %d (%d visible), Words: %d, Lines: %d, Hashtags: %d, Bytes: %d | %s",
		stats.Length, stats.Graphemes, stats.Words, stats.Lines, stats.Hashtags, len(text), stats.FoldLabel())
	return nil
}
