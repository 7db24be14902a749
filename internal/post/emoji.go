package post

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEmoji is returned for a category or index outside the palette.
var ErrUnknownEmoji = errors.New("unknown emoji")

// EmojiCategory is one tab of the emoji palette.
type EmojiCategory struct {
	Name   string
	Emojis []string
}

var palette = []EmojiCategory{
	{"People", []string{"😀", "😎", "🤯", "👏", "❤️"}},
	{"Objects", []string{"💡", "🚀", "⭐", "🔥", "✅", "⚡"}},
	{"Nature", []string{"🌳", "🌸", "🌞", "🌈", "🍀"}},
	{"Food", []string{"🍕", "🍔", "🍣", "🍎", "🍩"}},
}

// EmojiCategories returns the palette in display order.
func EmojiCategories() []EmojiCategory {
	out := make([]EmojiCategory, len(palette))
	copy(out, palette)
	return out
}

// Emoji returns the i-th (1-based) emoji of category, matched case-insensitively.
func Emoji(category string, i int) (string, error) {
	for _, c := range palette {
		if !strings.EqualFold(c.Name, category) {
			continue
		}
		if i < 1 || i > len(c.Emojis) {
			return "", fmt.Errorf("%w: %s has %d emojis, got %d", ErrUnknownEmoji, c.Name, len(c.Emojis), i)
		}
		return c.Emojis[i-1], nil
	}
	return "", fmt.Errorf("%w: category %q", ErrUnknownEmoji, category)
}
