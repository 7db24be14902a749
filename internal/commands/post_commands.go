package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/postfmt/internal/event"
	"github.com/bethropolis/postfmt/internal/hashtag"
	"github.com/bethropolis/postfmt/internal/list"
	"github.com/bethropolis/postfmt/internal/plugin"
	"github.com/bethropolis/postfmt/internal/post"
	"github.com/bethropolis/postfmt/internal/style"
)

// PostDeps configures the post commands.
type PostDeps struct {
	Templates       *post.Library
	DefaultHashtags string
	MaxTags         int
}

// RegisterPostCommands registers the formatting, template, emoji, hashtag,
// export and clipboard commands.
func RegisterPostCommands(api plugin.EditorAPI, deps PostDeps) {
	if deps.Templates == nil {
		deps.Templates = post.NewLibrary(nil)
	}

	register(api, "style", func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: style <%s>", strings.Join(style.Names(), "|"))
		}
		return api.ApplyStyle(strings.ToLower(args[0]))
	})

	register(api, "list", func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: list <bullet|numbered>")
		}
		kind, err := list.ParseKind(strings.ToLower(args[0]))
		if err != nil {
			return err
		}
		return api.ToggleList(kind)
	})

	register(api, "templates", func(args []string) error {
		api.SetStatusMessage("Templates: %s", strings.Join(deps.Templates.Titles(), ", "))
		return nil
	})
	register(api, "template", func(args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("usage: template <title>")
		}
		tpl, err := deps.Templates.Find(strings.Join(args, " "))
		if err != nil {
			return err
		}
		api.AppendBlock(tpl.Content, event.CauseTemplate)
		api.SetStatusMessage("Inserted template: %s", tpl.Title)
		return nil
	})

	register(api, "emoji", func(args []string) error {
		return emojiCommand(api, args)
	})

	register(api, "hashtags", func(args []string) error {
		api.AppendBlock(deps.DefaultHashtags, event.CauseAppend)
		return nil
	})

	register(api, "tags", func(args []string) error {
		tags := hashtag.ExtractByFrequency(api.GetText(), deps.MaxTags)
		if len(tags) == 0 {
			api.SetStatusMessage("No hashtag candidates")
			return nil
		}
		if len(args) > 0 && args[0] == "add" {
			api.AppendBlock(strings.Join(tags, " "), event.CauseAppend)
			return nil
		}
		api.SetStatusMessage("Top tags: %s", strings.Join(tags, " "))
		return nil
	})

	register(api, "export", func(args []string) error {
		path, err := api.ExportPost(strings.Join(args, " "))
		if err != nil {
			return err
		}
		api.SetStatusMessage("Exported to %s", path)
		return nil
	})

	register(api, "copy", func(args []string) error {
		if err := api.CopyPost(); err != nil {
			return err
		}
		api.SetStatusMessage("Post copied to clipboard")
		return nil
	})

	register(api, "reset", func(args []string) error {
		api.ResetPost()
		api.SetStatusMessage("Post cleared (undo to restore)")
		return nil
	})
}

// emojiCommand lists categories, lists one category, or inserts an emoji:
//
//	:emoji
//	:emoji objects
//	:emoji objects 2
func emojiCommand(api plugin.EditorAPI, args []string) error {
	switch len(args) {
	case 0:
		names := make([]string, 0, 4)
		for _, c := range post.EmojiCategories() {
			names = append(names, c.Name)
		}
		api.SetStatusMessage("Emoji: %s", strings.Join(names, ", "))
		return nil
	case 1:
		for _, c := range post.EmojiCategories() {
			if strings.EqualFold(c.Name, args[0]) {
				var b strings.Builder
				for i, e := range c.Emojis {
					fmt.Fprintf(&b, " %d:%s", i+1, e)
				}
				api.SetStatusMessage("%s:%s", c.Name, b.String())
				return nil
			}
		}
		_, err := post.Emoji(args[0], 1)
		return err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("emoji index %q: %w", args[1], err)
	}
	e, err := post.Emoji(args[0], n)
	if err != nil {
		return err
	}
	return api.InsertText(e, event.CauseEmoji)
}
