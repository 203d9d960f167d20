package cli

import (
	"fmt"
	"strings"

	"github.com/melvinotieno/site/internal/blog"
	"github.com/melvinotieno/site/internal/tui/newpost"
	"github.com/spf13/cobra"
)

// Prompt asks for the header of a new post; a nil draft means the user
// aborted.
type Prompt func(draft blog.Draft) (*blog.Draft, error)

// NewCommand handles the new command
type NewCommand struct {
	app    *App
	prompt Prompt
	draft  blog.Draft
}

// NewNewPostCommand creates a new new command. A nil prompt uses the
// interactive form.
func NewNewPostCommand(app *App, prompt Prompt) *cobra.Command {
	cmd := &NewCommand{app: app, prompt: prompt}

	cobraCmd := &cobra.Command{
		Use:   "new [title]",
		Short: "Create a new post file",
		Long: `Creates a post file named after the slug of its title.

Without a title an interactive form asks for the header fields. An
existing post is never overwritten.`,
		Example: `  site new "Hello World" --description "First post"
  site new`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.draft.PublishedAt, "date", "", "Publish date, YYYY-MM-DD (default: today)")
	cobraCmd.Flags().StringVar(&cmd.draft.Description, "description", "", "Short description")
	cobraCmd.Flags().StringVar(&cmd.draft.Keywords, "keywords", "", "Comma separated keywords")
	cobraCmd.Flags().StringVar(&cmd.draft.Image, "image", "", "Image URL for link previews")

	return cobraCmd
}

// Run executes the new command
func (c *NewCommand) Run(cmd *cobra.Command, args []string) error {
	src, err := c.app.source()
	if err != nil {
		return err
	}

	draft := c.draft
	if len(args) == 1 {
		draft.Title = strings.TrimSpace(args[0])
	} else {
		prompt := c.prompt
		if prompt == nil {
			prompt = newpost.NewFlow(src.Now().In(src.Site.Location())).Run
		}

		result, err := prompt(draft)
		if err != nil {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
		if result == nil {
			return nil
		}
		draft = *result
	}

	slug := blog.Slugify(draft.Title)
	if slug == "" {
		return fmt.Errorf("cannot derive a file name from title %q", draft.Title)
	}

	path, err := src.Posts.Create(slug, draft)
	if err != nil {
		return err
	}

	if draft.PublishedAt == "" {
		draft.PublishedAt = src.Now().In(src.Site.Location()).Format("2006-01-02")
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), newpost.RenderSuccess(path, draft))
	return nil
}
