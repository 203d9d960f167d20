package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// PostsCommand handles the posts command
type PostsCommand struct {
	app    *App
	page   int
	limit  int
	format string
}

// NewPostsCommand creates a new posts command
func NewPostsCommand(app *App) *cobra.Command {
	cmd := &PostsCommand{app: app}

	cobraCmd := &cobra.Command{
		Use:   "posts",
		Short: "List published posts, newest first",
		Example: `  # First page
  site posts

  # Second page of five posts as JSON
  site posts --page 2 --limit 5 --format json`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().IntVar(&cmd.page, "page", 1, "Page number, starting at 1")
	cobraCmd.Flags().IntVar(&cmd.limit, "limit", 0, "Posts per page (default: pagination.posts from site.yaml)")
	cobraCmd.Flags().StringVar(&cmd.format, "format", formatText, "Output format: text or json")

	return cobraCmd
}

// Run executes the posts command
func (c *PostsCommand) Run(cmd *cobra.Command, args []string) error {
	if err := validateFormat(c.format); err != nil {
		return err
	}

	src, err := c.app.source()
	if err != nil {
		return err
	}

	limit := c.limit
	if limit == 0 {
		limit = src.Site.Pagination.Posts
	}
	page := src.Posts.Paginate(c.page, limit)

	if c.format == formatJSON {
		return writeJSON(cmd.OutOrStdout(), page)
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), renderPostPage(page, src.Now()))
	return nil
}
