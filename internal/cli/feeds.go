package cli

import (
	"fmt"

	"github.com/melvinotieno/site/internal/feed"
	"github.com/melvinotieno/site/internal/render"
	"github.com/spf13/cobra"
)

// NewRSSCommand creates the rss command
func NewRSSCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rss",
		Short: "Write the RSS feed of published posts to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := app.source()
			if err != nil {
				return err
			}

			doc, err := feed.RSS(src.Site, src.Posts.ListPosts(), render.Markdown)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), doc)
			return nil
		},
	}
}

// NewSitemapCommand creates the sitemap command
func NewSitemapCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sitemap",
		Short: "Write the sitemap XML to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := app.source()
			if err != nil {
				return err
			}

			data, err := feed.Sitemap(src.Site, src.Posts.ListPosts(), src.Projects.ListProjects(true), src.Now())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
