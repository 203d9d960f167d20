package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/melvinotieno/site/internal/feed"
	"github.com/melvinotieno/site/internal/ogimage"
	"github.com/melvinotieno/site/internal/render"
	"github.com/melvinotieno/site/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// BuildCommand handles the build command
type BuildCommand struct {
	app *App
	out string
}

// NewBuildCommand creates a new build command
func NewBuildCommand(app *App) *cobra.Command {
	cmd := &BuildCommand{app: app}

	cobraCmd := &cobra.Command{
		Use:   "build",
		Short: "Write the feeds, images and JSON listings to a directory",
		Long: `Writes the static artifacts of the site:

  rss.xml, sitemap.xml, robots.txt
  og/<slug>.png         one Open Graph image per published post
  api/posts.json        every published post, newest first
  api/projects.json     every listed project`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.out, "out", "o", "public", "Output directory")

	return cobraCmd
}

// Run executes the build command
func (c *BuildCommand) Run(cmd *cobra.Command, args []string) error {
	src, err := c.app.source()
	if err != nil {
		return err
	}

	posts := src.Posts.ListPosts()
	projects := src.Projects.ListProjects(false)
	for _, p := range projects {
		p.Description = render.SanitizeHTML(p.Description)
	}

	for _, dir := range []string{c.out, filepath.Join(c.out, "og"), filepath.Join(c.out, "api")} {
		if err := c.app.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	written := 0
	write := func(name string, data []byte) error {
		path := filepath.Join(c.out, name)
		if err := c.app.fs.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		c.app.logger().Debug("wrote artifact", zap.String("path", path), zap.Int("bytes", len(data)))
		written++
		return nil
	}

	rss, err := feed.RSS(src.Site, posts, render.Markdown)
	if err != nil {
		return err
	}
	if err := write("rss.xml", []byte(rss)); err != nil {
		return err
	}

	linkable := src.Projects.ListProjects(true)
	sitemap, err := feed.Sitemap(src.Site, posts, linkable, src.Now())
	if err != nil {
		return err
	}
	if err := write("sitemap.xml", sitemap); err != nil {
		return err
	}

	if err := write("robots.txt", []byte(feed.Robots(src.Site))); err != nil {
		return err
	}

	for _, post := range posts {
		var buf bytes.Buffer
		if err := ogimage.Render(&buf, post.Metadata.Title); err != nil {
			return fmt.Errorf("failed to render image for %s: %w", post.Slug, err)
		}
		if err := write(filepath.Join("og", post.Slug+".png"), buf.Bytes()); err != nil {
			return err
		}
	}

	postsJSON, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode posts: %w", err)
	}
	if err := write(filepath.Join("api", "posts.json"), postsJSON); err != nil {
		return err
	}

	projectsJSON, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode projects: %w", err)
	}
	if err := write(filepath.Join("api", "projects.json"), projectsJSON); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), tui.SuccessStyle.Render(fmt.Sprintf("✓ Wrote %d file(s) to %s", written, c.out)))
	return nil
}
