package cli

import (
	"fmt"

	"github.com/melvinotieno/site/internal/models"
	"github.com/melvinotieno/site/internal/render"
	"github.com/spf13/cobra"
)

// ProjectsCommand handles the projects command
type ProjectsCommand struct {
	app      *App
	linkable bool
	page     int
	format   string
}

// NewProjectsCommand creates a new projects command
func NewProjectsCommand(app *App) *cobra.Command {
	cmd := &ProjectsCommand{app: app}

	cobraCmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects in projects.json order",
		Long: `List projects in the order of projects.json.

Entries without a title are skipped, as are entries whose slug has no
detail page. --linkable also skips entries without a slug.`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().BoolVar(&cmd.linkable, "linkable", false, "Only list projects with a detail page")
	cobraCmd.Flags().IntVar(&cmd.page, "page", 1, "Page number, starting at 1")
	cobraCmd.Flags().StringVar(&cmd.format, "format", formatText, "Output format: text or json")

	return cobraCmd
}

// Run executes the projects command
func (c *ProjectsCommand) Run(cmd *cobra.Command, args []string) error {
	if err := validateFormat(c.format); err != nil {
		return err
	}

	src, err := c.app.source()
	if err != nil {
		return err
	}

	var page models.Page[*models.Project]
	if c.linkable {
		page = models.Paginate(src.Projects.ListProjects(true), c.page, src.Site.Pagination.Projects)
		for _, p := range page.Items {
			p.Description = render.SanitizeHTML(p.Description)
		}
	} else {
		page = src.ProjectPage(c.page)
	}

	if c.format == formatJSON {
		return writeJSON(cmd.OutOrStdout(), page)
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), renderProjectPage(page))
	return nil
}
