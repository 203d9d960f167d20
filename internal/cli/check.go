package cli

import (
	"fmt"
	"strings"

	"github.com/melvinotieno/site/internal/blog"
	"github.com/melvinotieno/site/internal/tui"
	"github.com/spf13/cobra"
)

// CheckCommand handles the check command
type CheckCommand struct {
	app *App
}

// NewCheckCommand creates a new check command
func NewCheckCommand(app *App) *cobra.Command {
	cmd := &CheckCommand{app: app}

	cobraCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate every post file and the project list",
		Long: `Reads every post file and reports whether it is listed or why it is
skipped. Fails when a post is invalid or unreadable.

Scheduled posts and files without a header are reported but do not fail
the check.`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the check command
func (c *CheckCommand) Run(cmd *cobra.Command, args []string) error {
	src, err := c.app.source()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	results := src.Posts.Scan()

	failed := 0
	for _, result := range results {
		if result.Failed() {
			failed++
		}
		_, _ = fmt.Fprintln(out, renderResult(result))
	}

	projects := src.Projects.ListProjects(false)
	_, _ = fmt.Fprintf(out, "\n%d post file(s), %d project(s) listed\n", len(results), len(projects))

	if failed > 0 {
		return fmt.Errorf("%d post file(s) failed to load", failed)
	}
	return nil
}

func renderResult(result blog.Result) string {
	if result.OK() {
		return fmt.Sprintf("%s %s", tui.SuccessStyle.Render("ok        "), result.Slug)
	}

	status := fmt.Sprintf("%-10s", result.Skip.Reason)
	style := tui.WarningStyle
	if result.Failed() {
		style = tui.ErrorStyle
	}

	var b strings.Builder
	b.WriteString(style.Render(status))
	b.WriteString(" ")
	b.WriteString(result.Slug)
	b.WriteString(" ")
	b.WriteString(tui.SubtleStyle.Render(result.Skip.Err.Error()))
	return b.String()
}
