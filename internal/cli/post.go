package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// PostCommand handles the post command
type PostCommand struct {
	app    *App
	format string
}

// NewPostCommand creates a new post command
func NewPostCommand(app *App) *cobra.Command {
	cmd := &PostCommand{app: app}

	cobraCmd := &cobra.Command{
		Use:   "post <slug>",
		Short: "Show one published post with its neighbours",
		Args:  cobra.ExactArgs(1),
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.format, "format", formatText, "Output format: text or json")

	return cobraCmd
}

// Run executes the post command
func (c *PostCommand) Run(cmd *cobra.Command, args []string) error {
	if err := validateFormat(c.format); err != nil {
		return err
	}

	src, err := c.app.source()
	if err != nil {
		return err
	}

	slug := args[0]
	detail, err := src.PostDetail(slug)
	if err != nil {
		return err
	}
	if detail == nil {
		return fmt.Errorf("post %q not found or not published", slug)
	}

	if c.format == formatJSON {
		return writeJSON(cmd.OutOrStdout(), detail)
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), renderPostDetail(detail))
	return nil
}
