package cli

import (
	"bytes"
	"fmt"

	"github.com/melvinotieno/site/internal/ogimage"
	"github.com/spf13/cobra"
)

// OGCommand handles the og command
type OGCommand struct {
	app *App
	out string
}

// NewOGCommand creates a new og command
func NewOGCommand(app *App) *cobra.Command {
	cmd := &OGCommand{app: app}

	cobraCmd := &cobra.Command{
		Use:     "og <title>",
		Short:   "Render the Open Graph image for a title",
		Example: `  site og "Hello World" --out hello.png`,
		Args:    cobra.ExactArgs(1),
		RunE:    cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.out, "out", "o", "og.png", "File to write the PNG to")

	return cobraCmd
}

// Run executes the og command
func (c *OGCommand) Run(cmd *cobra.Command, args []string) error {
	var buf bytes.Buffer
	if err := ogimage.Render(&buf, args[0]); err != nil {
		return err
	}

	if err := c.app.fs.WriteFile(c.out, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.out, err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", c.out)
	return nil
}
