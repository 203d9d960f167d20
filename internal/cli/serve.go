package cli

import (
	"github.com/gin-gonic/gin"
	"github.com/melvinotieno/site/internal/server"
	"github.com/spf13/cobra"
)

// ServeCommand handles the serve command
type ServeCommand struct {
	app  *App
	addr string
}

// NewServeCommand creates a new serve command
func NewServeCommand(app *App) *cobra.Command {
	cmd := &ServeCommand{app: app}

	cobraCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the content API, feeds and images over HTTP",
		Long: `Serves the posts and projects as JSON together with the RSS feed,
sitemap, robots.txt and Open Graph images.

Content is read again on every request, so edits show up without a restart.`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.addr, "addr", ":8080", "Address to listen on")

	return cobraCmd
}

// Run executes the serve command
func (c *ServeCommand) Run(cmd *cobra.Command, args []string) error {
	site, err := c.app.loadSite()
	if err != nil {
		return err
	}

	if c.app.logLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := server.New(c.app.fs, site, c.app.logger(), server.WithClock(c.app.now))
	return srv.Run(c.addr)
}
