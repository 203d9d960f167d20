package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/melvinotieno/site/internal/config"
	"github.com/melvinotieno/site/internal/content"
	"github.com/melvinotieno/site/internal/filesystem"
	"github.com/melvinotieno/site/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds the state shared by every command.
type App struct {
	fs  filesystem.FileSystem
	log *zap.Logger
	now func() time.Time

	configPath string
	logLevel   string
	logFormat  string
}

// AppOption configures an App.
type AppOption func(*App)

// WithLogger makes commands log to log instead of building one from flags.
func WithLogger(log *zap.Logger) AppOption {
	return func(a *App) {
		a.log = log
	}
}

// WithClock sets the clock used for publish decisions and dates.
func WithClock(now func() time.Time) AppOption {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, options ...AppOption) *cobra.Command {
	app := &App{fs: fs, now: time.Now}
	for _, option := range options {
		option(app)
	}

	rootCmd := &cobra.Command{
		Use:   "site",
		Short: "Inspect and publish the blog and projects content",
		Long: `A CLI for the file-based content of the site.

Posts are read from the posts directory and projects from projects.json,
both located through site.yaml.`,
		SilenceUsage:      true,
		PersistentPreRunE: app.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.configPath, "config", "", "Path to site.yaml (default: searched upwards from the working directory)")
	flags.StringVar(&app.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	flags.StringVar(&app.logFormat, "log-format", "console", "Log format: console or json")

	// Add subcommands
	rootCmd.AddCommand(NewPostsCommand(app))
	rootCmd.AddCommand(NewPostCommand(app))
	rootCmd.AddCommand(NewProjectsCommand(app))
	rootCmd.AddCommand(NewCheckCommand(app))
	rootCmd.AddCommand(NewRSSCommand(app))
	rootCmd.AddCommand(NewSitemapCommand(app))
	rootCmd.AddCommand(NewOGCommand(app))
	rootCmd.AddCommand(NewBuildCommand(app))
	rootCmd.AddCommand(NewServeCommand(app))
	rootCmd.AddCommand(NewNewPostCommand(app, nil))

	return rootCmd
}

func (a *App) setup(cmd *cobra.Command, args []string) error {
	if a.log != nil {
		return nil
	}

	mode := "development"
	if a.logFormat == "json" {
		mode = "production"
	}
	log, err := logging.New(mode, a.logLevel)
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

// logger returns the configured logger, or a no-op one before setup ran.
func (a *App) logger() *zap.Logger {
	if a.log == nil {
		return zap.NewNop()
	}
	return a.log
}

// loadSite reads site.yaml from --config or the nearest parent directory.
// Without any site.yaml the defaults apply, rooted at the working directory.
func (a *App) loadSite() (*config.Site, error) {
	path := a.configPath
	if path == "" {
		found, err := config.Discover(a.fs)
		if errors.Is(err, config.ErrNotFound) {
			cwd, err := a.fs.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get working directory: %w", err)
			}
			a.logger().Debug("no site.yaml found, using defaults", zap.String("root", cwd))
			return config.DefaultAt(cwd), nil
		}
		if err != nil {
			return nil, err
		}
		path = found
	}

	site, err := config.Load(a.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return site, nil
}

// source opens the content loaders for the site.
func (a *App) source() (*content.Source, error) {
	site, err := a.loadSite()
	if err != nil {
		return nil, err
	}
	return content.Open(a.fs, site, a.logger(), a.now), nil
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	rootCmd := NewRootCommand(fs)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
