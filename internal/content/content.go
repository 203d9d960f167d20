package content

import (
	"time"

	"github.com/melvinotieno/site/internal/blog"
	"github.com/melvinotieno/site/internal/config"
	"github.com/melvinotieno/site/internal/filesystem"
	"github.com/melvinotieno/site/internal/projects"
	"go.uber.org/zap"
)

// Source bundles the loaders of one site.
type Source struct {
	Site     *config.Site
	Posts    *blog.Loader
	Projects *projects.Loader

	now func() time.Time
}

// Open builds the loaders for the content described by site. A nil clock
// means time.Now.
func Open(fs filesystem.FileSystem, site *config.Site, log *zap.Logger, now func() time.Time) *Source {
	if log == nil {
		log = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}

	return &Source{
		Site: site,
		Posts: blog.NewLoader(fs, site.PostsDir(),
			blog.WithLogger(log.Named("blog")),
			blog.WithExtension(site.Content.Extension),
			blog.WithLocation(site.Location()),
			blog.WithClock(now),
		),
		Projects: projects.NewLoader(fs, site.ProjectsDir(),
			projects.WithLogger(log.Named("projects")),
			projects.WithListFile(site.Content.ProjectsFile),
			projects.WithDetailPage(site.Content.DetailPage),
		),
		now: now,
	}
}

// Now returns the current time of the source's clock.
func (s *Source) Now() time.Time {
	return s.now()
}
