package projects

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/melvinotieno/site/internal/filesystem"
	"github.com/melvinotieno/site/internal/models"
	"go.uber.org/zap"
)

const (
	DefaultListFile   = "projects.json"
	DefaultDetailPage = "page.mdx"
)

// Loader reads the project list and checks detail pages on disk. Every
// call re-reads the list.
type Loader struct {
	fs         filesystem.FileSystem
	dir        string
	listFile   string
	detailPage string
	log        *zap.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the sink for data-integrity advisories.
func WithLogger(log *zap.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// WithListFile sets the name of the JSON list inside the projects directory.
func WithListFile(name string) Option {
	return func(l *Loader) {
		if name != "" {
			l.listFile = name
		}
	}
}

// WithDetailPage sets the file name probed under <dir>/<slug>/.
func WithDetailPage(name string) Option {
	return func(l *Loader) {
		if name != "" {
			l.detailPage = name
		}
	}
}

// NewLoader creates a loader for the projects in dir
func NewLoader(fs filesystem.FileSystem, dir string, options ...Option) *Loader {
	l := &Loader{
		fs:         fs,
		dir:        dir,
		listFile:   DefaultListFile,
		detailPage: DefaultDetailPage,
		log:        zap.NewNop(),
	}

	for _, option := range options {
		option(l)
	}

	return l
}

// ListPath returns the path of the JSON project list.
func (l *Loader) ListPath() string {
	return filepath.Join(l.dir, l.listFile)
}

// DetailPath returns the detail page path for slug.
func (l *Loader) DetailPath(slug string) string {
	return filepath.Join(l.dir, slug, l.detailPage)
}

// ListProjects returns the projects in list order. Entries without a title
// are dropped. Entries with a slug are kept only when their detail page
// exists. Entries without a slug are kept unless linkableOnly is set, which
// callers such as the sitemap use to get pages they can link to.
func (l *Loader) ListProjects(linkableOnly bool) []*models.Project {
	entries, err := l.read()
	if err != nil {
		l.log.Error("failed to load project list", zap.String("path", l.ListPath()), zap.Error(err))
		return []*models.Project{}
	}

	projects := make([]*models.Project, 0, len(entries))
	for _, project := range entries {
		if project.Title == "" {
			l.reportUntitled(project)
			continue
		}

		if project.HasPage() {
			if !l.pageExists(project.Slug) {
				continue
			}
		} else if linkableOnly {
			continue
		}

		projects = append(projects, project)
	}

	return projects
}

// Paginate returns page number of ListProjects(false), limit per page.
func (l *Loader) Paginate(number, limit int) models.Page[*models.Project] {
	return models.Paginate(l.ListProjects(false), number, limit)
}

func (l *Loader) read() ([]*models.Project, error) {
	data, err := l.fs.ReadFile(l.ListPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode project list: %w", err)
	}

	// entries that are null or fail to decode carry no title and are
	// reported like any untitled entry
	entries := make([]*models.Project, 0, len(raw))
	for i, message := range raw {
		project := &models.Project{}
		if err := json.Unmarshal(message, &project); err != nil || project == nil {
			if err != nil {
				l.log.Warn("failed to decode project entry", zap.Int("index", i), zap.Error(err))
			}
			project = &models.Project{}
		}
		entries = append(entries, project)
	}

	return entries, nil
}

// pageExists probes the detail page. Any failure, permission errors
// included, counts as missing, as does a slug reaching outside the
// projects directory.
func (l *Loader) pageExists(slug string) bool {
	if !models.ValidSlug(slug) {
		l.log.Error("project slug does not name a directory", zap.String("slug", slug))
		return false
	}

	path := l.DetailPath(slug)
	if _, err := l.fs.Stat(path); err != nil {
		l.log.Error("project detail page does not exist",
			zap.String("slug", slug),
			zap.String("path", path),
			zap.Error(err),
		)
		return false
	}
	return true
}

func (l *Loader) reportUntitled(project *models.Project) {
	fields := []zap.Field{}
	switch {
	case project.Slug != "":
		fields = append(fields, zap.String("slug", project.Slug))
	case project.Description != "":
		fields = append(fields, zap.String("description", project.Description))
	}
	l.log.Warn("project is missing required title", fields...)
}
