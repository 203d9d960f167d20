package sitebuilder

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/melvinotieno/site/internal/config"
	"github.com/melvinotieno/site/internal/filesystem"
	"github.com/melvinotieno/site/internal/models"
)

// SiteBuilder helps create in-memory sites for tests
type SiteBuilder struct {
	fs       *filesystem.MockFileSystem
	root     string
	projects []models.Project
	config   string
}

// New creates a SiteBuilder with empty posts and projects directories laid
// out the way the default configuration expects.
func New(root string) *SiteBuilder {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir(root)
	fs.SetCurrentDir(root)

	b := &SiteBuilder{fs: fs, root: root}
	fs.AddDir(b.PostsDir())
	fs.AddDir(b.ProjectsDir())
	return b
}

// Root returns the site root.
func (b *SiteBuilder) Root() string {
	return b.root
}

// PostsDir returns the directory posts are written to.
func (b *SiteBuilder) PostsDir() string {
	return filepath.Join(b.root, config.DefaultPostsDir)
}

// ProjectsDir returns the directory holding projects.json and detail pages.
func (b *SiteBuilder) ProjectsDir() string {
	return filepath.Join(b.root, config.DefaultProjectsDir)
}

// AddPost adds a well-formed post.
func (b *SiteBuilder) AddPost(slug, title, publishedAt, body string) *SiteBuilder {
	content := fmt.Sprintf("---\ntitle: %q\npublishedAt: %q\n---\n\n%s\n", title, publishedAt, body)
	return b.AddRawPost(slug+config.DefaultExtension, content)
}

// AddPostWithHeader adds a post whose header lines are given verbatim.
func (b *SiteBuilder) AddPostWithHeader(slug string, headerLines []string, body string) *SiteBuilder {
	content := "---\n" + strings.Join(headerLines, "\n") + "\n---\n\n" + body + "\n"
	return b.AddRawPost(slug+config.DefaultExtension, content)
}

// AddRawPost writes filename into the posts directory as is.
func (b *SiteBuilder) AddRawPost(filename, content string) *SiteBuilder {
	b.fs.AddFile(filepath.Join(b.PostsDir(), filename), []byte(content))
	return b
}

// AddProject appends an entry to projects.json.
func (b *SiteBuilder) AddProject(project models.Project) *SiteBuilder {
	b.projects = append(b.projects, project)
	return b
}

// AddProjectPage creates the detail page for slug.
func (b *SiteBuilder) AddProjectPage(slug string) *SiteBuilder {
	path := filepath.Join(b.ProjectsDir(), slug, config.DefaultDetailPage)
	b.fs.AddFile(path, []byte("# "+slug+"\n"))
	return b
}

// WithConfig writes site.yaml at the root.
func (b *SiteBuilder) WithConfig(content string) *SiteBuilder {
	b.config = content
	return b
}

// Build writes projects.json and site.yaml and returns the filesystem
func (b *SiteBuilder) Build() *filesystem.MockFileSystem {
	if b.projects != nil {
		data, err := json.MarshalIndent(b.projects, "", "  ")
		if err != nil {
			panic(fmt.Sprintf("sitebuilder: %v", err))
		}
		b.fs.AddFile(filepath.Join(b.ProjectsDir(), config.DefaultProjectsFile), data)
	}

	if b.config != "" {
		b.fs.AddFile(filepath.Join(b.root, config.FileName), []byte(b.config))
	}

	return b.fs
}

// FileSystem returns the mock filesystem
func (b *SiteBuilder) FileSystem() *filesystem.MockFileSystem {
	return b.fs
}
