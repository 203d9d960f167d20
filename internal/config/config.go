package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/melvinotieno/site/internal/filesystem"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the site configuration file.
const FileName = "site.yaml"

const (
	DefaultPostsDir     = "src/app/blog/posts"
	DefaultProjectsDir  = "src/app/projects"
	DefaultExtension    = ".mdx"
	DefaultProjectsFile = "projects.json"
	DefaultDetailPage   = "page.mdx"

	DefaultPostsPerPage    = 15
	DefaultProjectsPerPage = 10
)

// ErrNotFound is returned when no site.yaml can be located.
var ErrNotFound = errors.New("site configuration not found")

// Site is the parsed site.yaml.
type Site struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	BaseURL     string `yaml:"base_url"`
	Author      string `yaml:"author"`
	Twitter     string `yaml:"twitter"`

	// Timezone is the IANA zone used for publish dates without an offset
	Timezone string `yaml:"timezone"`

	Content    Content    `yaml:"content"`
	Pagination Pagination `yaml:"pagination"`
	Feed       Feed       `yaml:"feed"`

	root     string
	location *time.Location
}

// Content locates the content on disk. Relative paths are resolved against
// the directory holding site.yaml.
type Content struct {
	PostsDir     string `yaml:"posts_dir"`
	ProjectsDir  string `yaml:"projects_dir"`
	Extension    string `yaml:"extension"`
	ProjectsFile string `yaml:"projects_file"`
	DetailPage   string `yaml:"detail_page"`
}

// Pagination holds page sizes of the listings.
type Pagination struct {
	Posts    int `yaml:"posts"`
	Projects int `yaml:"projects"`
}

// Feed configures the RSS channel.
type Feed struct {
	Description string `yaml:"description"`
}

// Default returns the configuration used when site.yaml omits a value.
func Default() *Site {
	return &Site{
		Title:       "Melvin Otieno",
		Description: "Software Developer with a passion for building things.",
		BaseURL:     "http://localhost:8080",
		Author:      "Melvin Otieno",
		Timezone:    "UTC",
		Content: Content{
			PostsDir:     DefaultPostsDir,
			ProjectsDir:  DefaultProjectsDir,
			Extension:    DefaultExtension,
			ProjectsFile: DefaultProjectsFile,
			DetailPage:   DefaultDetailPage,
		},
		Pagination: Pagination{
			Posts:    DefaultPostsPerPage,
			Projects: DefaultProjectsPerPage,
		},
		Feed: Feed{
			Description: "My thoughts on technology, software development, and more.",
		},
		root:     ".",
		location: time.UTC,
	}
}

// DefaultAt returns the default configuration for a site rooted at root,
// used when no site.yaml exists.
func DefaultAt(root string) *Site {
	site := Default()
	site.root = root
	return site
}

// Load reads and validates the configuration at path.
func Load(fsys filesystem.FileSystem, path string) (*Site, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	site.root = filepath.Dir(path)

	return site, nil
}

// Parse decodes and validates site.yaml content. Relative content paths
// resolve against the working directory until Load sets the root.
func Parse(data []byte) (*Site, error) {
	site := Default()
	if err := yaml.Unmarshal(data, site); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	site.applyDefaults()
	if err := site.Validate(); err != nil {
		return nil, err
	}

	return site, nil
}

// Discover walks up from the working directory looking for site.yaml.
func Discover(fsys filesystem.FileSystem) (string, error) {
	cwd, err := fsys.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	dir := cwd
	for {
		path := filepath.Join(dir, FileName)
		if fsys.Exists(path) {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

func (s *Site) applyDefaults() {
	defaults := Default()

	if s.Timezone == "" {
		s.Timezone = defaults.Timezone
	}
	if s.Content.PostsDir == "" {
		s.Content.PostsDir = defaults.Content.PostsDir
	}
	if s.Content.ProjectsDir == "" {
		s.Content.ProjectsDir = defaults.Content.ProjectsDir
	}
	if s.Content.Extension == "" {
		s.Content.Extension = defaults.Content.Extension
	}
	if !strings.HasPrefix(s.Content.Extension, ".") {
		s.Content.Extension = "." + s.Content.Extension
	}
	if s.Content.ProjectsFile == "" {
		s.Content.ProjectsFile = defaults.Content.ProjectsFile
	}
	if s.Content.DetailPage == "" {
		s.Content.DetailPage = defaults.Content.DetailPage
	}
	if s.Pagination.Posts == 0 {
		s.Pagination.Posts = defaults.Pagination.Posts
	}
	if s.Pagination.Projects == 0 {
		s.Pagination.Projects = defaults.Pagination.Projects
	}
	s.BaseURL = strings.TrimRight(s.BaseURL, "/")
	if s.root == "" {
		s.root = "."
	}
}

// Validate checks the values that the loaders and feeds cannot recover from.
func (s *Site) Validate() error {
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url %q: %w", s.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute http(s) URL, got %q", s.BaseURL)
	}

	if s.Pagination.Posts < 0 || s.Pagination.Projects < 0 {
		return fmt.Errorf("page sizes must be positive")
	}

	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", s.Timezone, err)
	}
	s.location = loc

	return nil
}

// Root returns the directory holding site.yaml.
func (s *Site) Root() string {
	return s.root
}

// PostsDir returns the resolved posts directory.
func (s *Site) PostsDir() string {
	return s.resolve(s.Content.PostsDir)
}

// ProjectsDir returns the resolved projects directory.
func (s *Site) ProjectsDir() string {
	return s.resolve(s.Content.ProjectsDir)
}

func (s *Site) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(s.root, path)
}

// Location returns the zone used for publish dates without an offset.
func (s *Site) Location() *time.Location {
	if s.location == nil {
		return time.UTC
	}
	return s.location
}

// URL joins path onto the base URL.
func (s *Site) URL(path string) string {
	if path == "" {
		return s.BaseURL
	}
	return s.BaseURL + "/" + strings.TrimLeft(path, "/")
}
