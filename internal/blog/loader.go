package blog

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/melvinotieno/site/internal/filesystem"
	"github.com/melvinotieno/site/internal/models"
	"go.uber.org/zap"
)

// DefaultExtension is the extension of post files.
const DefaultExtension = ".mdx"

// Loader reads blog posts from a directory. Every call re-reads the
// directory; nothing is cached between calls.
type Loader struct {
	fs  filesystem.FileSystem
	dir string
	ext string
	log *zap.Logger
	now func() time.Time
	loc *time.Location
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the sink for per-file diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// WithClock sets the clock used to decide whether a post is published yet.
func WithClock(now func() time.Time) Option {
	return func(l *Loader) {
		if now != nil {
			l.now = now
		}
	}
}

// WithLocation sets the zone used for dates without an explicit offset.
func WithLocation(loc *time.Location) Option {
	return func(l *Loader) {
		if loc != nil {
			l.loc = loc
		}
	}
}

// WithExtension sets the extension of post files, including the dot.
func WithExtension(ext string) Option {
	return func(l *Loader) {
		if ext != "" {
			l.ext = ext
		}
	}
}

// NewLoader creates a loader for the posts in dir
func NewLoader(fs filesystem.FileSystem, dir string, options ...Option) *Loader {
	l := &Loader{
		fs:  fs,
		dir: dir,
		ext: DefaultExtension,
		log: zap.NewNop(),
		now: time.Now,
		loc: time.UTC,
	}

	for _, option := range options {
		option(l)
	}

	return l
}

// Dir returns the posts directory
func (l *Loader) Dir() string {
	return l.dir
}

// Extension returns the extension of post files
func (l *Loader) Extension() string {
	return l.ext
}

// PathFor returns the file path a post with slug is read from.
func (l *Loader) PathFor(slug string) string {
	return filepath.Join(l.dir, slug+l.ext)
}

// Scan loads every post file in the directory, in enumeration order, and
// reports one Result per file. Skipped files are logged.
func (l *Loader) Scan() []Result {
	entries, err := l.fs.ReadDir(l.dir)
	if err != nil {
		l.log.Error("failed to read posts directory", zap.String("dir", l.dir), zap.Error(err))
		return []Result{}
	}

	now := l.now()
	results := make([]Result, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == l.ext || filepath.Ext(entry.Name()) != l.ext {
			continue
		}
		results = append(results, l.load(filepath.Join(l.dir, entry.Name()), now))
	}

	return results
}

// ListPosts returns every published post, newest first. Posts sharing a
// publish time are ordered by slug.
func (l *Loader) ListPosts() []*models.Post {
	posts := []*models.Post{}
	for _, result := range l.Scan() {
		if result.OK() {
			posts = append(posts, result.Post)
		}
	}

	slices.SortStableFunc(posts, comparePosts)
	return posts
}

func comparePosts(a, b *models.Post) int {
	if c := b.Published.Compare(a.Published); c != 0 {
		return c
	}
	return strings.Compare(a.Slug, b.Slug)
}

// GetPost reads the post for slug without scanning the directory. It
// returns nil when the post is missing, broken or not yet published.
func (l *Loader) GetPost(slug string) *models.Post {
	if !models.ValidSlug(slug) {
		l.log.Warn("rejecting post slug", zap.String("slug", slug))
		return nil
	}

	return l.load(l.PathFor(slug), l.now()).Post
}

// GetAdjacent returns the posts around slug in the ListPosts order. Both
// sides are nil when slug is not listed.
func (l *Loader) GetAdjacent(slug string) models.Adjacent {
	posts := l.ListPosts()

	idx := slices.IndexFunc(posts, func(p *models.Post) bool { return p.Slug == slug })
	if idx < 0 {
		return models.Adjacent{}
	}

	var adjacent models.Adjacent
	if idx+1 < len(posts) {
		adjacent.Previous = posts[idx+1]
	}
	if idx > 0 {
		adjacent.Next = posts[idx-1]
	}
	return adjacent
}

// Paginate returns page number of ListPosts, limit posts per page.
func (l *Loader) Paginate(number, limit int) models.Page[*models.Post] {
	return models.Paginate(l.ListPosts(), number, limit)
}

func (l *Loader) load(path string, now time.Time) Result {
	slug := strings.TrimSuffix(filepath.Base(path), l.ext)
	result := Result{Path: path, Slug: slug}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		result.Skip = &Skip{Reason: ReasonUnreadable, Err: fmt.Errorf("failed to read file: %w", err)}
		l.report(result)
		return result
	}

	post, skip := l.parse(slug, data, now)
	if skip != nil {
		result.Skip = skip
		l.report(result)
		return result
	}

	post.FilePath = path
	result.Post = post
	return result
}

func (l *Loader) parse(slug string, data []byte, now time.Time) (*models.Post, *Skip) {
	pairs, body, err := splitContent(data)
	if err != nil {
		if errors.Is(err, ErrNoHeader) {
			return nil, &Skip{Reason: ReasonNoHeader, Err: err}
		}
		return nil, &Skip{Reason: ReasonInvalid, Err: err}
	}

	metadata := models.NewMetadata(pairs)
	if missing := metadata.MissingFields(); len(missing) > 0 {
		return nil, &Skip{
			Reason: ReasonInvalid,
			Err:    fmt.Errorf("missing required metadata: %s", strings.Join(missing, ", ")),
		}
	}

	if allDigits(metadata.PublishedAt) {
		return nil, &Skip{
			Reason: ReasonInvalid,
			Err:    fmt.Errorf("invalid publishedAt date %q: not an ISO-8601 date", metadata.PublishedAt),
		}
	}

	published, err := dateparse.ParseIn(metadata.PublishedAt, l.loc)
	if err != nil {
		return nil, &Skip{
			Reason: ReasonInvalid,
			Err:    fmt.Errorf("invalid publishedAt date %q: %w", metadata.PublishedAt, err),
		}
	}

	if published.After(now) {
		return nil, &Skip{
			Reason: ReasonScheduled,
			Err:    fmt.Errorf("scheduled for %s", published.Format(time.RFC3339)),
		}
	}

	return &models.Post{
		Slug:      slug,
		Metadata:  metadata,
		Body:      body,
		Published: published,
	}, nil
}

func (l *Loader) report(result Result) {
	fields := []zap.Field{
		zap.String("slug", result.Slug),
		zap.String("path", result.Path),
		zap.String("reason", string(result.Skip.Reason)),
		zap.Error(result.Skip.Err),
	}

	switch {
	case result.Skip.Reason == ReasonScheduled:
		l.log.Debug("skipping scheduled post", fields...)
	case errors.Is(result.Skip.Err, fs.ErrNotExist):
		l.log.Debug("post not found", fields...)
	case result.Skip.Reason == ReasonNoHeader:
		l.log.Warn("skipping post without header", fields...)
	default:
		l.log.Error("skipping post", fields...)
	}
}

// allDigits reports values dateparse would read as a Unix timestamp or a
// compact number rather than a calendar date.
func allDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
