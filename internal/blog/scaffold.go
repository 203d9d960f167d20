package blog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/melvinotieno/site/internal/models"
)

// ErrExists is returned by Create when the post file is already present.
var ErrExists = errors.New("post already exists")

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Draft holds the header values of a new post.
type Draft struct {
	Title       string
	PublishedAt string
	Description string
	Keywords    string
	Image       string
}

// Slugify derives a file name from a post title.
func Slugify(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// Render returns the file content for the draft: a header followed by an
// empty body.
func (d Draft) Render() []byte {
	var b strings.Builder
	b.WriteString(marker + "\n")
	writeField(&b, "title", d.Title)
	writeField(&b, "publishedAt", d.PublishedAt)
	writeField(&b, "description", d.Description)
	writeField(&b, "keywords", d.Keywords)
	writeField(&b, "image", d.Image)
	b.WriteString(marker + "\n\n")
	return []byte(b.String())
}

func writeField(b *strings.Builder, key, value string) {
	value = strings.Join(strings.Fields(value), " ")
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s: \"%s\"\n", key, value)
}

// Create writes a new post for the draft and returns its path. The publish
// date defaults to today in the loader's location.
func (l *Loader) Create(slug string, draft Draft) (string, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return "", errors.New("title is required")
	}
	if !models.ValidSlug(slug) || Slugify(slug) != slug {
		return "", fmt.Errorf("invalid slug %q", slug)
	}
	if draft.PublishedAt == "" {
		draft.PublishedAt = l.now().In(l.loc).Format(time.DateOnly)
	}

	path := l.PathFor(slug)
	if l.fs.Exists(path) {
		return "", fmt.Errorf("%w: %s", ErrExists, path)
	}

	if err := l.fs.MkdirAll(l.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create posts directory: %w", err)
	}
	if err := l.fs.WriteFile(path, draft.Render(), 0644); err != nil {
		return "", fmt.Errorf("failed to write post: %w", err)
	}

	return path, nil
}
