package blog

import (
	"testing"
	"time"

	"github.com/melvinotieno/site/internal/filesystem"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{title: "Hello World", expected: "hello-world"},
		{title: "  Go 1.22: what's new?  ", expected: "go-1-22-what-s-new"},
		{title: "---", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			require.Equal(t, tt.expected, Slugify(tt.title))
		})
	}
}

func TestCreate(t *testing.T) {
	fsys := filesystem.NewMockFileSystem()
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	loader := NewLoader(fsys, "/site/posts", WithClock(func() time.Time { return now }))

	path, err := loader.Create("say-hi", Draft{Title: `Say "hi"`, Description: "A greeting"})
	require.NoError(t, err)
	require.Equal(t, "/site/posts/say-hi.mdx", path)

	post := loader.GetPost("say-hi")
	require.NotNil(t, post)
	require.Equal(t, `Say "hi"`, post.Metadata.Title)
	require.Equal(t, "2024-06-01", post.Metadata.PublishedAt)
	require.Equal(t, "A greeting", post.Metadata.Description)

	_, err = loader.Create("say-hi", Draft{Title: "Again"})
	require.ErrorIs(t, err, ErrExists)

	_, err = loader.Create("../escape", Draft{Title: "Nope"})
	require.Error(t, err)

	_, err = loader.Create("untitled", Draft{})
	require.Error(t, err)
}
