package newpost

import (
	"testing"

	"github.com/melvinotieno/site/internal/blog"
	"github.com/stretchr/testify/require"
)

func TestValidDate(t *testing.T) {
	require.NoError(t, validDate("2024-06-01"))
	require.Error(t, validDate("June 1st"))
	require.Error(t, required("title")("   "))
	require.NoError(t, required("title")("Hello"))
}

func TestRenderSuccess(t *testing.T) {
	out := RenderSuccess("/site/posts/hello.mdx", blog.Draft{Title: "Hello", PublishedAt: "2024-06-01"})
	require.Contains(t, out, "Post Created")
	require.Contains(t, out, "/site/posts/hello.mdx")
	require.Contains(t, out, "2024-06-01")
}
