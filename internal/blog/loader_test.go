package blog_test

import (
	"io/fs"
	"path/filepath"
	"testing"
	"time"

	"github.com/melvinotieno/site/internal/blog"
	"github.com/melvinotieno/site/internal/models"
	"github.com/melvinotieno/site/internal/sitebuilder"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var now = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func newLoader(sb *sitebuilder.SiteBuilder, log *zap.Logger) *blog.Loader {
	return blog.NewLoader(sb.Build(), sb.PostsDir(), blog.WithClock(clock), blog.WithLogger(log))
}

func slugs(posts []*models.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Slug)
	}
	return out
}

func threePosts() *sitebuilder.SiteBuilder {
	return sitebuilder.New("/site").
		AddPost("january", "January", "2024-01-01", "One").
		AddPost("march", "March", "2024-03-01", "Three").
		AddPost("february", "February", "2024-02-01", "Two")
}

func TestListPosts_SortedNewestFirst(t *testing.T) {
	loader := newLoader(threePosts(), nil)

	posts := loader.ListPosts()
	require.Equal(t, []string{"march", "february", "january"}, slugs(posts))

	for i := 1; i < len(posts); i++ {
		require.True(t, posts[i-1].Published.After(posts[i].Published))
	}

	march := posts[0]
	require.Equal(t, "March", march.Metadata.Title)
	require.Equal(t, "2024-03-01", march.Metadata.PublishedAt)
	require.Equal(t, "Three", march.Body)
	require.Equal(t, "/site/src/app/blog/posts/march.mdx", march.FilePath)
}

func TestPaginate(t *testing.T) {
	loader := newLoader(threePosts(), nil)

	first := loader.Paginate(1, 2)
	require.Equal(t, []string{"march", "february"}, slugs(first.Items))
	require.Equal(t, 3, first.Total)

	second := loader.Paginate(2, 2)
	require.Equal(t, []string{"january"}, slugs(second.Items))
	require.Equal(t, 3, second.Total)

	beyond := loader.Paginate(5, 2)
	require.Empty(t, beyond.Items)
	require.Equal(t, 3, beyond.Total)
}

func TestListPosts_ExcludesHeaderlessFiles(t *testing.T) {
	sb := threePosts().
		AddRawPost("notes.mdx", "just some notes\n").
		AddRawPost("half.mdx", "---\ntitle: Half\n")

	core, logs := observer.New(zapcore.DebugLevel)
	posts := newLoader(sb, zap.New(core)).ListPosts()

	require.Len(t, posts, 3)
	require.Equal(t, 2, logs.FilterMessage("skipping post without header").Len())
	require.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestListPosts_ExcludesScheduledPosts(t *testing.T) {
	sb := threePosts().AddPost("tomorrow", "Tomorrow", "2024-06-02", "Soon")

	core, logs := observer.New(zapcore.DebugLevel)
	loader := newLoader(sb, zap.New(core))

	require.NotContains(t, slugs(loader.ListPosts()), "tomorrow")
	require.Nil(t, loader.GetPost("tomorrow"))

	require.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	require.Equal(t, 2, logs.FilterMessage("skipping scheduled post").Len())
}

func TestListPosts_ScheduledPostAppearsOncePublished(t *testing.T) {
	sb := sitebuilder.New("/site").AddPost("later", "Later", "2024-06-01T18:00:00Z", "Soon")
	fsys := sb.Build()

	current := now
	loader := blog.NewLoader(fsys, sb.PostsDir(), blog.WithClock(func() time.Time { return current }))
	require.Empty(t, loader.ListPosts())

	current = now.Add(7 * time.Hour)
	require.Equal(t, []string{"later"}, slugs(loader.ListPosts()))
}

func TestListPosts_InvalidMetadataIsLoggedAsError(t *testing.T) {
	tests := []struct {
		name   string
		header []string
	}{
		{name: "missing title", header: []string{"publishedAt: 2024-01-01"}},
		{name: "empty title", header: []string{`title: ""`, "publishedAt: 2024-01-01"}},
		{name: "missing publishedAt", header: []string{"title: No date"}},
		{name: "unparsable publishedAt", header: []string{"title: Bad date", "publishedAt: someday soon"}},
		{name: "numeric publishedAt", header: []string{"title: Timestamp", "publishedAt: 1700000000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb := threePosts().AddPostWithHeader("broken", tt.header, "Body")

			core, logs := observer.New(zapcore.DebugLevel)
			loader := newLoader(sb, zap.New(core))

			posts := loader.ListPosts()
			require.Len(t, posts, 3)
			require.NotContains(t, slugs(posts), "broken")

			errs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
			require.Len(t, errs, 1)
			require.Equal(t, "broken", errs[0].ContextMap()["slug"])
			require.Equal(t, "invalid", errs[0].ContextMap()["reason"])

			require.Nil(t, loader.GetPost("broken"))
		})
	}
}

func TestListPosts_UnreadableFileDoesNotAbortListing(t *testing.T) {
	sb := threePosts().AddPost("locked", "Locked", "2024-01-15", "Secret")
	fsys := sb.Build()
	fsys.SetError(filepath.Join(sb.PostsDir(), "locked.mdx"), fs.ErrPermission)

	core, logs := observer.New(zapcore.DebugLevel)
	loader := blog.NewLoader(fsys, sb.PostsDir(), blog.WithClock(clock), blog.WithLogger(zap.New(core)))

	require.Equal(t, []string{"march", "february", "january"}, slugs(loader.ListPosts()))
	require.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestListPosts_MissingDirectory(t *testing.T) {
	fsys := sitebuilder.New("/site").Build()

	core, logs := observer.New(zapcore.DebugLevel)
	loader := blog.NewLoader(fsys, "/nowhere", blog.WithLogger(zap.New(core)))

	posts := loader.ListPosts()
	require.NotNil(t, posts)
	require.Empty(t, posts)
	require.Equal(t, 1, logs.FilterMessage("failed to read posts directory").Len())
}

func TestListPosts_IgnoresOtherFiles(t *testing.T) {
	sb := threePosts().
		AddRawPost("readme.md", "---\ntitle: Readme\npublishedAt: 2024-01-01\n---\n").
		AddRawPost("drafts/hidden.mdx", "---\ntitle: Hidden\npublishedAt: 2024-01-01\n---\nbody\n")

	require.Equal(t, []string{"march", "february", "january"}, slugs(newLoader(sb, nil).ListPosts()))
}

func TestListPosts_CustomExtension(t *testing.T) {
	sb := sitebuilder.New("/site").
		AddRawPost("hello.md", "---\ntitle: Hello\npublishedAt: 2024-01-01\n---\nbody\n").
		AddPost("ignored", "Ignored", "2024-01-01", "body")

	loader := blog.NewLoader(sb.Build(), sb.PostsDir(), blog.WithClock(clock), blog.WithExtension(".md"))
	require.Equal(t, []string{"hello"}, slugs(loader.ListPosts()))
	require.NotNil(t, loader.GetPost("hello"))
}

func TestListPosts_EqualDatesOrderedBySlug(t *testing.T) {
	sb := sitebuilder.New("/site").
		AddPost("b-post", "B", "2024-01-01", "b").
		AddPost("c-post", "C", "2024-01-01", "c").
		AddPost("a-post", "A", "2024-01-01", "a").
		AddPost("newer", "Newer", "2024-01-02", "n")

	require.Equal(t, []string{"newer", "a-post", "b-post", "c-post"}, slugs(newLoader(sb, nil).ListPosts()))
}

func TestListPosts_TimezoneForDateOnlyValues(t *testing.T) {
	nairobi := time.FixedZone("EAT", 3*60*60)
	sb := sitebuilder.New("/site").AddPost("local", "Local", "2024-01-01", "body")

	loader := blog.NewLoader(sb.Build(), sb.PostsDir(), blog.WithClock(clock), blog.WithLocation(nairobi))
	posts := loader.ListPosts()
	require.Len(t, posts, 1)
	require.Equal(t, time.Date(2023, time.December, 31, 21, 0, 0, 0, time.UTC), posts[0].Published.UTC())
}

func TestGetPost(t *testing.T) {
	sb := threePosts().AddPost("CamelCase", "Camel", "2024-01-10", "Case preserved")
	loader := newLoader(sb, nil)

	post := loader.GetPost("february")
	require.NotNil(t, post)
	require.Equal(t, "February", post.Metadata.Title)
	require.Equal(t, "Two", post.Body)

	camel := loader.GetPost("CamelCase")
	require.NotNil(t, camel)
	require.Equal(t, "CamelCase", camel.Slug)

	require.Nil(t, loader.GetPost("missing"))
	require.Nil(t, loader.GetPost(""))
	require.Nil(t, loader.GetPost("../site.yaml"))
	require.Nil(t, loader.GetPost("nested/post"))
}

func TestGetAdjacent(t *testing.T) {
	loader := newLoader(threePosts(), nil)

	newest := loader.GetAdjacent("march")
	require.Nil(t, newest.Next)
	require.Equal(t, "february", newest.Previous.Slug)

	middle := loader.GetAdjacent("february")
	require.Equal(t, "january", middle.Previous.Slug)
	require.Equal(t, "march", middle.Next.Slug)

	oldest := loader.GetAdjacent("january")
	require.Nil(t, oldest.Previous)
	require.Equal(t, "february", oldest.Next.Slug)

	unknown := loader.GetAdjacent("missing")
	require.Nil(t, unknown.Previous)
	require.Nil(t, unknown.Next)
}

func TestScan_ReportsEveryFile(t *testing.T) {
	sb := sitebuilder.New("/site").
		AddPost("ok", "OK", "2024-01-01", "body").
		AddPost("later", "Later", "2030-01-01", "body").
		AddPostWithHeader("broken", []string{"title: Broken"}, "body").
		AddRawPost("plain.mdx", "no header\n")

	results := newLoader(sb, nil).Scan()
	require.Len(t, results, 4)

	bySlug := map[string]blog.Result{}
	for _, r := range results {
		bySlug[r.Slug] = r
	}

	require.True(t, bySlug["ok"].OK())
	require.False(t, bySlug["ok"].Failed())

	require.Equal(t, blog.ReasonScheduled, bySlug["later"].Skip.Reason)
	require.False(t, bySlug["later"].Failed())

	require.Equal(t, blog.ReasonInvalid, bySlug["broken"].Skip.Reason)
	require.True(t, bySlug["broken"].Failed())
	require.ErrorContains(t, bySlug["broken"].Skip, "publishedAt")

	require.Equal(t, blog.ReasonNoHeader, bySlug["plain"].Skip.Reason)
	require.ErrorIs(t, bySlug["plain"].Skip, blog.ErrNoHeader)
}

func TestListPosts_EveryListedPostCanBeFetched(t *testing.T) {
	sb := threePosts().
		AddPost("a..b", "Dots", "2024-04-01", "body").
		AddPost("with.dot", "Dot", "2024-05-01", "body").
		AddRawPost(".mdx", "---\ntitle: Nameless\npublishedAt: 2024-01-01\n---\nbody\n")
	loader := newLoader(sb, nil)

	posts := loader.ListPosts()
	require.Equal(t, []string{"with.dot", "a..b", "march", "february", "january"}, slugs(posts))
	for _, p := range posts {
		require.NotNil(t, loader.GetPost(p.Slug), p.Slug)
	}

	adjacent := loader.GetAdjacent("march")
	require.Equal(t, "a..b", adjacent.Next.Slug)
	require.NotNil(t, loader.GetPost(adjacent.Next.Slug))
}

func TestListPosts_ByteOrderMark(t *testing.T) {
	sb := sitebuilder.New("/site").
		AddRawPost("bom.mdx", "\ufeff---\ntitle: BOM\npublishedAt: 2024-01-01\n---\nbody\n")

	require.Equal(t, []string{"bom"}, slugs(newLoader(sb, nil).ListPosts()))
}
