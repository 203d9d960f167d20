package feed_test

import (
	"encoding/xml"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/melvinotieno/site/internal/blog"
	"github.com/melvinotieno/site/internal/config"
	"github.com/melvinotieno/site/internal/feed"
	"github.com/melvinotieno/site/internal/models"
	"github.com/melvinotieno/site/internal/projects"
	"github.com/melvinotieno/site/internal/render"
	"github.com/melvinotieno/site/internal/sitebuilder"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func testSite(t *testing.T) *config.Site {
	t.Helper()
	site, err := config.Parse([]byte("base_url: https://example.com\nauthor: Jane Doe\nfeed:\n  description: Notes\n"))
	require.NoError(t, err)
	return site
}

func buildSite() *sitebuilder.SiteBuilder {
	return sitebuilder.New("/site").
		AddPost("first", "First Post", "2024-01-10", "Hello **world**").
		AddPost("second", "Second Post", "2024-03-05", "Another one").
		AddPost("future", "Future Post", "2030-01-01", "Not yet").
		AddProject(models.Project{Title: "Linked", Slug: "linked"}).
		AddProject(models.Project{Title: "Plain"}).
		AddProject(models.Project{Title: "Orphan", Slug: "orphan"}).
		AddProjectPage("linked")
}

func TestRSS(t *testing.T) {
	sb := buildSite()
	fsys := sb.Build()
	posts := blog.NewLoader(fsys, sb.PostsDir(), blog.WithClock(func() time.Time { return now })).ListPosts()

	rss, err := feed.RSS(testSite(t), posts, render.Markdown)
	require.NoError(t, err)

	var doc struct {
		Channel struct {
			Title string `xml:"title"`
			Items []struct {
				Title   string `xml:"title"`
				Link    string `xml:"link"`
				Content string `xml:"encoded"`
			} `xml:"item"`
		} `xml:"channel"`
	}
	require.NoError(t, xml.Unmarshal([]byte(rss), &doc))

	require.Equal(t, "Jane Doe", doc.Channel.Title)
	require.Len(t, doc.Channel.Items, 2)
	require.Equal(t, "Second Post", doc.Channel.Items[0].Title)
	require.Equal(t, "https://example.com/blog/second", doc.Channel.Items[0].Link)
	require.Equal(t, "First Post", doc.Channel.Items[1].Title)
	require.Contains(t, doc.Channel.Items[1].Content, "<strong>world</strong>")
}

func TestRSS_Empty(t *testing.T) {
	rss, err := feed.RSS(testSite(t), nil, render.Markdown)
	require.NoError(t, err)
	require.NotContains(t, rss, "<item>")
	require.NotContains(t, rss, "1970")
	require.NotContains(t, rss, "<pubDate>")
}

func TestRSS_RenderFailure(t *testing.T) {
	posts := []*models.Post{{Slug: "broken", Body: "x"}}
	_, err := feed.RSS(testSite(t), posts, func(string) (string, error) {
		return "", errors.New("boom")
	})
	require.ErrorContains(t, err, "broken")
}

func TestSitemap(t *testing.T) {
	sb := buildSite()
	fsys := sb.Build()
	posts := blog.NewLoader(fsys, sb.PostsDir(), blog.WithClock(func() time.Time { return now })).ListPosts()
	list := projects.NewLoader(fsys, sb.ProjectsDir()).ListProjects(true)

	data, err := feed.Sitemap(testSite(t), posts, list, now)
	require.NoError(t, err)

	out := string(data)
	require.True(t, strings.HasPrefix(out, xml.Header))
	require.Contains(t, out, "<loc>https://example.com/projects/linked</loc>")
	require.NotContains(t, out, "orphan")
	require.NotContains(t, out, "future")

	snaps.MatchSnapshot(t, out)
}

func TestRobots(t *testing.T) {
	snaps.MatchSnapshot(t, feed.Robots(testSite(t)))
}
