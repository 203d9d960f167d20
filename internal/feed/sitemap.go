package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/melvinotieno/site/internal/config"
	"github.com/melvinotieno/site/internal/models"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

var staticRoutes = []string{"", "/blog", "/projects"}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

// Sitemap builds the sitemap for the static routes, every post and every
// project in projects that has a detail page.
func Sitemap(site *config.Site, posts []*models.Post, projects []*models.Project, now time.Time) ([]byte, error) {
	today := now.Format(time.DateOnly)

	set := urlSet{Xmlns: sitemapNamespace}
	for _, route := range staticRoutes {
		set.URLs = append(set.URLs, sitemapURL{Loc: site.URL(route), LastMod: today})
	}
	for _, post := range posts {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     site.URL(post.Link().Href),
			LastMod: post.Published.Format(time.DateOnly),
		})
	}
	for _, project := range projects {
		if !project.HasPage() {
			continue
		}
		set.URLs = append(set.URLs, sitemapURL{Loc: site.URL(project.Link().Href), LastMod: today})
	}

	data, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode sitemap: %w", err)
	}
	return append([]byte(xml.Header), data...), nil
}

// Robots builds robots.txt pointing crawlers at the sitemap.
func Robots(site *config.Site) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /private/\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "Sitemap: %s\n", site.URL("/sitemap.xml"))
	return b.String()
}
