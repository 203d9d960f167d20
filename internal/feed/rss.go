package feed

import (
	"fmt"

	"github.com/gorilla/feeds"
	"github.com/melvinotieno/site/internal/config"
	"github.com/melvinotieno/site/internal/models"
)

// Renderer turns a Markdown post body into HTML.
type Renderer func(body string) (string, error)

// RSS builds the RSS document for posts. Items keep the order of posts.
func RSS(site *config.Site, posts []*models.Post, render Renderer) (string, error) {
	feed := &feeds.Feed{
		Title:       site.Author,
		Link:        &feeds.Link{Href: site.BaseURL},
		Description: site.Feed.Description,
		Author:      &feeds.Author{Name: site.Author},
	}
	if len(posts) > 0 {
		feed.Created = posts[0].Published
	}

	feed.Items = make([]*feeds.Item, 0, len(posts))
	for _, post := range posts {
		content, err := render(post.Body)
		if err != nil {
			return "", fmt.Errorf("failed to render post %s: %w", post.Slug, err)
		}

		link := site.URL(post.Link().Href)
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          link,
			Title:       post.Metadata.Title,
			Link:        &feeds.Link{Href: link},
			Description: post.Metadata.Description,
			Content:     content,
			Created:     post.Published,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		return "", fmt.Errorf("failed to generate rss: %w", err)
	}
	return rss, nil
}
