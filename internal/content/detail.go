package content

import (
	"fmt"

	"github.com/melvinotieno/site/internal/models"
	"github.com/melvinotieno/site/internal/ogimage"
	"github.com/melvinotieno/site/internal/render"
)

// PostDetail is a post prepared for display with its neighbours.
type PostDetail struct {
	*models.Post

	HTML  string `json:"html"`
	Date  string `json:"date"`
	Image string `json:"image"`

	Previous *models.Link `json:"previous"`
	Next     *models.Link `json:"next"`
}

// PostDetail loads slug and renders it. It returns nil without an error when
// the post does not exist or is not published.
func (s *Source) PostDetail(slug string) (*PostDetail, error) {
	post := s.Posts.GetPost(slug)
	if post == nil {
		return nil, nil
	}

	html, err := render.Markdown(post.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to render post %s: %w", slug, err)
	}

	detail := &PostDetail{
		Post:  post,
		HTML:  html,
		Date:  render.FormatDate(s.Now(), post.Published),
		Image: ogimage.ResolveImage(s.Site.BaseURL, post.Metadata.Title, post.Metadata.Image),
	}
	detail.Previous, detail.Next = s.Posts.GetAdjacent(slug).Links()

	return detail, nil
}

// ProjectPage returns page number of all projects with their descriptions
// sanitized for display.
func (s *Source) ProjectPage(number int) models.Page[*models.Project] {
	page := s.Projects.Paginate(number, s.Site.Pagination.Projects)
	for i, p := range page.Items {
		sanitized := *p
		sanitized.Description = render.SanitizeHTML(p.Description)
		page.Items[i] = &sanitized
	}
	return page
}

// PostPage returns page number of the published posts.
func (s *Source) PostPage(number int) models.Page[*models.Post] {
	return s.Posts.Paginate(number, s.Site.Pagination.Posts)
}
