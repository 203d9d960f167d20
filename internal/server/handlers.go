package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/melvinotieno/site/internal/feed"
	"github.com/melvinotieno/site/internal/ogimage"
	"github.com/melvinotieno/site/internal/render"
	"go.uber.org/zap"
)

var errNotFound = errors.New("not found")

func (s *Server) healthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// pageNumber reads the ?page= query. Missing, malformed or non-positive
// values fall back to the first page.
func pageNumber(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func (s *Server) listPosts(c *gin.Context) {
	RespondOK(c, s.source().PostPage(pageNumber(c)))
}

func (s *Server) getPost(c *gin.Context) {
	slug := c.Param("slug")

	detail, err := s.source().PostDetail(slug)
	if err != nil {
		s.log.Error("failed to render post", zap.String("slug", slug), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "render_failed", err)
		return
	}
	if detail == nil {
		RespondError(c, http.StatusNotFound, "not_found", fmt.Errorf("post %q: %w", slug, errNotFound))
		return
	}

	RespondOK(c, detail)
}

func (s *Server) listProjects(c *gin.Context) {
	RespondOK(c, s.source().ProjectPage(pageNumber(c)))
}

func (s *Server) rss(c *gin.Context) {
	src := s.source()

	doc, err := feed.RSS(s.site, src.Posts.ListPosts(), render.Markdown)
	if err != nil {
		s.log.Error("failed to build rss", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "rss_failed", err)
		return
	}
	c.Data(http.StatusOK, "text/xml; charset=utf-8", []byte(doc))
}

func (s *Server) sitemap(c *gin.Context) {
	src := s.source()

	data, err := feed.Sitemap(s.site, src.Posts.ListPosts(), src.Projects.ListProjects(true), src.Now())
	if err != nil {
		s.log.Error("failed to build sitemap", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "sitemap_failed", err)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", data)
}

func (s *Server) robots(c *gin.Context) {
	c.String(http.StatusOK, feed.Robots(s.site))
}

func (s *Server) openGraphImage(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		title = s.site.Author
	}

	var buf bytes.Buffer
	if err := ogimage.Render(&buf, title); err != nil {
		s.log.Error("failed to render og image", zap.String("title", title), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "og_failed", err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
