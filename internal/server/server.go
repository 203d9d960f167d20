package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/melvinotieno/site/internal/config"
	"github.com/melvinotieno/site/internal/content"
	"github.com/melvinotieno/site/internal/filesystem"
	"go.uber.org/zap"
)

// Server exposes the site content over HTTP. Every request reads the
// content directory again.
type Server struct {
	fs   filesystem.FileSystem
	site *config.Site
	log  *zap.Logger
	now  func() time.Time

	Engine *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithClock sets the clock used to decide which posts are published.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a server for site.
func New(fs filesystem.FileSystem, site *config.Site, log *zap.Logger, options ...Option) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		fs:   fs,
		site: site,
		log:  log,
		now:  time.Now,
	}
	for _, option := range options {
		option(s)
	}

	s.Engine = s.router()
	return s
}

func (s *Server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())

	r.GET("/healthcheck", s.healthCheck)

	api := r.Group("/api")
	{
		api.GET("/posts", s.listPosts)
		api.GET("/posts/:slug", s.getPost)
		api.GET("/projects", s.listProjects)
	}

	r.GET("/rss", s.rss)
	r.GET("/sitemap.xml", s.sitemap)
	r.GET("/robots.txt", s.robots)
	r.GET("/og", s.openGraphImage)

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

// source opens fresh loaders for one request.
func (s *Server) source() *content.Source {
	return content.Open(s.fs, s.site, s.log, s.now)
}

// Run listens on addr until the server fails.
func (s *Server) Run(addr string) error {
	s.log.Info("serving site", zap.String("addr", addr), zap.String("base_url", s.site.BaseURL))

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
