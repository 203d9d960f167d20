package models

import (
	"time"
)

// Metadata is the header block of a post.
type Metadata struct {
	// Title is required
	Title string `json:"title"`

	// PublishedAt is the raw date string from the header; required and
	// parseable as an ISO-8601 date
	PublishedAt string `json:"publishedAt"`

	Description string `json:"description,omitempty"`
	Keywords    string `json:"keywords,omitempty"`

	// Image is an absolute URL overriding the generated Open Graph image
	Image string `json:"image,omitempty"`
}

// metadataFields maps header keys to the Metadata field they populate.
// Keys not listed here are ignored.
var metadataFields = map[string]func(m *Metadata, value string){
	"title":       func(m *Metadata, v string) { m.Title = v },
	"publishedAt": func(m *Metadata, v string) { m.PublishedAt = v },
	"description": func(m *Metadata, v string) { m.Description = v },
	"keywords":    func(m *Metadata, v string) { m.Keywords = v },
	"image":       func(m *Metadata, v string) { m.Image = v },
}

// NewMetadata builds Metadata from parsed header pairs.
func NewMetadata(pairs map[string]string) Metadata {
	var m Metadata
	for key, value := range pairs {
		if set, ok := metadataFields[key]; ok {
			set(&m, value)
		}
	}
	return m
}

// MissingFields returns the header keys of required fields that are empty.
func (m Metadata) MissingFields() []string {
	var missing []string
	if m.Title == "" {
		missing = append(missing, "title")
	}
	if m.PublishedAt == "" {
		missing = append(missing, "publishedAt")
	}
	return missing
}

// Post is a parsed, published blog post.
type Post struct {
	// Slug is the file name without its extension, case preserved
	Slug string `json:"slug"`

	Metadata Metadata `json:"metadata"`

	// Body is the file content after the header, trimmed
	Body string `json:"content"`

	// Published is Metadata.PublishedAt parsed
	Published time.Time `json:"-"`

	// FilePath is the path the post was read from
	FilePath string `json:"-"`
}

// Link is a titled reference to a page on the site.
type Link struct {
	Href  string `json:"link"`
	Title string `json:"title"`
}

// Link returns the post's page link.
func (p *Post) Link() Link {
	return Link{Href: "/blog/" + p.Slug, Title: p.Metadata.Title}
}

// Adjacent holds the neighbours of a post in the published listing.
type Adjacent struct {
	// Previous is the chronologically older post
	Previous *Post

	// Next is the chronologically newer post
	Next *Post
}

// Links returns the page paginator links for the neighbours; a side is nil
// when there is no neighbour.
func (a Adjacent) Links() (previous, next *Link) {
	if a.Previous != nil {
		l := a.Previous.Link()
		previous = &l
	}
	if a.Next != nil {
		l := a.Next.Link()
		next = &l
	}
	return previous, next
}
