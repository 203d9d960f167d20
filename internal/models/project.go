package models

// Project is an entry of the project list.
type Project struct {
	Title string `json:"title,omitempty"`

	// Description may contain HTML
	Description string `json:"description,omitempty"`

	// Slug, when set, names the project's detail page directory
	Slug string `json:"slug,omitempty"`
}

// HasPage reports whether the project links to a detail page.
func (p *Project) HasPage() bool {
	return p.Slug != ""
}

// Link returns the project's detail page link.
func (p *Project) Link() Link {
	return Link{Href: "/projects/" + p.Slug, Title: p.Title}
}
