package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

func htmlPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("rel").OnElements("a")
	return policy
}

var (
	policy = htmlPolicy()

	markdown = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
)

// Markdown renders a post body to sanitized HTML.
func Markdown(body string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return policy.Sanitize(buf.String()), nil
}

// SanitizeHTML strips unsafe markup from an HTML fragment such as a project
// description.
func SanitizeHTML(fragment string) string {
	return policy.Sanitize(fragment)
}

// FormatDate renders a publish date relative to now: "Today", "Yesterday",
// or a long date such as "January 2, 2024".
func FormatDate(now, t time.Time) string {
	days := int(now.Sub(t).Hours() / 24)
	switch days {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	default:
		return t.Format("January 2, 2006")
	}
}
