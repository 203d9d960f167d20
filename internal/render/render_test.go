package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMarkdown(t *testing.T) {
	html, err := Markdown("# Title\n\nSome *text* with a [link](https://example.com).\n\n<script>alert(1)</script>")
	require.NoError(t, err)
	require.Contains(t, html, `<h1 id="title">Title</h1>`)
	require.Contains(t, html, "<em>text</em>")
	require.Contains(t, html, `href="https://example.com"`)
	require.NotContains(t, html, "<script>")
}

func TestMarkdown_GFM(t *testing.T) {
	html, err := Markdown("| a | b |\n|---|---|\n| 1 | 2 |\n\n~~gone~~")
	require.NoError(t, err)
	require.Contains(t, html, "<table>")
	require.Contains(t, html, "<del>gone</del>")
}

func TestSanitizeHTML(t *testing.T) {
	require.Equal(t, `<a href="https://example.com" rel="nofollow">site</a>`,
		SanitizeHTML(`<a href="https://example.com" onclick="steal()">site</a>`))
	require.Equal(t, "<b>bold</b>", SanitizeHTML("<b>bold</b><script>x()</script>"))
}

func TestFormatDate(t *testing.T) {
	now := time.Date(2024, time.June, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{name: "same day", date: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), expected: "Today"},
		{name: "one day ago", date: time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC), expected: "Yesterday"},
		{name: "older", date: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC), expected: "January 2, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, FormatDate(now, tt.date))
		})
	}
}
