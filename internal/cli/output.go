package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/melvinotieno/site/internal/content"
	"github.com/melvinotieno/site/internal/models"
	"github.com/melvinotieno/site/internal/render"
	"github.com/melvinotieno/site/internal/tui"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func validateFormat(format string) error {
	if format != formatText && format != formatJSON {
		return fmt.Errorf("unknown format %q: expected text or json", format)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func renderPostPage(page models.Page[*models.Post], now time.Time) string {
	var b strings.Builder

	b.WriteString(tui.HeaderStyle.Render("Posts"))
	b.WriteString("\n\n")

	if len(page.Items) == 0 {
		b.WriteString(tui.SubtleStyle.Render("No posts on this page."))
		b.WriteString("\n")
	}
	for _, post := range page.Items {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			tui.TitleStyle.Render(post.Metadata.Title),
			tui.SubtleStyle.Render(render.FormatDate(now, post.Published)),
		))
		b.WriteString("  " + tui.LinkStyle.Render(post.Link().Href) + "\n")
		if post.Metadata.Description != "" {
			b.WriteString("  " + tui.DescStyle.Render(post.Metadata.Description) + "\n")
		}
	}

	b.WriteString(renderNav(page.Number, page.TotalPages(), page.Total, page.ShowNav(), page.HasPrevious(), page.HasNext()))
	return b.String()
}

func renderProjectPage(page models.Page[*models.Project]) string {
	var b strings.Builder

	b.WriteString(tui.HeaderStyle.Render("Projects"))
	b.WriteString("\n\n")

	if len(page.Items) == 0 {
		b.WriteString(tui.SubtleStyle.Render("No projects on this page."))
		b.WriteString("\n")
	}
	for _, project := range page.Items {
		b.WriteString(tui.TitleStyle.Render(project.Title) + "\n")
		if project.HasPage() {
			b.WriteString("  " + tui.LinkStyle.Render(project.Link().Href) + "\n")
		}
		if project.Description != "" {
			b.WriteString("  " + tui.DescStyle.Render(project.Description) + "\n")
		}
	}

	b.WriteString(renderNav(page.Number, page.TotalPages(), page.Total, page.ShowNav(), page.HasPrevious(), page.HasNext()))
	return b.String()
}

func renderNav(number, pages, total int, show, previous, next bool) string {
	summary := fmt.Sprintf("%d total", total)
	if !show {
		return tui.HelpStyle.Render(summary) + "\n"
	}

	parts := []string{fmt.Sprintf("page %d of %d, %s", number, pages, summary)}
	if previous {
		parts = append(parts, fmt.Sprintf("previous: --page %d", number-1))
	}
	if next {
		parts = append(parts, fmt.Sprintf("next: --page %d", number+1))
	}
	return tui.HelpStyle.Render(strings.Join(parts, " | ")) + "\n"
}

func renderPostDetail(detail *content.PostDetail) string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render(detail.Metadata.Title))
	b.WriteString("\n")
	b.WriteString(tui.SubtleStyle.Render(fmt.Sprintf("%s (%s)", detail.Date, detail.Metadata.PublishedAt)))
	b.WriteString("\n")
	if detail.Metadata.Description != "" {
		b.WriteString(tui.DescStyle.Render(detail.Metadata.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(detail.Body)
	b.WriteString("\n\n")

	if detail.Previous != nil {
		b.WriteString(fmt.Sprintf("← %s %s\n", detail.Previous.Title, tui.LinkStyle.Render(detail.Previous.Href)))
	}
	if detail.Next != nil {
		b.WriteString(fmt.Sprintf("→ %s %s\n", detail.Next.Title, tui.LinkStyle.Render(detail.Next.Href)))
	}

	return b.String()
}
