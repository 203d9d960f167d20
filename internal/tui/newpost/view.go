package newpost

import (
	"fmt"
	"strings"

	"github.com/melvinotieno/site/internal/blog"
	"github.com/melvinotieno/site/internal/tui"
)

// RenderSuccess renders a summary after a post file was created.
func RenderSuccess(path string, draft blog.Draft) string {
	var b strings.Builder

	b.WriteString(tui.SuccessStyle.Render("✓ Post Created"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("File:      %s\n", path))
	b.WriteString(fmt.Sprintf("Title:     %s\n", draft.Title))
	b.WriteString(fmt.Sprintf("Published: %s\n", draft.PublishedAt))

	return b.String()
}
