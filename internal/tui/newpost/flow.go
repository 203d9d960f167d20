package newpost

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/melvinotieno/site/internal/blog"
	"github.com/melvinotieno/site/internal/tui"
)

// Flow collects the header of a new post with a huh form.
type Flow struct {
	theme *huh.Theme
	today string
}

// NewFlow constructs a Flow whose date field defaults to today.
func NewFlow(today time.Time) *Flow {
	return &Flow{
		theme: tui.NewHuhTheme(),
		today: today.Format(time.DateOnly),
	}
}

// Run shows the form prefilled with draft; returns nil on user abort.
func (f *Flow) Run(draft blog.Draft) (*blog.Draft, error) {
	if draft.PublishedAt == "" {
		draft.PublishedAt = f.today
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&draft.Title).
				Validate(required("title")),
			huh.NewInput().
				Title("Publish date").
				Description("YYYY-MM-DD; posts dated in the future stay hidden until then.").
				Value(&draft.PublishedAt).
				Validate(validDate),
			huh.NewText().
				Title("Description").
				Lines(3).
				Value(&draft.Description),
			huh.NewInput().
				Title("Keywords").
				Placeholder("go, web, notes").
				Value(&draft.Keywords),
		).
			Title("New Post").
			Description("Describe the post. The body is written afterwards in your editor."),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	draft.Title = strings.TrimSpace(draft.Title)
	return &draft, nil
}

func required(field string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

func validDate(v string) error {
	if _, err := time.Parse(time.DateOnly, strings.TrimSpace(v)); err != nil {
		return fmt.Errorf("date must look like 2006-01-02")
	}
	return nil
}
