package blog

import (
	"fmt"

	"github.com/melvinotieno/site/internal/models"
)

// Reason explains why a content file was left out of the listing.
type Reason string

const (
	// ReasonUnreadable means the file could not be read.
	ReasonUnreadable Reason = "unreadable"

	// ReasonNoHeader means the file has no header block.
	ReasonNoHeader Reason = "no-header"

	// ReasonInvalid means required metadata is missing or malformed.
	ReasonInvalid Reason = "invalid"

	// ReasonScheduled means the post is dated in the future. This is how
	// drafts are kept out of the listing and is not an error.
	ReasonScheduled Reason = "scheduled"
)

// Skip records why a file was excluded.
type Skip struct {
	Reason Reason
	Err    error
}

func (s *Skip) Error() string {
	return fmt.Sprintf("%s: %v", s.Reason, s.Err)
}

func (s *Skip) Unwrap() error {
	return s.Err
}

// Result is the outcome of loading one content file. Exactly one of Post and
// Skip is set.
type Result struct {
	Path string
	Slug string
	Post *models.Post
	Skip *Skip
}

// OK reports whether the file produced a listed post.
func (r Result) OK() bool {
	return r.Post != nil
}

// Failed reports whether the file was excluded because of broken content,
// as opposed to being scheduled or headerless.
func (r Result) Failed() bool {
	if r.Skip == nil {
		return false
	}
	return r.Skip.Reason == ReasonUnreadable || r.Skip.Reason == ReasonInvalid
}
