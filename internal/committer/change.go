package committer

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
)

// Action identifies the kind of edit a Change applies. The set is closed;
// the planner rejects anything else.
type Action string

const (
	ActionCreate        Action = "create"
	ActionUpdate        Action = "update"
	ActionRemove        Action = "remove"
	ActionRename        Action = "rename"
	ActionMakeDirectory Action = "mkdir"
)

// ParseAction converts a string into an Action
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionCreate, ActionUpdate, ActionRemove, ActionRename, ActionMakeDirectory:
		return Action(s), nil
	}
	return "", fmt.Errorf("unknown action %q", s)
}

// Content encodings accepted in a Change
const (
	EncodingText   = "text"
	EncodingBase64 = "base64"
)

// Change is one file-level edit in a commit request. Path and PreviousPath
// are repository-relative; they are normalized by the planner before use.
//
// Content semantics: nil means "omitted" (rename and update-with-move inherit
// the blob at PreviousPath from the base tree; create stages an empty file),
// while an empty non-nil slice is an explicit empty file. Remove and
// MakeDirectory ignore Content.
type Change struct {
	Action       Action
	Path         string
	PreviousPath string
	Content      []byte
	Encoding     string
}

// decodedContent returns the change content as raw bytes, applying the
// declared encoding. A nil Content stays nil so inheritance still applies.
func (c Change) decodedContent() ([]byte, error) {
	if c.Content == nil {
		return nil, nil
	}
	switch c.Encoding {
	case "", EncodingText:
		return c.Content, nil
	case EncodingBase64:
		decoded, err := base64.StdEncoding.DecodeString(string(c.Content))
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 content for %q: %w", c.Path, err)
		}
		return decoded, nil
	}
	return nil, fmt.Errorf("unknown content encoding %q for %q", c.Encoding, c.Path)
}

// Identity is the author or committer of a commit
type Identity struct {
	Name  string
	Email string
	When  time.Time
}

// Request describes a batch commit: an ordered sequence of file changes
// applied on top of a branch tip, producing one new commit.
//
// ExpectedHead enables optimistic concurrency checking: when non-zero, the
// commit fails with a HeadChangedError if the branch tip no longer equals it.
// The zero hash disables the check.
//
// SkipRefUpdate leaves the branch reference untouched; by default a
// successful commit advances the branch to the new commit.
type Request struct {
	Changes       []Change
	Author        Identity
	Committer     Identity
	Message       string
	Branch        string
	ExpectedHead  plumbing.Hash
	SkipRefUpdate bool
}

// FileRequest is the single-file variant of Request used by the convenience
// operations. It carries exactly one change plus the commit metadata.
type FileRequest struct {
	Path          string
	PreviousPath  string
	Content       []byte
	Encoding      string
	Message       string
	Branch        string
	Author        Identity
	Committer     Identity
	ExpectedHead  plumbing.Hash
	SkipRefUpdate bool
}

// toRequest reshapes the single-file request into a one-element batch.
// The convenience operations share the batch pipeline; they have no commit
// logic of their own.
func (r FileRequest) toRequest(action Action) Request {
	return Request{
		Changes: []Change{{
			Action:       action,
			Path:         r.Path,
			PreviousPath: r.PreviousPath,
			Content:      r.Content,
			Encoding:     r.Encoding,
		}},
		Author:        r.Author,
		Committer:     r.Committer,
		Message:       r.Message,
		Branch:        r.Branch,
		ExpectedHead:  r.ExpectedHead,
		SkipRefUpdate: r.SkipRefUpdate,
	}
}
