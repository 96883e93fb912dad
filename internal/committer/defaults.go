package committer

import (
	"strings"
	"time"

	scriberrors "stackit.dev/scribe/internal/errors"
)

// DefaultBranch is used when a request names no branch and no default is
// configured
const DefaultBranch = "main"

const branchRefPrefix = "refs/heads/"

// QualifyBranch rewrites a branch name to fully-qualified ref form.
// Names already under refs/ pass through unchanged.
func QualifyBranch(name string) string {
	if strings.HasPrefix(name, "refs/") {
		return name
	}
	return branchRefPrefix + name
}

// ShortBranch strips the refs/heads/ prefix for display
func ShortBranch(refName string) string {
	return strings.TrimPrefix(refName, branchRefPrefix)
}

// withDefaults returns a fully-specified copy of the request: timestamps
// filled from now, branch defaulted and qualified, committer falling back to
// the author, and the message terminated with a newline. The receiver is
// never mutated.
func (r Request) withDefaults(now time.Time, defaultBranch string) (Request, error) {
	if len(r.Changes) == 0 {
		return r, scriberrors.ErrEmptyBatch
	}

	if r.Branch == "" {
		r.Branch = defaultBranch
	}
	r.Branch = QualifyBranch(r.Branch)

	if r.Author.When.IsZero() {
		r.Author.When = now
	}
	if r.Committer.Name == "" && r.Committer.Email == "" {
		r.Committer = r.Author
	}
	if r.Committer.When.IsZero() {
		r.Committer.When = now
	}

	if r.Message != "" && !strings.HasSuffix(r.Message, "\n") {
		r.Message += "\n"
	}

	return r, nil
}
