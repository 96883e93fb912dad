package committer

import (
	"errors"

	"github.com/go-git/go-git/v5/plumbing"

	scriberrors "stackit.dev/scribe/internal/errors"
)

// checkExpectedHead runs the optimistic-concurrency check for a defaulted
// request. A zero ExpectedHead means the caller opted out. Otherwise the
// branch's current tip must equal it exactly; a branch that does not exist
// counts as a zero tip. This narrows but does not close the race window;
// true exclusion is the caller's job (see internal/lock).
func (c *Committer) checkExpectedHead(req Request) error {
	if req.ExpectedHead.IsZero() {
		return nil
	}

	actual, err := c.store.ResolveBranch(req.Branch)
	if err != nil {
		if !errors.Is(err, scriberrors.ErrBranchNotFound) {
			return err
		}
		actual = plumbing.ZeroHash
	}

	if actual != req.ExpectedHead {
		return scriberrors.NewHeadChangedError(req.Branch, req.ExpectedHead.String(), actual.String(), req)
	}
	return nil
}
