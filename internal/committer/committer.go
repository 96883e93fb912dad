// Package committer builds commits from declarative batches of file changes.
//
// A Committer takes a Request (an ordered batch of create/update/remove/
// rename/mkdir changes plus commit metadata), replays it onto a tree builder
// seeded from the target branch tip, and writes one new commit, optionally
// advancing the branch reference with a compare-and-set update.
//
// The Committer is stateless and reentrant, but the pipeline is a
// read-modify-write sequence against the branch reference and is not
// serialized internally. Callers must hold a per-repository lock around
// commit-producing operations; ExpectedHead gives a cooperative conflict
// signal on top of that, not a substitute for it.
package committer

import (
	"fmt"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
)

// Committer orchestrates batch commits against a Store
type Committer struct {
	store         Store
	defaultBranch string
	clock         func() time.Time
}

// Options configures a Committer
type Options struct {
	// DefaultBranch is used when a request names no branch. Defaults to "main".
	DefaultBranch string

	// Clock supplies timestamps for unset identity times. Defaults to time.Now.
	Clock func() time.Time
}

// New creates a Committer with default options
func New(store Store) *Committer {
	return NewWithOptions(store, Options{})
}

// NewWithOptions creates a Committer with the given options
func NewWithOptions(store Store, opts Options) *Committer {
	if opts.DefaultBranch == "" {
		opts.DefaultBranch = DefaultBranch
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Committer{
		store:         store,
		defaultBranch: opts.DefaultBranch,
		clock:         opts.Clock,
	}
}

// Commit applies the request's changes on top of the branch tip and returns
// the new commit hash.
//
// In an empty repository the base tree is empty and the commit has no
// parents. Otherwise the branch must already exist and the new commit's
// single parent is its current tip. Every failure aborts before the ref
// update; staged builder state is discarded, never flushed.
func (c *Committer) Commit(req Request) (plumbing.Hash, error) {
	full, err := req.withDefaults(c.clock(), c.defaultBranch)
	if err != nil {
		return plumbing.ZeroHash, err
	}

	if err := c.checkExpectedHead(full); err != nil {
		return plumbing.ZeroHash, err
	}

	empty, err := c.store.Empty()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to inspect repository: %w", err)
	}

	var base plumbing.Hash
	var parents []plumbing.Hash
	if !empty {
		tip, err := c.store.ResolveBranch(full.Branch)
		if err != nil {
			return plumbing.ZeroHash, err
		}
		base = tip
		parents = []plumbing.Hash{tip}
	}

	builder, err := c.store.TreeBuilder(base)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to seed tree builder: %w", err)
	}

	if err := planChanges(builder, c.store, base, full.Changes); err != nil {
		return plumbing.ZeroHash, err
	}

	tree, err := builder.Flush()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to write tree: %w", err)
	}

	commit, err := c.store.CreateCommit(tree, parents, full.Author, full.Committer, full.Message)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to create commit: %w", err)
	}

	if !full.SkipRefUpdate {
		if err := c.store.CompareAndSetRef(full.Branch, base, commit); err != nil {
			return plumbing.ZeroHash, fmt.Errorf("failed to advance %s: %w", full.Branch, err)
		}
	}

	return commit, nil
}

// CreateFile commits a single new file
func (c *Committer) CreateFile(req FileRequest) (plumbing.Hash, error) {
	return c.Commit(req.toRequest(ActionCreate))
}

// UpdateFile commits a content replacement for a single file. If
// PreviousPath is set and differs from Path the file is moved as well.
func (c *Committer) UpdateFile(req FileRequest) (plumbing.Hash, error) {
	return c.Commit(req.toRequest(ActionUpdate))
}

// RemoveFile commits the removal of a single file
func (c *Committer) RemoveFile(req FileRequest) (plumbing.Hash, error) {
	return c.Commit(req.toRequest(ActionRemove))
}

// RenameFile commits a move of PreviousPath to Path. Content is carried over
// from the branch tip unless the request supplies new content.
func (c *Committer) RenameFile(req FileRequest) (plumbing.Hash, error) {
	return c.Commit(req.toRequest(ActionRename))
}

// MakeDirectory commits a placeholder entry so the directory at Path exists
func (c *Committer) MakeDirectory(req FileRequest) (plumbing.Hash, error) {
	return c.Commit(req.toRequest(ActionMakeDirectory))
}
