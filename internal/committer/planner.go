package committer

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"

	scriberrors "stackit.dev/scribe/internal/errors"
	"stackit.dev/scribe/internal/pathutil"
)

// planChanges replays the batch onto the tree builder in input order, so
// later changes see the effects of earlier ones. The first failure aborts
// the remainder; the builder is never flushed after an error.
func planChanges(builder TreeBuilder, store Store, base plumbing.Hash, changes []Change) error {
	for i, change := range changes {
		if err := applyChange(builder, store, base, change); err != nil {
			return fmt.Errorf("change %d (%s %s): %w", i, change.Action, change.Path, err)
		}
	}
	return nil
}

// applyChange dispatches one change onto the builder.
//
// Rename and update-with-move inherit omitted content by reading the blob at
// PreviousPath from the base tree, not from changes staged earlier in the
// same batch. Two changes in one batch that feed each other's output will
// therefore see pre-batch content.
func applyChange(builder TreeBuilder, store Store, base plumbing.Hash, change Change) error {
	path, err := pathutil.Normalize(change.Path)
	if err != nil {
		return err
	}

	switch change.Action {
	case ActionCreate:
		content, err := change.decodedContent()
		if err != nil {
			return err
		}
		return builder.Create(path, content)

	case ActionUpdate:
		content, err := change.decodedContent()
		if err != nil {
			return err
		}
		if change.PreviousPath != "" {
			previous, err := pathutil.Normalize(change.PreviousPath)
			if err != nil {
				return err
			}
			if previous != path {
				if content == nil {
					content, err = store.ReadBlob(base, previous)
					if err != nil {
						return err
					}
				}
				return builder.Move(path, previous, content)
			}
		}
		return builder.Update(path, content)

	case ActionRemove:
		return builder.Delete(path)

	case ActionRename:
		if change.PreviousPath == "" {
			return scriberrors.NewInvalidPathError(change.Path, "rename requires a previous path")
		}
		previous, err := pathutil.Normalize(change.PreviousPath)
		if err != nil {
			return err
		}
		content, err := change.decodedContent()
		if err != nil {
			return err
		}
		if content == nil {
			content, err = store.ReadBlob(base, previous)
			if err != nil {
				return err
			}
		}
		return builder.Move(path, previous, content)

	case ActionMakeDirectory:
		return builder.MakeDirectory(path)
	}

	return fmt.Errorf("unknown action %q", change.Action)
}
