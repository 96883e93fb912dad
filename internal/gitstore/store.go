// Package gitstore implements the committer store boundary on top of go-git.
//
// All writes are plumbing-level: blobs, trees and commits are encoded
// straight into the repository's object storage, and branch updates go
// through the storer's conditional CheckAndSetReference. No worktree is
// touched, so bare and in-memory repositories work the same way.
package gitstore

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
	lru "github.com/hashicorp/golang-lru/v2"

	"stackit.dev/scribe/internal/committer"
	scriberrors "stackit.dev/scribe/internal/errors"
)

// flattenedTreeCacheSize bounds the per-store cache of flattened base trees
const flattenedTreeCacheSize = 32

// Store adapts a go-git repository to the committer.Store interface
type Store struct {
	repo  *git.Repository
	trees *lru.Cache[plumbing.Hash, map[string]treeEntry]
}

var _ committer.Store = (*Store)(nil)

// New wraps an already-open go-git repository
func New(repo *git.Repository) (*Store, error) {
	trees, err := lru.New[plumbing.Hash, map[string]treeEntry](flattenedTreeCacheSize)
	if err != nil {
		return nil, err
	}
	return &Store{repo: repo, trees: trees}, nil
}

// Open opens the repository at or above the given path
func Open(path string) (*Store, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	return New(repo)
}

// Init creates a new repository at the given path
func Init(path string, bare bool) (*Store, error) {
	repo, err := git.PlainInit(path, bare)
	if err != nil {
		return nil, fmt.Errorf("failed to init repository: %w", err)
	}
	return New(repo)
}

// NewInMemory creates a store backed by an in-memory bare repository
func NewInMemory() (*Store, error) {
	repo, err := git.Init(memory.NewStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to init in-memory repository: %w", err)
	}
	return New(repo)
}

// Repository exposes the underlying go-git repository for read access
func (s *Store) Repository() *git.Repository {
	return s.repo
}

// Empty reports whether the repository has no branches yet
func (s *Store) Empty() (bool, error) {
	branches, err := s.repo.Branches()
	if err != nil {
		return false, fmt.Errorf("failed to list branches: %w", err)
	}
	defer branches.Close()

	_, err = branches.Next()
	if err == io.EOF {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to list branches: %w", err)
	}
	return false, nil
}

// ResolveBranch returns the commit the fully-qualified ref points at
func (s *Store) ResolveBranch(refName string) (plumbing.Hash, error) {
	ref, err := s.repo.Reference(plumbing.ReferenceName(refName), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return plumbing.ZeroHash, scriberrors.NewBranchNotFoundError(refName)
		}
		return plumbing.ZeroHash, fmt.Errorf("failed to resolve %s: %w", refName, err)
	}
	return ref.Hash(), nil
}

// ReadBlob returns the content of the blob at path in the tree of commit
func (s *Store) ReadBlob(commit plumbing.Hash, path string) ([]byte, error) {
	if commit.IsZero() {
		return nil, scriberrors.NewPathMissingError(path)
	}

	obj, err := s.repo.CommitObject(commit)
	if err != nil {
		return nil, fmt.Errorf("failed to get commit %s: %w", commit, err)
	}

	tree, err := obj.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to get tree of %s: %w", commit, err)
	}

	file, err := tree.File(path)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, scriberrors.NewPathMissingError(path)
		}
		return nil, fmt.Errorf("failed to find %q: %w", path, err)
	}

	reader, err := file.Blob.Reader()
	if err != nil {
		return nil, fmt.Errorf("failed to read blob for %q: %w", path, err)
	}
	defer reader.Close()

	return io.ReadAll(reader)
}

// CreateCommit writes a commit object and returns its hash
func (s *Store) CreateCommit(tree plumbing.Hash, parents []plumbing.Hash, author, cmtr committer.Identity, message string) (plumbing.Hash, error) {
	commit := &object.Commit{
		Author:       object.Signature{Name: author.Name, Email: author.Email, When: author.When},
		Committer:    object.Signature{Name: cmtr.Name, Email: cmtr.Email, When: cmtr.When},
		Message:      message,
		TreeHash:     tree,
		ParentHashes: parents,
	}

	obj := s.repo.Storer.NewEncodedObject()
	if err := commit.Encode(obj); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to encode commit: %w", err)
	}

	hash, err := s.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to write commit: %w", err)
	}
	return hash, nil
}

// CompareAndSetRef points refName at newHash if it still points at oldHash.
// A zero oldHash sets the ref unconditionally, which the orchestrator only
// does for a branch that did not exist when the operation started.
func (s *Store) CompareAndSetRef(refName string, oldHash, newHash plumbing.Hash) error {
	name := plumbing.ReferenceName(refName)
	newRef := plumbing.NewHashReference(name, newHash)

	var oldRef *plumbing.Reference
	if !oldHash.IsZero() {
		oldRef = plumbing.NewHashReference(name, oldHash)
	}

	if err := s.repo.Storer.CheckAndSetReference(newRef, oldRef); err != nil {
		return fmt.Errorf("failed to update %s: %w", refName, err)
	}
	return nil
}

// writeBlob writes content as a blob object and returns its hash
func (s *Store) writeBlob(content []byte) (plumbing.Hash, error) {
	obj := s.repo.Storer.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)

	writer, err := obj.Writer()
	if err != nil {
		return plumbing.ZeroHash, err
	}
	if _, err := writer.Write(content); err != nil {
		writer.Close()
		return plumbing.ZeroHash, err
	}
	if err := writer.Close(); err != nil {
		return plumbing.ZeroHash, err
	}

	return s.repo.Storer.SetEncodedObject(obj)
}
