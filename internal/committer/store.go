package committer

import "github.com/go-git/go-git/v5/plumbing"

// Store is the boundary to the underlying content-addressable object store.
// internal/gitstore provides the go-git implementation.
type Store interface {
	// Empty reports whether the repository has no branches yet
	Empty() (bool, error)

	// ResolveBranch returns the commit a fully-qualified ref currently
	// points at. Fails with a BranchNotFoundError if the ref does not exist.
	ResolveBranch(refName string) (plumbing.Hash, error)

	// TreeBuilder returns a builder seeded from the tree of the given base
	// commit, or from an empty tree when base is the zero hash
	TreeBuilder(base plumbing.Hash) (TreeBuilder, error)

	// ReadBlob returns the content of the blob at path in the tree of the
	// given commit. Fails with a PathMissingError if there is no blob there.
	ReadBlob(commit plumbing.Hash, path string) ([]byte, error)

	// CreateCommit writes a commit object referencing the given tree and
	// parents and returns its hash
	CreateCommit(tree plumbing.Hash, parents []plumbing.Hash, author, committer Identity, message string) (plumbing.Hash, error)

	// CompareAndSetRef points refName at newHash, but only if the ref still
	// points at oldHash. A zero oldHash means the ref is expected to be new.
	CompareAndSetRef(refName string, oldHash, newHash plumbing.Hash) error
}

// TreeBuilder stages file operations on top of a base tree and materializes
// them into a new immutable tree. Nothing is written to the object store
// until Flush; a builder that returned an error must be discarded.
type TreeBuilder interface {
	// Create stages a new blob at path. Fails with a PathConflictError if a
	// file or directory already occupies the path.
	Create(path string, content []byte) error

	// Update stages an in-place content replacement at path. A nil content
	// keeps the existing blob. Fails with a PathMissingError if the path
	// does not exist.
	Update(path string, content []byte) error

	// Move deletes previousPath and stages content at path. A nil content
	// carries the staged blob over from previousPath.
	Move(path, previousPath string, content []byte) error

	// Delete stages removal of the blob at path
	Delete(path string) error

	// MakeDirectory stages a placeholder entry so the directory at path
	// exists even with no other files in it
	MakeDirectory(path string) error

	// Flush writes all staged blobs and the resulting trees to the object
	// store and returns the root tree hash
	Flush() (plumbing.Hash, error)
}
