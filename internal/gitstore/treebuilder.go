package gitstore

import (
	"fmt"
	gopath "path"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"

	"stackit.dev/scribe/internal/committer"
	scriberrors "stackit.dev/scribe/internal/errors"
)

// placeholderName is the file staged by MakeDirectory so an otherwise empty
// directory has a tree entry
const placeholderName = ".gitkeep"

// treeEntry is one file in the flat path index. Either hash refers to an
// existing blob, or staged is set and content holds bytes not yet written.
type treeEntry struct {
	hash    plumbing.Hash
	mode    filemode.FileMode
	staged  bool
	content []byte
}

// treeBuilder stages operations against a flat path→entry index seeded from
// a base tree. Validation happens at stage time; nothing touches the object
// store until Flush. A builder that returned an error must be discarded.
type treeBuilder struct {
	store   *Store
	entries map[string]treeEntry
}

var _ committer.TreeBuilder = (*treeBuilder)(nil)

// TreeBuilder returns a builder seeded from the tree of the base commit, or
// from an empty tree when base is the zero hash
func (s *Store) TreeBuilder(base plumbing.Hash) (committer.TreeBuilder, error) {
	entries := make(map[string]treeEntry)

	if !base.IsZero() {
		obj, err := s.repo.CommitObject(base)
		if err != nil {
			return nil, fmt.Errorf("failed to get base commit %s: %w", base, err)
		}
		flat, err := s.flattenedTree(obj.TreeHash)
		if err != nil {
			return nil, err
		}
		// the cached map is shared, the builder mutates its own copy
		for path, entry := range flat {
			entries[path] = entry
		}
	}

	return &treeBuilder{store: s, entries: entries}, nil
}

// flattenedTree returns the path→entry index for a tree, cached per hash
func (s *Store) flattenedTree(tree plumbing.Hash) (map[string]treeEntry, error) {
	if cached, ok := s.trees.Get(tree); ok {
		return cached, nil
	}

	obj, err := object.GetTree(s.repo.Storer, tree)
	if err != nil {
		return nil, fmt.Errorf("failed to get tree %s: %w", tree, err)
	}

	flat := make(map[string]treeEntry)
	err = obj.Files().ForEach(func(f *object.File) error {
		flat[f.Name] = treeEntry{hash: f.Blob.Hash, mode: f.Mode}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk tree %s: %w", tree, err)
	}

	s.trees.Add(tree, flat)
	return flat, nil
}

func (b *treeBuilder) exists(path string) bool {
	_, ok := b.entries[path]
	return ok
}

// directoryExists reports whether any file lives underneath path
func (b *treeBuilder) directoryExists(path string) bool {
	prefix := path + "/"
	for p := range b.entries {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// blockingAncestor returns the nearest proper ancestor of path that exists
// as a file, if any
func (b *treeBuilder) blockingAncestor(path string) (string, bool) {
	for dir := gopath.Dir(path); dir != "."; dir = gopath.Dir(dir) {
		if b.exists(dir) {
			return dir, true
		}
	}
	return "", false
}

// checkVacant fails unless path can take a new file entry
func (b *treeBuilder) checkVacant(path string) error {
	if b.exists(path) {
		return scriberrors.NewPathConflictError(path, "a file already exists at this path")
	}
	if b.directoryExists(path) {
		return scriberrors.NewPathConflictError(path, "a directory already exists at this path")
	}
	if dir, ok := b.blockingAncestor(path); ok {
		return scriberrors.NewPathConflictError(path, fmt.Sprintf("ancestor %q is a file", dir))
	}
	return nil
}

func (b *treeBuilder) Create(path string, content []byte) error {
	if err := b.checkVacant(path); err != nil {
		return err
	}
	b.entries[path] = treeEntry{mode: filemode.Regular, staged: true, content: content}
	return nil
}

func (b *treeBuilder) Update(path string, content []byte) error {
	entry, ok := b.entries[path]
	if !ok {
		if b.directoryExists(path) {
			return scriberrors.NewPathConflictError(path, "path is a directory")
		}
		return scriberrors.NewPathMissingError(path)
	}
	if content == nil {
		// nothing to replace, keep the existing blob
		return nil
	}
	entry.hash = plumbing.ZeroHash
	entry.staged = true
	entry.content = content
	b.entries[path] = entry
	return nil
}

func (b *treeBuilder) Move(path, previousPath string, content []byte) error {
	previous, ok := b.entries[previousPath]
	if !ok {
		return scriberrors.NewPathMissingError(previousPath)
	}
	if path == previousPath {
		return b.Update(path, content)
	}

	delete(b.entries, previousPath)
	if err := b.checkVacant(path); err != nil {
		return err
	}

	entry := treeEntry{mode: previous.mode}
	if content == nil {
		entry.hash = previous.hash
		entry.staged = previous.staged
		entry.content = previous.content
	} else {
		entry.staged = true
		entry.content = content
	}
	b.entries[path] = entry
	return nil
}

func (b *treeBuilder) Delete(path string) error {
	if !b.exists(path) {
		return scriberrors.NewPathMissingError(path)
	}
	delete(b.entries, path)
	return nil
}

func (b *treeBuilder) MakeDirectory(path string) error {
	if err := b.checkVacant(path); err != nil {
		return err
	}
	b.entries[gopath.Join(path, placeholderName)] = treeEntry{mode: filemode.Regular, staged: true}
	return nil
}

// Flush writes all staged blobs, then the nested trees bottom-up, and
// returns the root tree hash
func (b *treeBuilder) Flush() (plumbing.Hash, error) {
	for path, entry := range b.entries {
		if !entry.staged {
			continue
		}
		hash, err := b.store.writeBlob(entry.content)
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("failed to write blob for %q: %w", path, err)
		}
		entry.hash = hash
		entry.staged = false
		entry.content = nil
		b.entries[path] = entry
	}
	return b.store.writeTree(b.entries)
}

// treeNode is one directory level of the nested tree under construction
type treeNode struct {
	files    map[string]treeEntry
	children map[string]*treeNode
}

func newTreeNode() *treeNode {
	return &treeNode{
		files:    make(map[string]treeEntry),
		children: make(map[string]*treeNode),
	}
}

func (n *treeNode) insert(segments []string, entry treeEntry) {
	if len(segments) == 1 {
		n.files[segments[0]] = entry
		return
	}
	child, ok := n.children[segments[0]]
	if !ok {
		child = newTreeNode()
		n.children[segments[0]] = child
	}
	child.insert(segments[1:], entry)
}

// writeTree materializes the flat index as nested tree objects
func (s *Store) writeTree(files map[string]treeEntry) (plumbing.Hash, error) {
	root := newTreeNode()
	for path, entry := range files {
		root.insert(strings.Split(path, "/"), entry)
	}
	return s.writeTreeNode(root)
}

func (s *Store) writeTreeNode(node *treeNode) (plumbing.Hash, error) {
	entries := make([]object.TreeEntry, 0, len(node.files)+len(node.children))

	for name, file := range node.files {
		entries = append(entries, object.TreeEntry{Name: name, Mode: file.mode, Hash: file.hash})
	}
	for name, child := range node.children {
		hash, err := s.writeTreeNode(child)
		if err != nil {
			return plumbing.ZeroHash, err
		}
		entries = append(entries, object.TreeEntry{Name: name, Mode: filemode.Dir, Hash: hash})
	}

	sortTreeEntries(entries)

	tree := &object.Tree{Entries: entries}
	obj := s.repo.Storer.NewEncodedObject()
	if err := tree.Encode(obj); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to encode tree: %w", err)
	}

	hash, err := s.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to write tree: %w", err)
	}
	return hash, nil
}

// sortTreeEntries orders entries the way git hashes trees: byte order, with
// directory names compared as if they had a trailing slash
func sortTreeEntries(entries []object.TreeEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return treeEntrySortName(entries[i]) < treeEntrySortName(entries[j])
	})
}

func treeEntrySortName(entry object.TreeEntry) string {
	if entry.Mode == filemode.Dir {
		return entry.Name + "/"
	}
	return entry.Name
}
