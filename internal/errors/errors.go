// Package errors provides sentinel errors and custom error types for the scribe application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrInvalidPath indicates that a path could not be normalized into the repository
	ErrInvalidPath = errors.New("invalid path")

	// ErrHeadChanged indicates that the branch tip moved since the caller read it
	ErrHeadChanged = errors.New("branch head changed")

	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrPathConflict indicates that a staged change collides with existing tree content
	ErrPathConflict = errors.New("path conflict")

	// ErrPathMissing indicates that a staged change targets a path not present in the tree
	ErrPathMissing = errors.New("path missing")

	// ErrEmptyBatch indicates a commit request with no file changes
	ErrEmptyBatch = errors.New("no file changes in request")
)

// InvalidPathError represents an error when a user-supplied path cannot be
// normalized to a path inside the repository root
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Path, e.Reason)
}

// Is returns true if the target error is ErrInvalidPath
func (e *InvalidPathError) Is(target error) bool {
	return target == ErrInvalidPath
}

// NewInvalidPathError creates a new InvalidPathError
func NewInvalidPathError(path string, reason string) *InvalidPathError {
	return &InvalidPathError{Path: path, Reason: reason}
}

// HeadChangedError represents a failed optimistic-concurrency check: the
// branch tip no longer matches what the caller expected. Request carries the
// original request value so the caller can inspect what it attempted and
// retry with fresh expectations.
type HeadChangedError struct {
	Branch   string
	Expected string
	Actual   string
	Request  any
}

func (e *HeadChangedError) Error() string {
	return fmt.Sprintf("head of branch %s changed: expected %s, found %s", e.Branch, e.Expected, e.Actual)
}

// Is returns true if the target error is ErrHeadChanged
func (e *HeadChangedError) Is(target error) bool {
	return target == ErrHeadChanged
}

// NewHeadChangedError creates a new HeadChangedError
func NewHeadChangedError(branch, expected, actual string, request any) *HeadChangedError {
	return &HeadChangedError{
		Branch:   branch,
		Expected: expected,
		Actual:   actual,
		Request:  request,
	}
}

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %s does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// PathConflictError represents an error when a staged change collides with
// content already present in the tree, such as creating a file where one
// already exists or creating a file underneath another file
type PathConflictError struct {
	Path   string
	Reason string
}

func (e *PathConflictError) Error() string {
	return fmt.Sprintf("path %q conflicts with existing content: %s", e.Path, e.Reason)
}

// Is returns true if the target error is ErrPathConflict
func (e *PathConflictError) Is(target error) bool {
	return target == ErrPathConflict
}

// NewPathConflictError creates a new PathConflictError
func NewPathConflictError(path string, reason string) *PathConflictError {
	return &PathConflictError{Path: path, Reason: reason}
}

// PathMissingError represents an error when a staged change targets a path
// that does not exist in the tree, such as removing or updating a missing file
type PathMissingError struct {
	Path string
}

func (e *PathMissingError) Error() string {
	return fmt.Sprintf("path %q does not exist in the tree", e.Path)
}

// Is returns true if the target error is ErrPathMissing
func (e *PathMissingError) Is(target error) bool {
	return target == ErrPathMissing
}

// NewPathMissingError creates a new PathMissingError
func NewPathMissingError(path string) *PathMissingError {
	return &PathMissingError{Path: path}
}
