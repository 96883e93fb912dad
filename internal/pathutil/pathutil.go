// Package pathutil normalizes user-supplied repository paths.
package pathutil

import (
	"path"
	"strings"

	scriberrors "stackit.dev/scribe/internal/errors"
)

// Normalize canonicalizes a user-supplied path relative to the repository
// root. Leading separators are stripped and "." / ".." segments are collapsed
// by pure segment arithmetic, never by touching the file system. The result
// is rejected if it would climb above the root, resolve to the root itself,
// or land inside the .git directory.
//
// Normalize is idempotent: feeding its output back in returns it unchanged.
func Normalize(p string) (string, error) {
	trimmed := strings.TrimLeft(p, "/")
	cleaned := path.Clean(trimmed)

	if cleaned == "." || cleaned == "" {
		return "", scriberrors.NewInvalidPathError(p, "resolves to the repository root")
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", scriberrors.NewInvalidPathError(p, "escapes the repository root")
	}
	if cleaned == ".git" || strings.HasPrefix(cleaned, ".git/") {
		return "", scriberrors.NewInvalidPathError(p, "inside the .git directory")
	}

	return cleaned, nil
}
