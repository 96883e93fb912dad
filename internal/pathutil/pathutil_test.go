package pathutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	scriberrors "stackit.dev/scribe/internal/errors"
	"stackit.dev/scribe/internal/pathutil"
)

func TestNormalize(t *testing.T) {
	t.Run("strips leading separators", func(t *testing.T) {
		got, err := pathutil.Normalize("//a/b")
		require.NoError(t, err)
		require.Equal(t, "a/b", got)

		got, err = pathutil.Normalize("/docs/readme.md")
		require.NoError(t, err)
		require.Equal(t, "docs/readme.md", got)
	})

	t.Run("collapses dot segments", func(t *testing.T) {
		got, err := pathutil.Normalize("a/./b/../c")
		require.NoError(t, err)
		require.Equal(t, "a/c", got)

		got, err = pathutil.Normalize("a//b/")
		require.NoError(t, err)
		require.Equal(t, "a/b", got)
	})

	t.Run("is idempotent", func(t *testing.T) {
		inputs := []string{"//a/b", "a/./b/../c", "/x", "deep/nested/file.txt"}
		for _, in := range inputs {
			once, err := pathutil.Normalize(in)
			require.NoError(t, err)

			twice, err := pathutil.Normalize(once)
			require.NoError(t, err)
			require.Equal(t, once, twice, "input %q", in)
		}
	})

	t.Run("rejects escapes above the root", func(t *testing.T) {
		for _, in := range []string{"../x", "a/../../x", "..", "/.."} {
			_, err := pathutil.Normalize(in)
			require.ErrorIs(t, err, scriberrors.ErrInvalidPath, "input %q", in)
		}
	})

	t.Run("rejects empty and root paths", func(t *testing.T) {
		for _, in := range []string{"", "/", ".", "a/.."} {
			_, err := pathutil.Normalize(in)
			require.ErrorIs(t, err, scriberrors.ErrInvalidPath, "input %q", in)
		}
	})

	t.Run("rejects paths inside .git", func(t *testing.T) {
		for _, in := range []string{".git", ".git/config", "/.git/HEAD"} {
			_, err := pathutil.Normalize(in)
			require.ErrorIs(t, err, scriberrors.ErrInvalidPath, "input %q", in)
		}

		// but .gitignore and similar names are fine
		got, err := pathutil.Normalize(".gitignore")
		require.NoError(t, err)
		require.Equal(t, ".gitignore", got)
	})
}
