package committer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	scriberrors "stackit.dev/scribe/internal/errors"
)

func TestQualifyBranch(t *testing.T) {
	require.Equal(t, "refs/heads/main", QualifyBranch("main"))
	require.Equal(t, "refs/heads/main", QualifyBranch("refs/heads/main"))
	require.Equal(t, "refs/tags/v1", QualifyBranch("refs/tags/v1"))
	require.Equal(t, "main", ShortBranch("refs/heads/main"))
}

func TestParseAction(t *testing.T) {
	for _, s := range []string{"create", "update", "remove", "rename", "mkdir"} {
		action, err := ParseAction(s)
		require.NoError(t, err)
		require.Equal(t, Action(s), action)
	}

	_, err := ParseAction("merge")
	require.Error(t, err)
}

func TestWithDefaults(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	change := Change{Action: ActionCreate, Path: "a.txt"}

	t.Run("fills branch, timestamps and committer", func(t *testing.T) {
		in := Request{
			Changes: []Change{change},
			Author:  Identity{Name: "Alice", Email: "alice@example.com"},
			Message: "msg",
		}

		out, err := in.withDefaults(now, "trunk")
		require.NoError(t, err)
		require.Equal(t, "refs/heads/trunk", out.Branch)
		require.Equal(t, now, out.Author.When)
		require.Equal(t, out.Author, out.Committer)
		require.Equal(t, "msg\n", out.Message)

		// the input request is left untouched
		require.Empty(t, in.Branch)
		require.True(t, in.Author.When.IsZero())
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		when := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
		in := Request{
			Changes:   []Change{change},
			Author:    Identity{Name: "Alice", Email: "a@example.com", When: when},
			Committer: Identity{Name: "Bob", Email: "b@example.com"},
			Branch:    "refs/heads/topic",
			Message:   "already terminated\n",
		}

		out, err := in.withDefaults(now, "main")
		require.NoError(t, err)
		require.Equal(t, "refs/heads/topic", out.Branch)
		require.Equal(t, when, out.Author.When)
		require.Equal(t, "Bob", out.Committer.Name)
		require.Equal(t, now, out.Committer.When)
		require.Equal(t, "already terminated\n", out.Message)
	})

	t.Run("rejects an empty batch", func(t *testing.T) {
		_, err := Request{Message: "msg"}.withDefaults(now, "main")
		require.ErrorIs(t, err, scriberrors.ErrEmptyBatch)
	})
}

func TestDecodedContent(t *testing.T) {
	decoded, err := Change{Content: []byte("aGk="), Encoding: EncodingBase64}.decodedContent()
	require.NoError(t, err)
	require.Equal(t, []byte("hi"), decoded)

	decoded, err = Change{Content: []byte("plain"), Encoding: EncodingText}.decodedContent()
	require.NoError(t, err)
	require.Equal(t, []byte("plain"), decoded)

	decoded, err = Change{}.decodedContent()
	require.NoError(t, err)
	require.Nil(t, decoded)

	_, err = Change{Content: []byte("x"), Encoding: "hex"}.decodedContent()
	require.Error(t, err)
}
