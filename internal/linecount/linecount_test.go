package linecount_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"stackit.dev/scribe/internal/linecount"
)

func TestCountBytes(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"single line with newline", "hello\n", 1},
		{"single line without newline", "hello", 1},
		{"multiple lines", "a\nb\nc\n", 3},
		{"trailing line without newline", "a\nb\nc", 3},
		{"blank lines count", "\n\n\n", 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, linecount.CountBytes([]byte(tc.input)))
		})
	}
}

func TestCount(t *testing.T) {
	got, err := linecount.Count(strings.NewReader("a\nb\nc"))
	require.NoError(t, err)
	require.Equal(t, 3, got)

	got, err = linecount.Count(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, 0, got)

	// larger than one read buffer
	big := strings.Repeat("line\n", 20000)
	got, err = linecount.Count(strings.NewReader(big))
	require.NoError(t, err)
	require.Equal(t, 20000, got)
}
