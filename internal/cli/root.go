// Package cli implements the scribe command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"stackit.dev/scribe/internal/lock"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	app := &app{locks: lock.NewManager()}

	rootCmd := &cobra.Command{
		Use:   "scribe",
		Short: "Scribe commits batched file edits to a git repository",
		Long: `Scribe applies file-level edits (create, update, remove, rename, mkdir)
to a branch of a git repository and produces a commit for each operation,
without touching a worktree.

Batches are all-or-nothing: if any change fails, no commit is created and
the branch is left untouched. An expected head SHA can guard an operation
against the branch having moved since the caller last read it.`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&app.repoPath, "repo", ".", "Path to the git repository")
	rootCmd.PersistentFlags().StringVar(&app.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newInitCmd(app),
		newCreateCmd(app),
		newUpdateCmd(app),
		newRemoveCmd(app),
		newRenameCmd(app),
		newMkdirCmd(app),
		newApplyCmd(app),
		newLinesCmd(app),
	)

	return rootCmd
}
