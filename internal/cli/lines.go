package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"stackit.dev/scribe/internal/committer"
	"stackit.dev/scribe/internal/linecount"
	"stackit.dev/scribe/internal/pathutil"
)

// newLinesCmd creates the lines command
func newLinesCmd(app *app) *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "lines <path>",
		Short: "Count the lines of a file at a branch tip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := app.openStore()
			if err != nil {
				return err
			}

			path, err := pathutil.Normalize(args[0])
			if err != nil {
				return err
			}

			if branch == "" {
				branch = cfg.Branch()
			}
			tip, err := store.ResolveBranch(committer.QualifyBranch(branch))
			if err != nil {
				return err
			}

			content, err := store.ReadBlob(tip, path)
			if err != nil {
				return err
			}

			fmt.Println(linecount.CountBytes(content))
			return nil
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Branch to read from (defaults to the configured default branch)")
	return cmd
}
