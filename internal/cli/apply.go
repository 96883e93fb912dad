package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newApplyCmd creates the apply command
func newApplyCmd(app *app) *cobra.Command {
	var (
		commit    commitFlags
		batchPath string
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Commit a batch of file changes described by a YAML file",
		Long: `Commit a batch of file changes described by a YAML file. Changes apply in
order and the whole batch becomes one commit; if any change fails, nothing
is committed.

Batch file shape:

  message: update docs
  branch: main
  expect_head: 0a1b2c...        # optional
  changes:
    - action: create            # create | update | remove | rename | mkdir
      path: docs/readme.md
      content: "hello\n"
    - action: rename
      path: docs/intro.md
      from: docs/old.md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
				dir  string
			)
			if batchPath == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				dir = "."
			} else {
				data, err = os.ReadFile(batchPath)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", batchPath, err)
				}
				dir = filepath.Dir(batchPath)
			}

			sess, err := app.newSession()
			if err != nil {
				return err
			}
			defer sess.close()

			req, err := parseBatch(data, dir)
			if err != nil {
				return err
			}

			// command line flags override the batch file
			if commit.message != "" {
				req.Message = commit.message
			}
			if commit.branch != "" {
				req.Branch = commit.branch
			}
			if commit.expectHead != "" {
				req.ExpectedHead, err = commit.expectedHead()
				if err != nil {
					return err
				}
			}
			req.Author = commit.identity(sess.cfg)
			req.SkipRefUpdate = commit.noUpdateRef

			id, err := sess.committer.Commit(req)
			if err != nil {
				return err
			}

			sess.log.ForOperation("apply").Info("commit created",
				zap.String("commit", id.String()),
				zap.Int("changes", len(req.Changes)))
			fmt.Println(id.String())
			return nil
		},
	}

	addCommitFlags(cmd, &commit)
	cmd.Flags().StringVarP(&batchPath, "file", "f", "", "Batch file (- for stdin)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
