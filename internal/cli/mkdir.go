package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newMkdirCmd creates the mkdir command
func newMkdirCmd(app *app) *cobra.Command {
	var commit commitFlags

	cmd := &cobra.Command{
		Use:   "mkdir <path>",
		Short: "Commit an empty directory",
		Long: `Commit an empty directory. Git trees cannot hold empty directories, so a
.gitkeep placeholder file is created inside it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.newSession()
			if err != nil {
				return err
			}
			defer sess.close()

			req, err := commit.fileRequest(sess.cfg)
			if err != nil {
				return err
			}
			req.Path = args[0]

			id, err := sess.committer.MakeDirectory(req)
			if err != nil {
				return err
			}

			sess.log.ForOperation("mkdir").Info("commit created",
				zap.String("commit", id.String()),
				zap.String("path", args[0]))
			fmt.Println(id.String())
			return nil
		},
	}

	addCommitFlags(cmd, &commit)
	return cmd
}
