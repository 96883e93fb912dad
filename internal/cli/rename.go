package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newRenameCmd creates the rename command
func newRenameCmd(app *app) *cobra.Command {
	var commit commitFlags

	cmd := &cobra.Command{
		Use:   "rename <old-path> <new-path>",
		Short: "Commit a file move, carrying its content over",
		Args:  cobra.ExactArgs(2),
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
			req.PreviousPath = args[0]
			req.Path = args[1]

			id, err := sess.committer.RenameFile(req)
			if err != nil {
				return err
			}

			sess.log.ForOperation("rename").Info("commit created",
				zap.String("commit", id.String()),
				zap.String("from", args[0]),
				zap.String("to", args[1]))
			fmt.Println(id.String())
			return nil
		},
	}

	addCommitFlags(cmd, &commit)
	return cmd
}
