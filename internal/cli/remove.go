package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newRemoveCmd creates the remove command
func newRemoveCmd(app *app) *cobra.Command {
	var commit commitFlags

	cmd := &cobra.Command{
		Use:   "remove <path>",
		Short: "Commit the removal of a file",
		Args:  cobra.ExactArgs(1),
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

			id, err := sess.committer.RemoveFile(req)
			if err != nil {
				return err
			}

			sess.log.ForOperation("remove").Info("commit created",
				zap.String("commit", id.String()),
				zap.String("path", args[0]))
			fmt.Println(id.String())
			return nil
		},
	}

	addCommitFlags(cmd, &commit)
	return cmd
}
