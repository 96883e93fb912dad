package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newUpdateCmd creates the update command
func newUpdateCmd(app *app) *cobra.Command {
	var (
		commit  commitFlags
		content contentFlags
		from    string
	)

	cmd := &cobra.Command{
		Use:   "update <path>",
		Short: "Commit a content replacement for an existing file",
		Long: `Commit a content replacement for an existing file. With --from the file
is moved from another path in the same commit; content omitted on a move is
carried over from the branch tip.`,
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
			req.PreviousPath = from
			req.Content, req.Encoding, err = content.bytes(cmd)
			if err != nil {
				return err
			}

			id, err := sess.committer.UpdateFile(req)
			if err != nil {
				return err
			}

			sess.log.ForOperation("update").Info("commit created",
				zap.String("commit", id.String()),
				zap.String("path", args[0]))
			fmt.Println(id.String())
			return nil
		},
	}

	addCommitFlags(cmd, &commit)
	addContentFlags(cmd, &content)
	cmd.Flags().StringVar(&from, "from", "", "Move the file from this path in the same commit")
	return cmd
}
