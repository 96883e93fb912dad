package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newCreateCmd creates the create command
func newCreateCmd(app *app) *cobra.Command {
	var (
		commit  commitFlags
		content contentFlags
	)

	cmd := &cobra.Command{
		Use:   "create <path>",
		Short: "Commit a new file to a branch",
		Long: `Commit a new file to a branch. Fails if a file or directory already
occupies the path.`,
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
			req.Content, req.Encoding, err = content.bytes(cmd)
			if err != nil {
				return err
			}

			id, err := sess.committer.CreateFile(req)
			if err != nil {
				return err
			}

			sess.log.ForOperation("create").Info("commit created",
				zap.String("commit", id.String()),
				zap.String("path", args[0]))
			fmt.Println(id.String())
			return nil
		},
	}

	addCommitFlags(cmd, &commit)
	addContentFlags(cmd, &content)
	return cmd
}
