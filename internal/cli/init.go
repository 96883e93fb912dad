package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"stackit.dev/scribe/internal/gitstore"
)

// newInitCmd creates the init command
func newInitCmd(app *app) *cobra.Command {
	var bare bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Create an empty git repository",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.repoPath
			if len(args) > 0 {
				path = args[0]
			}

			if _, err := gitstore.Init(path, bare); err != nil {
				return err
			}

			fmt.Printf("Initialized empty repository in %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&bare, "bare", false, "Create a bare repository")
	return cmd
}
