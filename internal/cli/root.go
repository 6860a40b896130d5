package cli

import (
	"github.com/Brutus5000/faf-replay/internal/version"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCommand().Execute()
}

func newRootCommand() *cobra.Command {
	opts := &watchOptions{}
	cmd := &cobra.Command{
		Use:           "faf-replay",
		Short:         "A replay launcher for FAForever",
		Version:       version.String(),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.executable, "executable", "e", "", "path to the ForgedAlliance.exe")
	cmd.Flags().StringVarP(&opts.localFile, "local-file", "f", "", "path to the replay file you want to watch")
	cmd.Flags().StringVarP(&opts.wrapper, "wrapper", "w", "", "path to the wrapper script (usually for Linux)")
	cmd.Flags().Int64Var(&opts.replayID, "replay-id", 0, "override the replay id passed to the game")
	cmd.Flags().BoolP("version", "V", false, "print the version and exit")

	cmd.AddCommand(
		newInfoCommand(),
		newInitCommand(),
		newVersionCommand(),
	)

	return cmd
}
