package cli

import (
	"fmt"

	"github.com/Brutus5000/faf-replay/internal/config"
	"github.com/spf13/cobra"
)

func newInitCommand() *cobra.Command {
	var (
		executable string
		wrapper    string
	)
	cmd := &cobra.Command{
		Use:          "init",
		Short:        "Write a config file so future launches can omit --executable",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, executable, wrapper)
		},
	}
	cmd.Flags().StringVarP(&executable, "executable", "e", "", "path to the ForgedAlliance.exe")
	cmd.Flags().StringVarP(&wrapper, "wrapper", "w", "", "path to the wrapper script")
	_ = cmd.MarkFlagRequired("executable")
	return cmd
}

func runInit(cmd *cobra.Command, executable, wrapper string) error {
	path := config.DefaultPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg.Executable = executable
	if wrapper != "" {
		cfg.Wrapper = wrapper
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
