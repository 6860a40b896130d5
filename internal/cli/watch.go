package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Brutus5000/faf-replay/internal/config"
	"github.com/Brutus5000/faf-replay/internal/launcher"
	"github.com/Brutus5000/faf-replay/internal/replay"
	"github.com/spf13/cobra"
)

type watchOptions struct {
	executable string
	localFile  string
	wrapper    string
	replayID   int64
}

func runWatch(cmd *cobra.Command, opts *watchOptions) error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}

	executable := opts.executable
	if executable == "" {
		executable = cfg.Executable
	}
	wrapper := opts.wrapper
	if wrapper == "" {
		wrapper = cfg.Wrapper
	}

	// Missing required inputs still get the usage text; everything after
	// this point is a runtime failure, not a usage mistake.
	var missing []string
	if executable == "" {
		missing = append(missing, "--executable")
	}
	if opts.localFile == "" {
		missing = append(missing, "--local-file")
	}
	if len(missing) > 0 {
		return fmt.Errorf("required flag(s) %s not set", formatFlagList(missing))
	}
	cmd.SilenceUsage = true

	if _, err := os.Stat(executable); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("no executable found at %s", executable)
		}
		return err
	}

	source, err := replay.Prepare(opts.localFile)
	if err != nil {
		return err
	}

	replayID := opts.replayID
	if replayID == 0 {
		replayID = source.Metadata.ReplayID()
	}

	inv := launcher.Invocation{
		Executable: executable,
		Wrapper:    wrapper,
		Replay:     source.Path,
		ReplayID:   replayID,
		InitScript: cfg.Launch.InitScript,
		BugReport:  cfg.Launch.BugReport,
	}
	if err := launcher.Launch(inv); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if title := replayTitle(source); title != "" {
		fmt.Fprintf(out, "Launched %s with replay %s\n", filepath.Base(executable), colorTitle(title))
	} else {
		fmt.Fprintf(out, "Launched %s with replay %s\n", filepath.Base(executable), opts.localFile)
	}
	return nil
}

func replayTitle(source *replay.Source) string {
	if source.Metadata == nil {
		return ""
	}
	return source.Metadata.Title
}

func formatFlagList(flags []string) string {
	quoted := make([]string, len(flags))
	for i, flag := range flags {
		quoted[i] = fmt.Sprintf("%q", flag)
	}
	out := quoted[0]
	for _, q := range quoted[1:] {
		out += ", " + q
	}
	return out
}
