package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Brutus5000/faf-replay/internal/replay"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	colorTitle = color.New(color.FgHiBlue, color.Bold).SprintFunc()
	colorLabel = color.New(color.FgBlack, color.Bold).SprintFunc()
	colorDim   = color.New(color.FgHiBlack).SprintFunc()
)

func newInfoCommand() *cobra.Command {
	var localFile string
	cmd := &cobra.Command{
		Use:          "info",
		Short:        "Print a replay's metadata without launching the game",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, localFile)
		},
	}
	cmd.Flags().StringVarP(&localFile, "local-file", "f", "", "path to the replay file")
	_ = cmd.MarkFlagRequired("local-file")
	return cmd
}

func runInfo(cmd *cobra.Command, localFile string) error {
	out := cmd.OutOrStdout()

	switch replay.DetectFormat(localFile) {
	case replay.FormatUnknown:
		return fmt.Errorf("unknown replay format: %s", localFile)
	case replay.FormatRaw:
		info, err := os.Stat(localFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s\n", colorLabel("format:"), "raw Forged Alliance replay")
		fmt.Fprintf(out, "%s %d bytes %s\n", colorLabel("size:"), info.Size(), colorDim("(no metadata header)"))
		return nil
	}

	meta, err := replay.ReadMetadata(localFile)
	if err != nil {
		return err
	}
	printMetadata(cmd, meta)
	return nil
}

func printMetadata(cmd *cobra.Command, meta *replay.Metadata) {
	out := cmd.OutOrStdout()
	width := outputWidth()

	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(out, "%s %s\n", colorLabel(fmt.Sprintf("%-9s", label+":")), value)
	}

	if meta.Title != "" {
		row("title", colorTitle(meta.Title))
	}
	if meta.UID != 0 {
		row("id", fmt.Sprintf("%d", meta.UID))
	}
	row("map", meta.MapName)
	row("mod", meta.FeaturedMod)
	row("version", meta.GameVersion)
	if meta.LaunchedAt > 0 {
		row("played", time.Unix(int64(meta.LaunchedAt), 0).Format("Jan 2 2006 15:04"))
	}
	if players := meta.Players(); len(players) > 0 {
		row("players", fitLine(strings.Join(players, ", "), width-10))
	}
	row("recorder", meta.Recorder)
}

// outputWidth probes the terminal so long player lists don't wrap badly.
// Redirected output gets no limit.
func outputWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

func fitLine(s string, max int) string {
	if max <= 3 {
		return s
	}
	return runewidth.Truncate(s, max, "...")
}
