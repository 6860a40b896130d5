// Package launcher builds and starts the game process.
package launcher

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
)

// Invocation describes one launch of the game engine. When Wrapper is set the
// wrapper becomes the spawned program and receives the executable path as its
// first argument, followed by the usual engine arguments.
type Invocation struct {
	Executable string
	Wrapper    string
	Replay     string
	ReplayID   int64
	InitScript string
	BugReport  bool
}

// Argv returns the full argument vector, program path first.
func (inv Invocation) Argv() []string {
	args := []string{"/init", inv.InitScript}
	if !inv.BugReport {
		args = append(args, "/nobugreport")
	}
	args = append(args, "/replay", inv.Replay, "/replayid", strconv.FormatInt(inv.ReplayID, 10))

	if inv.Wrapper != "" {
		return append([]string{inv.Wrapper, inv.Executable}, args...)
	}
	return append([]string{inv.Executable}, args...)
}

// Dir is the working directory for the child. The engine resolves its init
// script relative to the binary's own directory.
func (inv Invocation) Dir() string {
	return filepath.Dir(inv.Executable)
}

// Launch starts the child and releases it. The game runs alongside whatever
// else the user has open; its exit status is its own business.
func Launch(inv Invocation) error {
	argv := inv.Argv()
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = inv.Dir()
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", argv[0], err)
	}
	return cmd.Process.Release()
}
