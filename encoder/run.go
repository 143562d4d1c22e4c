package encoder

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/recode-cli/recode/log"
	"github.com/recode-cli/recode/media"
)

// Command is a fully prepared ffmpeg invocation.
type Command struct {
	Args []string
}

// New builds the ffmpeg command converting the probed input into output.
func New(opts Options, info *media.Info, output string) Command {
	return Command{Args: BuildArgs(opts, info, output)}
}

// String renders the invocation as a shell-style command line for logging
// and dry runs.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, "ffmpeg")
	for _, arg := range c.Args {
		if strings.ContainsAny(arg, " '\"") {
			arg = fmt.Sprintf("%q", arg)
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}

// runCommand executes a prepared ffmpeg invocation. Swappable for tests.
var runCommand = func(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg: %w: %s", err, bytes.TrimSpace(stderr.Bytes()))
	}
	return nil
}

// Run executes the conversion, blocking until ffmpeg exits.
func (c Command) Run(ctx context.Context) error {
	log.Debugf("running command: %s", c.String())
	return runCommand(ctx, c.Args)
}
