package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/recode-cli/recode/key"
	"github.com/recode-cli/recode/log"
	"github.com/recode-cli/recode/pipeline"
	"github.com/recode-cli/recode/util"
	"github.com/spf13/viper"
)

// NewTracker returns the progress renderer for batch operations: an
// interactive bubbletea display on terminals, plain log lines otherwise.
func NewTracker() pipeline.Tracker {
	if !viper.GetBool(key.CliProgress) {
		return plainTracker{}
	}
	if _, _, err := util.TerminalSize(); err != nil {
		return plainTracker{}
	}
	return &batchTracker{}
}

// plainTracker degrades to one summary line per batch plus log entries.
type plainTracker struct{}

func (plainTracker) Begin(description string, total int) {
	fmt.Printf("%s: %s\n", description, util.Quantify(total, "file", "files"))
}

func (plainTracker) Advance(file string) {
	log.Debugf("processing %s", file)
}

func (plainTracker) End() {}

// batchTracker drives a bubbletea program for the lifetime of one batch.
type batchTracker struct {
	program *tea.Program
	done    chan struct{}
}

func (t *batchTracker) Begin(description string, total int) {
	t.program = tea.NewProgram(newBatchModel(description, total))
	t.done = make(chan struct{})

	go func() {
		if _, err := t.program.Run(); err != nil {
			log.Warnf("progress display failed: %v", err)
		}
		close(t.done)
	}()
}

func (t *batchTracker) Advance(file string) {
	if t.program != nil {
		t.program.Send(advanceMsg(file))
	}
}

func (t *batchTracker) End() {
	if t.program == nil {
		return
	}
	t.program.Send(endMsg{})
	<-t.done
	t.program = nil
}
