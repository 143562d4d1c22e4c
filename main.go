// Package main is the entry point for the recode application.
package main

import (
	"github.com/recode-cli/recode/cmd"
	"github.com/recode-cli/recode/config"
	"github.com/recode-cli/recode/internal/cleanup"
	"github.com/recode-cli/recode/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Sweep stale temp outputs from interrupted conversions in the background.
	go cleanup.CollectGarbage()

	cmd.Execute()
}
