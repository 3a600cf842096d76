// Package main is the entry point for the mediasan application.
package main

import (
	"github.com/mediasan-cli/mediasan/cmd"
	"github.com/mediasan-cli/mediasan/config"
	"github.com/mediasan-cli/mediasan/internal/cache"
	"github.com/mediasan-cli/mediasan/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Background cache maintenance.
	go cache.CollectGarbage()

	cmd.Execute()
}
