// Package main is the entry point for the coursex application.
package main

import (
	"github.com/coursex-bot/coursex/cmd"
	"github.com/coursex-bot/coursex/config"
	"github.com/coursex-bot/coursex/internal/cache"
	"github.com/coursex-bot/coursex/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Prune expired catalog payloads in the background.
	cache.CollectGarbage()

	cmd.Execute()
}
