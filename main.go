// Package main is the entry point of the herotier CLI.
package main

import (
	"github.com/huangsam/herotier/cmd"
	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/internal/persist"
)

func main() {
	cmd.SetStoreManager(persist.Manager)

	err := cmd.Execute()

	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Failed to stop profiling", stopErr)
	}
	persist.CloseStores()

	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
