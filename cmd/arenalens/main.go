// main is the entry point for the arenalens CLI.
package main

import (
	"github.com/arenalens/arenalens/cmd"
	"github.com/arenalens/arenalens/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
