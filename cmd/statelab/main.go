package main

import (
	"os"

	"github.com/jask/statelab/cmd/statelab/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
