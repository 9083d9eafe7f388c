package main

import (
	"os"

	"modhub/cmd/modhub/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
