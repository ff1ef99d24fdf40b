package main

import (
	"os"

	"slipkey/cmd/slipkey/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
