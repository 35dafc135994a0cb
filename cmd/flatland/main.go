package main

import (
	"os"

	"flatland/cmd/flatland/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
