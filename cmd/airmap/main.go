package main

import (
	"os"

	"airmap/cmd/airmap/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
