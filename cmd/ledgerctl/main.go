package main

import (
	"os"

	"moneysaving/internal/cli"
	"moneysaving/internal/commands"
)

func main() {
	cli.LoadEnvFile()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
