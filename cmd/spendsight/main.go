package main

import (
	"os"

	"github.com/spendsight-dev/spendsight/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
