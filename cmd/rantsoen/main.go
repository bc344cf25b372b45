package main

import (
	"os"

	"github.com/veldman/rantsoen/pkg/interfaces/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
