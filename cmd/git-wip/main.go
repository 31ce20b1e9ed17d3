package main

import (
	"os"

	"github.com/wiptools/git-wip/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
