package main

import (
	"os"

	"github.com/phylax/contracts/cmd/phlx/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
