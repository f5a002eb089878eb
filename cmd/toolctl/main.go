package main

import (
	"os"

	"github.com/foundry-science/toolctl/cmd/toolctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
