package main

import (
	"os"

	"github.com/dmitrymomot/rulekit/cmd/rulekit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
