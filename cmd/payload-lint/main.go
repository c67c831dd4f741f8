package main

import (
	"os"

	"github.com/pulsecoach/coachkit/cmd/payload-lint/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
