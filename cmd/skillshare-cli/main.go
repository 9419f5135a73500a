// Package main is the entry point for skillshare-cli, the SkillShare
// command-line client.
package main

import (
	"fmt"
	"os"

	"github.com/skillshare/skillshare-go/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
