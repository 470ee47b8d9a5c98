package main

import (
	"clearit/cli"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// No arguments opens the window; subcommands run headless
	cli.Execute(cli.Options{
		Version: version,
		GUI:     runGUI,
	})
}
