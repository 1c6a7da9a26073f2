package main

import (
	"os"

	"github.com/ovenly/cakectl/internal/cli"
)

// These variables are set at build time via -ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	cli.Version = Version
	cli.Commit = Commit
	cli.BuildDate = BuildDate
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
