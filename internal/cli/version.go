package cli

import (
	"fmt"

	"github.com/ovenly/cakectl/internal/registry"
)

func (a *app) versionCommand() registry.Command {
	return registry.Command{
		Name:  "version",
		Short: "Print version information",
		Long:  `Display the current version of cakectl.`,
		Run:   a.handleVersion,
	}
}

func (a *app) handleVersion(_ *registry.Args) error {
	fmt.Fprintf(a.stdout, "cakectl version %s (commit %s, built %s)\n", Version, Commit, BuildDate)
	return nil
}
