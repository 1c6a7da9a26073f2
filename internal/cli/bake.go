package cli

import (
	"github.com/ovenly/cakectl/internal/cake"
	"github.com/ovenly/cakectl/internal/registry"
)

func (a *app) bakeCommand() registry.Command {
	return registry.Command{
		Name:  "bake",
		Short: "Bake a cake",
		Long: `Bakes a cake, optionally with a timer.

A positive --minutes value prints the baking status line; zero (the
default) means no timer and produces no output.`,
		Options: []registry.Option{
			{Name: "minutes", Shorthand: "m", Kind: registry.Int, Default: a.cfg.Bakery.Minutes, Help: "Baking time in minutes (0 disables the timer)"},
		},
		Fields: []string{"minutes"},
		Run:    a.handleBake,
	}
}

func (a *app) handleBake(args *registry.Args) error {
	minutes, err := args.Int("minutes")
	if err != nil {
		return err
	}
	return cake.BakeCake(a.stdout, a.logger, minutes)
}
