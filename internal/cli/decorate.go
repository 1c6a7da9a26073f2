package cli

import (
	"github.com/ovenly/cakectl/internal/cake"
	"github.com/ovenly/cakectl/internal/registry"
	"github.com/ovenly/cakectl/internal/ui"
)

func (a *app) decorateCommand() registry.Command {
	return registry.Command{
		Name:  "decorate",
		Short: "Decorate a baked cake",
		Long: `Runs zero, one, or two decoration steps, each preceded by a
description of the action about to run.

With --interactive the steps are chosen from a prompt, seeded by the
flags and config defaults.`,
		Options: []registry.Option{
			{Name: "fancy", Kind: registry.Bool, Default: a.cfg.Bakery.Fancy, Help: "Apply fancy icing"},
			{Name: "box", Kind: registry.Bool, Default: a.cfg.Bakery.Box, Help: "Pack the cake in a gift box"},
			{Name: "interactive", Shorthand: "i", Kind: registry.Bool, Help: "Select decorations interactively"},
		},
		Fields: []string{"fancy", "box", "interactive"},
		Run:    a.handleDecorate,
	}
}

func (a *app) handleDecorate(args *registry.Args) error {
	fancy, err := args.Bool("fancy")
	if err != nil {
		return err
	}
	box, err := args.Bool("box")
	if err != nil {
		return err
	}
	interactive, err := args.Bool("interactive")
	if err != nil {
		return err
	}

	if interactive {
		fancy, box, err = ui.SelectDecorations(fancy, box)
		if err != nil {
			return err
		}
	}

	return cake.DecorateCake(a.stdout, a.logger, cake.DecorateOptions{
		Fancy:  fancy,
		Box:    box,
		DryRun: a.dryRun,
	})
}
