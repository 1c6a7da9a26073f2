package cli

import (
	"fmt"
	"os"

	"github.com/ovenly/cakectl/internal/config"
	"github.com/ovenly/cakectl/internal/registry"
)

func (a *app) initCommand() registry.Command {
	return registry.Command{
		Name:  "init",
		Short: "Write a starter cakectl.yaml",
		Long: `Writes a starter cakectl.yaml to the current directory.

The file seeds option defaults (bakery.minutes, bakery.fancy,
bakery.box) and the baseline log level (logging.level).`,
		Options: []registry.Option{
			{Name: "force", Shorthand: "f", Kind: registry.Bool, Help: "Overwrite an existing config file"},
		},
		Fields: []string{"force"},
		Run:    a.handleInit,
	}
}

func (a *app) handleInit(args *registry.Args) error {
	force, err := args.Bool("force")
	if err != nil {
		return err
	}

	path := config.FileName + ".yaml"
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.Write(path, config.Starter()); err != nil {
		return err
	}

	a.logger.Debug("wrote starter config", "path", path)
	fmt.Fprintf(a.stdout, "Wrote %s\n", path)
	return nil
}
