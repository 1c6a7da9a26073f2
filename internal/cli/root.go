package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/ovenly/cakectl/internal/config"
	"github.com/ovenly/cakectl/internal/registry"
	"github.com/ovenly/cakectl/internal/ui"
)

// These are set at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// app carries the per-invocation state handlers need: the output streams,
// the logger, and the loaded configuration. Nothing here is package-global,
// so two invocations share no state.
type app struct {
	stdout io.Writer
	stderr io.Writer

	logger    *log.Logger
	baseLevel log.Level
	cfg       *config.Config

	dryRun bool

	// dispatched flips once the global options have been applied, which
	// separates parse failures from failures inside handlers.
	dispatched bool
}

// Run parses argv, applies the global options, and dispatches to the
// selected handler. It is the only place an error becomes an exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	if argv == nil {
		// cobra treats nil args as "use os.Args".
		argv = []string{}
	}

	a := &app{stdout: stdout, stderr: stderr}
	a.logger = log.NewWithOptions(stderr, log.Options{ReportTimestamp: false})

	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return config.ExitConfigurationError
	}
	a.cfg = cfg

	a.baseLevel = log.InfoLevel
	if cfg.Logging.Level != "" {
		level, err := log.ParseLevel(cfg.Logging.Level)
		if err != nil {
			fmt.Fprintf(stderr, "Error: invalid logging.level %q in config\n", cfg.Logging.Level)
			return config.ExitConfigurationError
		}
		a.baseLevel = level
	}

	reg, err := registry.Build(a.descriptors())
	if err != nil {
		fmt.Fprintln(stderr, "Error: invalid command registration:", err)
		return config.ExitConfigurationError
	}

	root := reg.Root()
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if cmd, err := root.ExecuteC(); err != nil {
		if ui.IsAbort(err) {
			fmt.Fprintln(stderr, "Aborted.")
			return config.ExitGeneralError
		}
		fmt.Fprintln(stderr, "Error:", err)
		if !a.dispatched {
			// Parsing never completed, so this is a usage error.
			fmt.Fprint(stderr, cmd.UsageString())
			return config.ExitUsageError
		}
		return config.ExitGeneralError
	}

	return config.ExitSuccess
}

// descriptors is the whole registration, as data: the global options, the
// setup handler that applies them, and one descriptor per subcommand.
func (a *app) descriptors() registry.App {
	return registry.App{
		Name:  "cakectl",
		Short: "Bake and decorate cakes from the command line",
		Long: `cakectl bakes and decorates cakes.

Each subcommand carries its own options; run a subcommand with --help
for details. Without a subcommand this help text is shown.`,
		Globals: []registry.Option{
			{Name: "no-logging", Kind: registry.Bool, Help: "Suppress all log output below fatal"},
			{Name: "verbose", Kind: registry.Bool, Help: "Enable debug logging"},
			{Name: "dry-run", Kind: registry.Bool, Help: "Describe conditional steps without running them"},
		},
		Setup: a.applyGlobals,
		Commands: []registry.Command{
			a.bakeCommand(),
			a.decorateCommand(),
			a.initCommand(),
			a.versionCommand(),
		},
	}
}

// applyGlobals runs after parsing and before any handler, so every global
// effect is visible to the invoked logic.
func (a *app) applyGlobals(args *registry.Args) error {
	noLogging, err := args.Bool("no-logging")
	if err != nil {
		return err
	}
	verbose, err := args.Bool("verbose")
	if err != nil {
		return err
	}
	dryRun, err := args.Bool("dry-run")
	if err != nil {
		return err
	}

	switch {
	case noLogging:
		a.logger.SetLevel(log.FatalLevel)
	case verbose:
		a.logger.SetLevel(log.DebugLevel)
	default:
		a.logger.SetLevel(a.baseLevel)
	}
	a.dryRun = dryRun
	a.dispatched = true

	return nil
}
