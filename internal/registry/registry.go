package registry

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Kind identifies how an option's value is parsed and stored.
type Kind int

const (
	Bool Kind = iota
	String
	Int
)

// Option describes a single flag. Scope is decided by placement: options in
// App.Globals apply to every command, options in Command.Options only to
// their own command.
type Option struct {
	Name      string
	Shorthand string
	Kind      Kind
	Default   any
	Help      string
}

// Handler adapts a parsed invocation to business logic. It receives the
// read-only argument container and nothing else from the parsing layer.
type Handler func(args *Args) error

// Command describes one subcommand: its grammar, the whitelist of fields its
// handler may extract, and the handler itself.
type Command struct {
	Name    string
	Short   string
	Long    string
	Options []Option
	Fields  []string
	Run     Handler
}

// App is the full declarative registration: global options, a setup handler
// that applies their effects before any command handler runs, and the
// command list.
type App struct {
	Name     string
	Short    string
	Long     string
	Globals  []Option
	Setup    Handler
	Commands []Command
}

// Registry holds the built command tree and an addressable handle for every
// subcommand it created, so callers never have to dig a sub-grammar back out
// of the parsing library.
type Registry struct {
	root     *cobra.Command
	commands map[string]*cobra.Command
}

// Build validates app and constructs the command tree. All registration
// errors are reported here; a registry that builds cleanly cannot fail a
// whitelist extraction at dispatch time.
func Build(app App) (*Registry, error) {
	if app.Name == "" {
		return nil, fmt.Errorf("application name is required")
	}

	globals := make(map[string]Option, len(app.Globals))
	for _, opt := range app.Globals {
		if err := checkOption(opt); err != nil {
			return nil, fmt.Errorf("global option: %w", err)
		}
		if _, dup := globals[opt.Name]; dup {
			return nil, fmt.Errorf("duplicate global option --%s", opt.Name)
		}
		globals[opt.Name] = opt
	}

	root := &cobra.Command{
		Use:   app.Name,
		Short: app.Short,
		Long:  app.Long,
		Args:  cobra.NoArgs,
		// The dispatch loop owns error and usage reporting.
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, _ []string) {
			// No subcommand selected: show help and succeed.
			_ = cmd.Help()
		},
	}
	for _, opt := range app.Globals {
		addOption(root.PersistentFlags(), opt)
	}
	if app.Setup != nil {
		setupFields := bindGlobals(app.Globals)
		root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
			args, err := newArgs(cmd, setupFields)
			if err != nil {
				return err
			}
			return app.Setup(args)
		}
	}

	reg := &Registry{
		root:     root,
		commands: make(map[string]*cobra.Command, len(app.Commands)),
	}

	for _, spec := range app.Commands {
		if spec.Name == "" {
			return nil, fmt.Errorf("subcommand with empty name")
		}
		if spec.Run == nil {
			return nil, fmt.Errorf("subcommand %q has no handler", spec.Name)
		}
		if _, dup := reg.commands[spec.Name]; dup {
			return nil, fmt.Errorf("duplicate subcommand %q", spec.Name)
		}

		locals := make(map[string]Option, len(spec.Options))
		for _, opt := range spec.Options {
			if err := checkOption(opt); err != nil {
				return nil, fmt.Errorf("subcommand %q: %w", spec.Name, err)
			}
			if _, dup := locals[opt.Name]; dup {
				return nil, fmt.Errorf("subcommand %q: duplicate option --%s", spec.Name, opt.Name)
			}
			if _, collides := globals[opt.Name]; collides {
				return nil, fmt.Errorf("subcommand %q: option --%s collides with a global option", spec.Name, opt.Name)
			}
			locals[opt.Name] = opt
		}

		bound, err := resolveWhitelist(spec, locals, globals)
		if err != nil {
			return nil, err
		}

		run := spec.Run
		cmd := &cobra.Command{
			Use:   spec.Name,
			Short: spec.Short,
			Long:  spec.Long,
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				args, err := newArgs(c, bound)
				if err != nil {
					return err
				}
				return run(args)
			},
		}
		for _, opt := range spec.Options {
			addOption(cmd.Flags(), opt)
		}

		root.AddCommand(cmd)
		reg.commands[spec.Name] = cmd
	}

	return reg, nil
}

// Root returns the top-level command for execution.
func (r *Registry) Root() *cobra.Command {
	return r.root
}

// Command returns the handle for a registered subcommand.
func (r *Registry) Command(name string) (*cobra.Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// binding ties a whitelisted field name to the option that declares it.
type binding struct {
	name string
	kind Kind
}

func resolveWhitelist(spec Command, locals, globals map[string]Option) ([]binding, error) {
	seen := make(map[string]bool, len(spec.Fields))
	bound := make([]binding, 0, len(spec.Fields))
	for _, field := range spec.Fields {
		if seen[field] {
			return nil, fmt.Errorf("subcommand %q: field %q listed twice in whitelist", spec.Name, field)
		}
		seen[field] = true

		opt, ok := locals[field]
		if !ok {
			opt, ok = globals[field]
		}
		if !ok {
			return nil, fmt.Errorf("subcommand %q: whitelist field %q is not declared by any option in scope", spec.Name, field)
		}
		bound = append(bound, binding{name: field, kind: opt.Kind})
	}
	return bound, nil
}

// bindGlobals gives the setup handler access to every global option.
func bindGlobals(globals []Option) []binding {
	bound := make([]binding, 0, len(globals))
	for _, opt := range globals {
		bound = append(bound, binding{name: opt.Name, kind: opt.Kind})
	}
	return bound
}

func checkOption(opt Option) error {
	if opt.Name == "" {
		return fmt.Errorf("option with empty name")
	}
	if opt.Default == nil {
		return nil
	}
	ok := false
	switch opt.Kind {
	case Bool:
		_, ok = opt.Default.(bool)
	case String:
		_, ok = opt.Default.(string)
	case Int:
		_, ok = opt.Default.(int)
	}
	if !ok {
		return fmt.Errorf("option --%s: default %v does not match its declared kind", opt.Name, opt.Default)
	}
	return nil
}

func addOption(fs *pflag.FlagSet, opt Option) {
	switch opt.Kind {
	case Bool:
		def, _ := opt.Default.(bool)
		fs.BoolP(opt.Name, opt.Shorthand, def, opt.Help)
	case String:
		def, _ := opt.Default.(string)
		fs.StringP(opt.Name, opt.Shorthand, def, opt.Help)
	case Int:
		def, _ := opt.Default.(int)
		fs.IntP(opt.Name, opt.Shorthand, def, opt.Help)
	}
}
