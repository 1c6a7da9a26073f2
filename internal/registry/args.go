package registry

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Args is the parsed-argument container handed to a Handler. It is built
// once per invocation, restricted to the handler's whitelist, and read-only
// after construction. Asking for a field outside the whitelist is an error,
// never a silent default.
type Args struct {
	fields map[string]any
}

func newArgs(cmd *cobra.Command, bound []binding) (*Args, error) {
	fields := make(map[string]any, len(bound))
	for _, b := range bound {
		var (
			val any
			err error
		)
		switch b.kind {
		case Bool:
			val, err = lookupFlags(cmd, b.name).GetBool(b.name)
		case String:
			val, err = lookupFlags(cmd, b.name).GetString(b.name)
		case Int:
			val, err = lookupFlags(cmd, b.name).GetInt(b.name)
		}
		if err != nil {
			return nil, fmt.Errorf("reading field %q: %w", b.name, err)
		}
		fields[b.name] = val
	}
	return &Args{fields: fields}, nil
}

// lookupFlags returns the flag set that actually carries name. Local and
// merged persistent flags live on cmd.Flags(); inherited flags that have not
// been merged yet are reachable through InheritedFlags.
func lookupFlags(cmd *cobra.Command, name string) flagGetter {
	if cmd.Flags().Lookup(name) != nil {
		return cmd.Flags()
	}
	return cmd.InheritedFlags()
}

type flagGetter interface {
	GetBool(name string) (bool, error)
	GetString(name string) (string, error)
	GetInt(name string) (int, error)
}

// Bool extracts a boolean field from the whitelist.
func (a *Args) Bool(name string) (bool, error) {
	v, err := a.field(name)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("field %q is not a bool", name)
	}
	return b, nil
}

// String extracts a string field from the whitelist.
func (a *Args) String(name string) (string, error) {
	v, err := a.field(name)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q is not a string", name)
	}
	return s, nil
}

// Int extracts an integer field from the whitelist.
func (a *Args) Int(name string) (int, error) {
	v, err := a.field(name)
	if err != nil {
		return 0, err
	}
	n, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("field %q is not an int", name)
	}
	return n, nil
}

func (a *Args) field(name string) (any, error) {
	v, ok := a.fields[name]
	if !ok {
		return nil, fmt.Errorf("field %q is outside this handler's whitelist", name)
	}
	return v, nil
}
