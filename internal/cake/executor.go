package cake

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/ovenly/cakectl/internal/steps"
)

// ErrInvalidDuration is returned when a baking time makes no sense.
var ErrInvalidDuration = errors.New("baking time cannot be negative")

// BakeCake runs the bake operation with the given timer duration.
func BakeCake(out io.Writer, logger *log.Logger, minutes int) error {
	if minutes < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDuration, minutes)
	}

	logger.Debug("starting bake", "minutes", minutes)
	Bake(out, minutes)
	return nil
}

// DecorateOptions selects which decoration steps run.
type DecorateOptions struct {
	Fancy  bool
	Box    bool
	DryRun bool
}

// DecorateCake conditionally runs the decoration steps, each preceded by a
// description of the action about to run.
func DecorateCake(out io.Writer, logger *log.Logger, opts DecorateOptions) error {
	runner := steps.NewRunner(out, logger, opts.DryRun)
	return runner.Run(
		steps.Step{
			Description: "Adding fancy icing",
			Enabled:     opts.Fancy,
			Run: func() error {
				AddFancyIcing(out)
				return nil
			},
		},
		steps.Step{
			Description: "Packing the cake in a gift box",
			Enabled:     opts.Box,
			Run: func() error {
				PutInBox(out)
				return nil
			},
		},
	)
}
