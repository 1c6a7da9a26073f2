package steps

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/ovenly/cakectl/internal/ui"
)

// Step is one optional action. Its description is written before the action
// runs so the invocation can be audited (or previewed with dry-run) before
// any side effect happens.
type Step struct {
	Description string
	Enabled     bool
	Run         func() error
}

// Result records what happened to a single step.
type Result struct {
	Step    Step
	Err     error
	Skipped bool
}

// Runner executes steps sequentially in the order they were provided.
type Runner struct {
	out     io.Writer
	logger  *log.Logger
	styler  *ui.Styler
	dryRun  bool
	results []Result
}

func NewRunner(out io.Writer, logger *log.Logger, dryRun bool) *Runner {
	return &Runner{
		out:    out,
		logger: logger,
		styler: ui.NewStyler(out),
		dryRun: dryRun,
	}
}

// Run executes every enabled step, stopping at the first failure.
func (r *Runner) Run(steps ...Step) error {
	r.results = make([]Result, 0, len(steps))

	for _, step := range steps {
		if !step.Enabled {
			r.logger.Debug("skipping step (disabled)", "step", step.Description)
			r.results = append(r.results, Result{Step: step, Skipped: true})
			continue
		}

		fmt.Fprintln(r.out, r.styler.Step(step.Description))

		if r.dryRun {
			r.logger.Info("dry-run, step not executed", "step", step.Description)
			r.results = append(r.results, Result{Step: step, Skipped: true})
			continue
		}

		if err := step.Run(); err != nil {
			r.results = append(r.results, Result{Step: step, Err: err})
			return fmt.Errorf("step %q failed: %w", step.Description, err)
		}
		r.results = append(r.results, Result{Step: step})
	}

	return nil
}

// Results returns the audit trail for the last Run.
func (r *Runner) Results() []Result {
	return r.results
}
