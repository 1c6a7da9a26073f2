package steps

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(out io.Writer, dryRun bool) *Runner {
	return NewRunner(out, log.New(io.Discard), dryRun)
}

func TestRunner_SkipsDisabledSteps(t *testing.T) {
	var buf bytes.Buffer
	ran := false

	runner := newTestRunner(&buf, false)
	err := runner.Run(Step{
		Description: "optional step",
		Enabled:     false,
		Run: func() error {
			ran = true
			return nil
		},
	})

	require.NoError(t, err)
	assert.False(t, ran)
	assert.Empty(t, buf.String())

	results := runner.Results()
	require.Len(t, results, 1)
	assert.True(t, results[0].Skipped)
}

func TestRunner_DescribesBeforeRunning(t *testing.T) {
	var buf bytes.Buffer

	runner := newTestRunner(&buf, false)
	err := runner.Run(Step{
		Description: "first step",
		Enabled:     true,
		Run: func() error {
			buf.WriteString("first step ran\n")
			return nil
		},
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Less(t, strings.Index(out, "first step\n"), strings.Index(out, "first step ran"))
}

func TestRunner_RunsEnabledStepsInOrder(t *testing.T) {
	var order []string

	runner := newTestRunner(io.Discard, false)
	err := runner.Run(
		Step{Description: "a", Enabled: true, Run: func() error {
			order = append(order, "a")
			return nil
		}},
		Step{Description: "b", Enabled: false, Run: func() error {
			order = append(order, "b")
			return nil
		}},
		Step{Description: "c", Enabled: true, Run: func() error {
			order = append(order, "c")
			return nil
		}},
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, order)
}

func TestRunner_DryRunDescribesWithoutExecuting(t *testing.T) {
	var buf bytes.Buffer
	ran := false

	runner := newTestRunner(&buf, true)
	err := runner.Run(Step{
		Description: "dangerous step",
		Enabled:     true,
		Run: func() error {
			ran = true
			return nil
		},
	})

	require.NoError(t, err)
	assert.False(t, ran)
	assert.Contains(t, buf.String(), "dangerous step")
}

func TestRunner_FirstErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	secondRan := false

	runner := newTestRunner(io.Discard, false)
	err := runner.Run(
		Step{Description: "failing step", Enabled: true, Run: func() error {
			return boom
		}},
		Step{Description: "next step", Enabled: true, Run: func() error {
			secondRan = true
			return nil
		}},
	)

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `step "failing step" failed`)
	assert.False(t, secondRan)

	results := runner.Results()
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, boom)
}
