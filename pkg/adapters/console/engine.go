// Package console provides an immediate-mode execution engine that runs each
// test as it is registered and prints a colored line per test plus a final
// summary. It is the engine the demo binary runs against.
package console

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// Option configures the engine.
type Option func(*Engine)

// WithWriter directs output to w instead of stdout.
func WithWriter(w io.Writer) Option {
	return func(e *Engine) { e.writer = w }
}

// WithProfile forces a termenv color profile. Use termenv.Ascii to disable
// color entirely.
func WithProfile(p termenv.Profile) Option {
	return func(e *Engine) { e.profile = &p }
}

// WithLogger sets a structured logger for run diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// Engine implements ports.Engine by executing tests synchronously as they
// arrive. Assertion failures are non-fatal: the run proceeds to the next
// test and the failure shows up in the tally.
type Engine struct {
	writer  io.Writer
	out     *termenv.Output
	profile *termenv.Profile
	logger  *slog.Logger

	groupName string
	setup     func()
	teardown  func()

	running  bool
	failures []string

	passed int
	failed int
}

// New creates a console engine writing to stdout with auto-detected color.
func New(opts ...Option) *Engine {
	e := &Engine{
		writer: os.Stdout,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}

	outOpts := []termenv.OutputOption{}
	if e.profile != nil {
		outOpts = append(outOpts, termenv.WithProfile(*e.profile))
	}
	e.out = termenv.NewOutput(e.writer, outOpts...)
	return e
}

// Title prints the run's display title as a heading.
func (e *Engine) Title(title string) {
	fmt.Fprintln(e.writer, e.styled(title, "6", true))
}

// DeclareGroup switches the active group context. The hooks wrap every test
// registered until the next declaration.
func (e *Engine) DeclareGroup(name string, setup, teardown func()) {
	e.groupName = name
	e.setup = setup
	e.teardown = teardown
	fmt.Fprintln(e.writer, e.styled(name, "4", true))
}

// RunTest executes the test immediately: setup, body, teardown. A panicking
// body counts as a failure of that test; the run continues.
func (e *Engine) RunTest(description string, body func()) {
	e.running = true
	e.failures = nil

	e.runBody(body)

	e.running = false
	if len(e.failures) == 0 {
		e.passed++
		fmt.Fprintf(e.writer, "  %s %s\n", e.styled("ok", "2", false), description)
		return
	}

	e.failed++
	fmt.Fprintf(e.writer, "  %s %s\n", e.styled("FAIL", "1", false), description)
	for _, msg := range e.failures {
		fmt.Fprintf(e.writer, "       %s\n", msg)
	}
	e.logger.Debug("test failed", "group", e.groupName, "test", description, "failures", len(e.failures))
}

func (e *Engine) runBody(body func()) {
	defer func() {
		if recovered := recover(); recovered != nil {
			e.failures = append(e.failures, fmt.Sprintf("panic: %v", recovered))
		}
	}()

	if e.setup != nil {
		e.setup()
	}
	defer func() {
		if e.teardown != nil {
			e.teardown()
		}
	}()

	body()
}

// Report records one observation against the running test. Failures are
// collected and printed under the test's line.
func (e *Engine) Report(passed bool, message string) {
	if !e.running {
		e.logger.Warn("report outside a running test", "message", message)
		return
	}
	if !passed {
		e.failures = append(e.failures, message)
	}
}

// Pause is a no-op: the engine is fully synchronous, the wait primitive's
// sleep happens inline.
func (e *Engine) Pause() {}

// Resume is a no-op.
func (e *Engine) Resume() {}

// Summary returns the pass/fail tally so far.
func (e *Engine) Summary() (passed, failed int) {
	return e.passed, e.failed
}

// PrintSummary writes the final tally line.
func (e *Engine) PrintSummary() {
	color := "2"
	if e.failed > 0 {
		color = "1"
	}
	fmt.Fprintln(e.writer, e.styled(fmt.Sprintf("%d passed, %d failed", e.passed, e.failed), color, true))
}

func (e *Engine) styled(s, color string, bold bool) string {
	styled := e.out.String(s).Foreground(e.out.Color(color))
	if bold {
		styled = styled.Bold()
	}
	return styled.String()
}
