package dsl

import (
	"time"

	"github.com/ef4/pavlov/pkg/domain"
	"github.com/ef4/pavlov/pkg/ports"
	"github.com/ef4/pavlov/pkg/registry"
)

// ScopeConfig wires a scope to its run: where assertion reports go, how the
// engine is paused around timed waits, and which clock and verb registry to
// use.
type ScopeConfig struct {
	Report   registry.ReportFunc
	Pause    func()
	Resume   func()
	Clock    ports.Clock
	Registry *registry.Registry
}

// S is the DSL's verb set, scoped to one specification run. In scoped mode
// it is passed into the builder function; in global mode the driver
// additionally installs it behind the package-level verb functions for the
// duration of the run. Either way the verbs behave identically.
type S struct {
	b      *Builder
	report registry.ReportFunc
	pause  func()
	resume func()
	clock  ports.Clock
	reg    *registry.Registry
}

// NewScope creates a scope with a fresh build context.
func NewScope(cfg ScopeConfig) *S {
	s := &S{
		b:      NewBuilder(),
		report: cfg.Report,
		pause:  cfg.Pause,
		resume: cfg.Resume,
		clock:  cfg.Clock,
		reg:    cfg.Registry,
	}
	if s.reg == nil {
		s.reg = registry.Default
	}
	return s
}

// Builder exposes the build context, for compilation after the builder
// function returns.
func (s *S) Builder() *Builder {
	return s.b
}

// Describe declares a nested behavioral group. The block runs immediately
// with the new group open; nested verbs attach to it.
func (s *S) Describe(name string, block func()) {
	s.b.Describe(name, block)
}

// Before registers the setup hook for the open group. It runs before every
// spec in or under the group, after any outer group's setup.
func (s *S) Before(fn func()) {
	s.b.Before(fn)
}

// After registers the teardown hook for the open group. It runs after every
// spec in or under the group, before any outer group's teardown.
func (s *S) After(fn func()) {
	s.b.After(fn)
}

// It declares one spec in the open group. Omitting the body substitutes a
// stub that reports a single "Not Implemented" failure when executed.
func (s *S) It(description string, body ...func()) {
	s.b.AddSpec(description, s.specBody(body))
}

// Given expands one templated spec declaration into one spec per argument.
func (s *S) Given(args ...any) *Given {
	return &Given{s: s, args: args}
}

// Assert binds a subject value to the assertion verbs. Calling it with no
// value binds the Undefined sentinel, for verbs that ignore the subject.
func (s *S) Assert(value ...any) *registry.Handler {
	var subject any = domain.Undefined
	if len(value) > 0 {
		subject = value[0]
	}
	return registry.NewHandler(s.reg, subject, s.report)
}

// Wait pauses the engine, sleeps on the configured clock, invokes fn, then
// resumes. One in-flight wait per spec; waits do not nest.
func (s *S) Wait(d time.Duration, fn func()) {
	s.pause()
	s.clock.Sleep(d)
	if fn != nil {
		fn()
	}
	s.resume()
}

func (s *S) specBody(body []func()) func() {
	if len(body) > 0 && body[0] != nil {
		return body[0]
	}
	return func() { s.report(false, domain.NotImplementedMessage) }
}
