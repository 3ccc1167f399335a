// Package gotest bridges a compiled specification onto the standard testing
// package: each declared group becomes a t.Run scope and each test a nested
// subtest, with the group's hooks wrapping every body. Assertion failures
// surface as t.Errorf on the subtest.
package gotest

import "testing"

type group struct {
	name     string
	setup    func()
	teardown func()
	tests    []test
}

type test struct {
	description string
	body        func()
}

// Engine implements ports.Engine in two phases: it records the statement
// stream, then Run replays it under a *testing.T.
type Engine struct {
	groups  []*group
	current *testing.T
}

// New creates an empty bridge engine.
func New() *Engine {
	return &Engine{}
}

// DeclareGroup records a context; subsequent tests attach to it.
func (e *Engine) DeclareGroup(name string, setup, teardown func()) {
	e.groups = append(e.groups, &group{name: name, setup: setup, teardown: teardown})
}

// RunTest records one test under the most recently declared group.
func (e *Engine) RunTest(description string, body func()) {
	if len(e.groups) == 0 {
		panic("gotest: test registered before any group declaration")
	}
	g := e.groups[len(e.groups)-1]
	g.tests = append(g.tests, test{description: description, body: body})
}

// Report routes an observation to the subtest currently executing under Run.
func (e *Engine) Report(passed bool, message string) {
	if e.current == nil {
		panic("gotest: report outside Run")
	}
	if !passed {
		e.current.Errorf("%s", message)
	}
}

// Pause is a no-op; subtests run synchronously.
func (e *Engine) Pause() {}

// Resume is a no-op.
func (e *Engine) Resume() {}

// Run replays the recorded specification as subtests of t, in declaration
// order. Setup runs before and teardown after every individual body.
func (e *Engine) Run(t *testing.T) {
	for _, g := range e.groups {
		t.Run(g.name, func(t *testing.T) {
			for _, tc := range g.tests {
				t.Run(tc.description, func(t *testing.T) {
					prev := e.current
					e.current = t
					defer func() { e.current = prev }()

					if g.setup != nil {
						g.setup()
					}
					defer func() {
						if g.teardown != nil {
							g.teardown()
						}
					}()

					tc.body()
				})
			}
		})
	}
}
