// Package memory provides a recording execution engine. It accepts the
// compiled statement stream without running anything, then Execute replays
// every recorded test inside its group's hooks and collects the reports.
// It is the engine the module's own tests run against.
package memory

// Group is one declared context and the tests registered under it.
type Group struct {
	Name     string
	Setup    func()
	Teardown func()
	Tests    []Test
}

// Test is one recorded test registration.
type Test struct {
	Description string
	Body        func()
}

// Report is one captured pass/fail observation.
type Report struct {
	Passed  bool
	Message string
}

// Result is the outcome of executing one test.
type Result struct {
	Group       string
	Description string
	Reports     []Report
}

// Engine implements ports.Engine by recording statements for later replay.
type Engine struct {
	title   string
	groups  []*Group
	current *Result
	pauses  int
	resumes int
}

// New creates an empty recording engine.
func New() *Engine {
	return &Engine{}
}

// Title stores the cosmetic display title.
func (e *Engine) Title(title string) { e.title = title }

// DeclareGroup records a context; subsequent tests attach to it.
func (e *Engine) DeclareGroup(name string, setup, teardown func()) {
	e.groups = append(e.groups, &Group{Name: name, Setup: setup, Teardown: teardown})
}

// RunTest records one test under the most recently declared group.
func (e *Engine) RunTest(description string, body func()) {
	if len(e.groups) == 0 {
		panic("memory: test registered before any group declaration")
	}
	g := e.groups[len(e.groups)-1]
	g.Tests = append(g.Tests, Test{Description: description, Body: body})
}

// Report attributes an observation to the test Execute is currently running.
// Reports outside Execute are dropped.
func (e *Engine) Report(passed bool, message string) {
	if e.current == nil {
		return
	}
	e.current.Reports = append(e.current.Reports, Report{Passed: passed, Message: message})
}

// Pause counts pause signals; the engine is synchronous so nothing actually
// suspends.
func (e *Engine) Pause() { e.pauses++ }

// Resume counts resume signals.
func (e *Engine) Resume() { e.resumes++ }

// Execute replays every recorded test in registration order, wrapped in its
// group's setup and teardown, and returns one Result per test.
func (e *Engine) Execute() []Result {
	var results []Result
	for _, g := range e.groups {
		for _, tc := range g.Tests {
			res := Result{Group: g.Name, Description: tc.Description}
			e.current = &res

			if g.Setup != nil {
				g.Setup()
			}
			tc.Body()
			if g.Teardown != nil {
				g.Teardown()
			}

			e.current = nil
			results = append(results, res)
		}
	}
	return results
}

// Groups exposes the recorded groups for structural inspection.
func (e *Engine) Groups() []*Group { return e.groups }

// RecordedTitle returns the title bound by the driver, if any.
func (e *Engine) RecordedTitle() string { return e.title }

// Pauses returns how many pause signals arrived.
func (e *Engine) Pauses() int { return e.pauses }

// Resumes returns how many resume signals arrived.
func (e *Engine) Resumes() int { return e.resumes }
