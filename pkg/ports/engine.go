package ports

// Engine is the boundary with the external test-execution engine. The core
// emits compiled statements against it in order and routes every assertion
// through Report.
type Engine interface {
	// DeclareGroup registers a named context. The setup and teardown
	// procedures wrap every subsequent test until the next DeclareGroup
	// call. Either may be nil.
	DeclareGroup(name string, setup, teardown func())

	// RunTest registers one test belonging to the most recently declared
	// group.
	RunTest(description string, body func())

	// Report records one pass/fail observation against the currently
	// executing test.
	Report(passed bool, message string)

	// Pause signals the engine to stop advancing to the next statement
	// until Resume is called. Used by the timed-wait primitive; synchronous
	// engines may treat both as no-ops.
	Pause()

	// Resume reverses Pause.
	Resume()
}

// Titler is an optional engine capability for binding a cosmetic display
// title to a run. The driver type-asserts for it.
type Titler interface {
	Title(title string)
}
