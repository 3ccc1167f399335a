package domain

// StatementKind discriminates compiled statements.
type StatementKind string

const (
	// StatementDeclareGroup switches the engine's active group context.
	StatementDeclareGroup StatementKind = "declare_group"
	// StatementRunTest registers one test under the active group.
	StatementRunTest StatementKind = "run_test"
)

// Statement is one engine-executable instruction emitted by the compiler.
// DeclareGroup statements carry Name/Setup/Teardown; RunTest statements
// carry Description/Body.
type Statement struct {
	Kind StatementKind

	Name     string
	Setup    func()
	Teardown func()

	Description string
	Body        func()
}

// Chain composes hooks into a single procedure invoking them in order.
func Chain(hooks []func()) func() {
	return func() {
		for _, hook := range hooks {
			hook()
		}
	}
}
