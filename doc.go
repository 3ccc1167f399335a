/*
Package pavlov is a declarative behavioral specification layer. It lets you
describe nested groups of behavior ("examples"), each with inherited
setup/teardown and a list of individual checks ("specs"), and compiles that
nested declaration into a flat, ordered statement stream executed against a
pluggable test-execution engine.

The core separates three concerns: the specification DSL builds an example
tree, the compiler flattens the tree into grouped, ordered statements, and an
engine adapter (console, recording, or testing.T bridge) executes them. This
Hexagonal Architecture lets the same specification run on a terminal, inside
`go test`, or against a recorder in unit tests.

# Usage

	package main

	import (
		"log"

		"github.com/ef4/pavlov"
	)

	func main() {
		runner := pavlov.New()

		err := runner.Specify("Calculator", func(s *pavlov.S) {
			s.Describe("addition", func() {
				var total int

				s.Before(func() { total = 0 })

				s.It("adds two numbers", func() {
					total = 1 + 2
					s.Assert(total).Equals(3)
				})

				s.Given(1, 2, []any{3, 4}).It("accepts arguments", func(args ...any) {
					s.Assert(len(args) > 0).IsTrue()
				})
			})
		})
		if err != nil {
			log.Fatal(err)
		}
	}

# Scope Modes

Scoped mode (the default) hands the verb set to the builder function as the
explicit *S parameter and touches no package state. Global mode additionally
installs the same verbs behind the package-level functions (Describe, It,
Assert, ...) for the duration of the run, for builders that prefer unqualified
verbs. Both modes compile identical statement sequences for the same builder
logic.

# Custom Assertions

Verbs live in a process-wide registry that persists across runs. Registering
a name already present overwrites it:

	pavlov.RegisterVerb("isPositive", func(report registry.ReportFunc, subject any, args []any, message string) {
		n, ok := subject.(int)
		report(ok && n > 0, message)
	})

	s.Assert(5).Verb("isPositive")
*/
package pavlov
