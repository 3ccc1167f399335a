/*
Package dsl provides the verb surface for declaring pavlov specifications.

It owns the per-run build context (the example forest and the cursor pointing
at the currently open example) and exposes the verbs a specification builder
uses: Describe, Before, After, It, Given, Assert, and Wait. The verbs are
methods on S, the scope object handed to the builder function, so no global
namespace is touched unless the driver explicitly installs one for
global-mode runs.

Example usage:

	runner.Specify("Calculator", func(s *pavlov.S) {
		s.Describe("addition", func() {
			s.It("adds two numbers", func() {
				s.Assert(1 + 2).Equals(3)
			})

			s.Given(1, 2, []any{3, 4}).It("is commutative", func(args ...any) {
				// one spec per argument
			})
		})
	})
*/
package dsl
