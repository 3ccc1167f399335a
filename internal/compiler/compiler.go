// Package compiler linearizes a finalized example forest into the ordered
// statement stream an execution engine consumes.
package compiler

import (
	"github.com/ef4/pavlov/pkg/domain"
)

// Compile walks the forest depth-first in pre-order, children in declaration
// order. Per example it emits one declare-group statement carrying the
// qualified name and rolled-up hooks, then one run-test statement per spec,
// then recurses. Siblings never interleave and an example's own specs always
// precede its children's.
func Compile(forest []*domain.Example) []domain.Statement {
	var stmts []domain.Statement
	for _, root := range forest {
		stmts = compileExample(stmts, root)
	}
	return stmts
}

func compileExample(stmts []domain.Statement, ex *domain.Example) []domain.Statement {
	stmts = append(stmts, domain.Statement{
		Kind:     domain.StatementDeclareGroup,
		Name:     ex.QualifiedName(),
		Setup:    domain.Chain(ex.EffectiveSetup()),
		Teardown: domain.Chain(ex.EffectiveTeardown()),
	})

	for _, spec := range ex.Specs {
		stmts = append(stmts, domain.Statement{
			Kind:        domain.StatementRunTest,
			Description: spec.Description,
			Body:        spec.Body,
		})
	}

	for _, child := range ex.Children {
		stmts = compileExample(stmts, child)
	}
	return stmts
}
