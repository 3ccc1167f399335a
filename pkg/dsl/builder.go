package dsl

import (
	"github.com/ef4/pavlov/pkg/domain"
)

// Builder is the build context for one specification run. It owns the root
// forest and the cursor pointing at the currently open example. A fresh
// Builder is created per run; the forest never survives into the next run.
type Builder struct {
	roots  []*domain.Example
	cursor *domain.Example
}

// NewBuilder creates an empty build context with no open example.
func NewBuilder() *Builder {
	return &Builder{}
}

// Roots returns the finalized forest in declaration order.
func (b *Builder) Roots() []*domain.Example {
	return b.roots
}

// Describe opens a new example under the current cursor (or a new root),
// makes it the cursor, runs the block, and restores the prior cursor. The
// restore happens in a defer so a panicking block cannot corrupt the cursor
// for sibling declarations.
func (b *Builder) Describe(name string, block func()) *domain.Example {
	ex := domain.NewExample(name, b.cursor)
	if b.cursor == nil {
		b.roots = append(b.roots, ex)
	}

	prev := b.cursor
	b.cursor = ex
	defer func() { b.cursor = prev }()

	if block != nil {
		block()
	}
	return ex
}

// Before sets the setup hook on the currently open example. A later call
// replaces the hook.
func (b *Builder) Before(fn func()) {
	b.current().Setup = fn
}

// After sets the teardown hook on the currently open example. A later call
// replaces the hook.
func (b *Builder) After(fn func()) {
	b.current().Teardown = fn
}

// AddSpec appends one spec to the currently open example.
func (b *Builder) AddSpec(description string, body func()) {
	b.current().AddSpec(description, body)
}

// current returns the open example, panicking when a verb runs at the top
// level. The driver recovers the panic into a run error.
func (b *Builder) current() *domain.Example {
	if b.cursor == nil {
		panic(domain.ErrNoOpenExample)
	}
	return b.cursor
}
