package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ef4/pavlov/pkg/domain"
)

func TestDescribe_NestingAndParentage(t *testing.T) {
	b := NewBuilder()

	var inner *domain.Example
	outer := b.Describe("outer", func() {
		inner = b.Describe("inner", nil)
	})

	require.Len(t, b.Roots(), 1)
	assert.Same(t, outer, b.Roots()[0])
	require.Len(t, outer.Children, 1)
	assert.Same(t, inner, outer.Children[0])
	assert.Same(t, outer, inner.Parent)
}

func TestDescribe_SiblingRoots(t *testing.T) {
	b := NewBuilder()
	b.Describe("first", nil)
	b.Describe("second", nil)

	require.Len(t, b.Roots(), 2)
	assert.Equal(t, "first", b.Roots()[0].Name)
	assert.Equal(t, "second", b.Roots()[1].Name)
}

func TestDescribe_CursorRestoredAfterPanic(t *testing.T) {
	b := NewBuilder()

	b.Describe("outer", func() {
		func() {
			defer func() { _ = recover() }()
			b.Describe("broken", func() {
				panic("builder body failed")
			})
		}()

		// The cursor must still point at "outer": a sibling declared now
		// gets the correct parentage.
		b.Describe("sibling", nil)
	})

	root := b.Roots()[0]
	require.Len(t, root.Children, 2)
	assert.Equal(t, "broken", root.Children[0].Name)
	assert.Equal(t, "sibling", root.Children[1].Name)
	assert.Same(t, root, root.Children[1].Parent)
}

func TestBeforeAfter_AttachToOpenExample(t *testing.T) {
	b := NewBuilder()
	setup := func() {}
	teardown := func() {}

	ex := b.Describe("group", func() {
		b.Before(setup)
		b.After(teardown)
	})

	assert.NotNil(t, ex.Setup)
	assert.NotNil(t, ex.Teardown)
}

func TestVerbsOutsideDescribePanic(t *testing.T) {
	b := NewBuilder()

	assert.PanicsWithValue(t, domain.ErrNoOpenExample, func() {
		b.Before(func() {})
	})
	assert.PanicsWithValue(t, domain.ErrNoOpenExample, func() {
		b.AddSpec("orphan", func() {})
	})
}
