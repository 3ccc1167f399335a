package domain

import "strings"

// NameSeparator joins ancestor names when building a qualified group name.
const NameSeparator = ", "

// Example represents one node in the specification tree.
// Children and specs only ever append during construction; they are never
// reordered or removed, so declaration order is traversal order.
type Example struct {
	// Name is this group's own description, not qualified by ancestors.
	Name string

	// Parent is a back-reference only. The parent owns this node through
	// its Children slice, never the other way around.
	Parent *Example

	// Children holds nested examples in declaration order.
	Children []*Example

	// Setup runs before every spec in or under this example.
	// Nil means no-op.
	Setup func()

	// Teardown runs after every spec in or under this example.
	// Nil means no-op.
	Teardown func()

	// Specs holds this example's own checks in declaration order.
	Specs []Spec
}

// NewExample creates an example under the given parent. A nil parent makes a
// root; the caller (the build context) is responsible for collecting roots
// into the forest.
func NewExample(name string, parent *Example) *Example {
	ex := &Example{Name: name, Parent: parent}
	if parent != nil {
		parent.Children = append(parent.Children, ex)
	}
	return ex
}

// AddSpec appends one check to this example.
func (e *Example) AddSpec(description string, body func()) {
	e.Specs = append(e.Specs, Spec{Description: description, Body: body})
}

// EffectiveSetup returns the inherited setup chain, outermost ancestor first
// and this example's own setup last. Outer context must initialize before
// nested context. Nil hooks are skipped.
func (e *Example) EffectiveSetup() []func() {
	hooks := e.collect(func(ex *Example) func() { return ex.Setup })
	reverse(hooks)
	return hooks
}

// EffectiveTeardown returns the inherited teardown chain, this example's own
// teardown first and the outermost ancestor's last. Teardown unwinds in the
// opposite order from setup. Nil hooks are skipped.
func (e *Example) EffectiveTeardown() []func() {
	return e.collect(func(ex *Example) func() { return ex.Teardown })
}

// QualifiedName returns the ancestor names root-to-self joined with
// NameSeparator, e.g. "outermost, middle, self".
func (e *Example) QualifiedName() string {
	var names []string
	for ex := e; ex != nil; ex = ex.Parent {
		names = append(names, ex.Name)
	}
	reverse(names)
	return strings.Join(names, NameSeparator)
}

// collect walks self-to-root gathering one hook per visited example,
// dropping nils.
func (e *Example) collect(pick func(*Example) func()) []func() {
	var hooks []func()
	for ex := e; ex != nil; ex = ex.Parent {
		if hook := pick(ex); hook != nil {
			hooks = append(hooks, hook)
		}
	}
	return hooks
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
