package dsl

import (
	"fmt"
	"strings"
)

// Given is the parameterized-spec clause returned by S.Given. Each argument
// is either a scalar or a []any tuple; It registers one concrete spec per
// argument.
type Given struct {
	s    *S
	args []any
}

// It registers one spec per argument, in argument order. A scalar argument
// reaches the body as a single positional value; a []any argument is spread.
// The generated description is "given <arg>, <template>" where a tuple's
// textual form joins its elements with a comma. Expansions are independent:
// no state is shared between the generated specs.
func (g *Given) It(template string, body func(args ...any)) {
	for _, arg := range g.args {
		tuple, ok := arg.([]any)
		if !ok {
			tuple = []any{arg}
		}

		description := "given " + formatArgument(arg) + ", " + template
		g.s.b.AddSpec(description, g.s.tupleBody(tuple, body))
	}
}

func (s *S) tupleBody(tuple []any, body func(args ...any)) func() {
	if body == nil {
		return s.specBody(nil)
	}
	return func() { body(tuple...) }
}

func formatArgument(arg any) string {
	tuple, ok := arg.([]any)
	if !ok {
		return fmt.Sprintf("%v", arg)
	}
	parts := make([]string, len(tuple))
	for i, v := range tuple {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return strings.Join(parts, ",")
}
