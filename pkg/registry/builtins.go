package registry

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"

	"github.com/ef4/pavlov/pkg/domain"
)

// registerBuiltins installs the standard verb set. Each predicate is written
// purely in terms of the report primitive.
func registerBuiltins(r *Registry) {
	equals := func(report ReportFunc, subject any, args []any, message string) {
		expected := argAt(args, 0)
		report(shallowEqual(subject, expected),
			orDefault(message, fmt.Sprintf("expected %v to equal %v", subject, expected)))
	}
	r.Register("equals", equals)
	r.Register("isEqualTo", equals)

	r.Register("isNotEqualTo", func(report ReportFunc, subject any, args []any, message string) {
		expected := argAt(args, 0)
		report(!shallowEqual(subject, expected),
			orDefault(message, fmt.Sprintf("expected %v to not equal %v", subject, expected)))
	})

	r.Register("isSameAs", func(report ReportFunc, subject any, args []any, message string) {
		expected := argAt(args, 0)
		report(deepEqual(subject, expected),
			orDefault(message, fmt.Sprintf("expected %v to be the same as %v", subject, expected)))
	})

	r.Register("isNotSameAs", func(report ReportFunc, subject any, args []any, message string) {
		expected := argAt(args, 0)
		report(!deepEqual(subject, expected),
			orDefault(message, fmt.Sprintf("expected %v to not be the same as %v", subject, expected)))
	})

	r.Register("isTrue", func(report ReportFunc, subject any, _ []any, message string) {
		report(subject == any(true), orDefault(message, fmt.Sprintf("expected %v to be true", subject)))
	})

	r.Register("isFalse", func(report ReportFunc, subject any, _ []any, message string) {
		report(subject == any(false), orDefault(message, fmt.Sprintf("expected %v to be false", subject)))
	})

	r.Register("isNull", func(report ReportFunc, subject any, _ []any, message string) {
		report(isNilValue(subject), orDefault(message, fmt.Sprintf("expected %v to be nil", subject)))
	})

	r.Register("isNotNull", func(report ReportFunc, subject any, _ []any, message string) {
		report(!isNilValue(subject), orDefault(message, "expected subject to not be nil"))
	})

	r.Register("isDefined", func(report ReportFunc, subject any, _ []any, message string) {
		report(subject != any(domain.Undefined), orDefault(message, "expected subject to be defined"))
	})

	r.Register("isUndefined", func(report ReportFunc, subject any, _ []any, message string) {
		report(subject == any(domain.Undefined), orDefault(message, fmt.Sprintf("expected %v to be undefined", subject)))
	})

	r.Register("pass", func(report ReportFunc, _ any, _ []any, message string) {
		report(true, orDefault(message, "pass"))
	})

	r.Register("fail", func(report ReportFunc, _ any, _ []any, message string) {
		report(false, orDefault(message, "fail"))
	})

	r.Register("throwsException", throwsException)
}

// throwsException invokes the subject, which must be a zero-argument
// callable. A panic during the call passes; a clean return fails.
func throwsException(report ReportFunc, subject any, _ []any, message string) {
	fn, ok := subject.(func())
	if !ok {
		report(false, orDefault(message, fmt.Sprintf("subject %T is not a func()", subject)))
		return
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			report(true, orDefault(message, fmt.Sprintf("raised %v", recovered)))
		}
	}()

	fn()
	report(false, orDefault(message, "expected an exception to be raised"))
}

// shallowEqual applies Go's == to the operands. Non-comparable operand types
// never compare equal rather than panicking.
func shallowEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return false
	}
	return a == b
}

// deepEqual performs structural comparison via go-cmp, which handles cyclic
// values. go-cmp panics on unexported fields without an Equal method; those
// values fall back to reflect.DeepEqual.
func deepEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = reflect.DeepEqual(a, b)
		}
	}()
	return cmp.Equal(a, b)
}

// isNilValue reports whether the subject is nil, including typed nil
// pointers, maps, slices, channels, funcs, and interfaces.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func argAt(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func orDefault(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
