package pavlov

import (
	"fmt"
	"time"

	"github.com/ef4/pavlov/pkg/dsl"
	"github.com/ef4/pavlov/pkg/registry"
)

// globalScope is the verb target while a global-mode run is executing.
// The whole system is single-threaded by contract, so no locking applies.
var globalScope *S

func installGlobalScope(s *S) { globalScope = s }

func uninstallGlobalScope() { globalScope = nil }

func activeScope(verb string) *S {
	if globalScope == nil {
		panic(fmt.Sprintf("pavlov.%s called outside a global-mode specification run", verb))
	}
	return globalScope
}

// Describe declares a nested behavioral group in the active global-mode run.
// Outside such a run it panics; use scoped mode's *S parameter instead.
func Describe(name string, block func()) {
	activeScope("Describe").Describe(name, block)
}

// Before registers the setup hook for the open group of the active
// global-mode run.
func Before(fn func()) {
	activeScope("Before").Before(fn)
}

// After registers the teardown hook for the open group of the active
// global-mode run.
func After(fn func()) {
	activeScope("After").After(fn)
}

// It declares one spec in the open group of the active global-mode run.
func It(description string, body ...func()) {
	activeScope("It").It(description, body...)
}

// Given expands a templated spec declaration in the active global-mode run.
func Given(args ...any) *dsl.Given {
	return activeScope("Given").Given(args...)
}

// Assert binds a subject to the assertion verbs of the active global-mode
// run.
func Assert(value ...any) *registry.Handler {
	return activeScope("Assert").Assert(value...)
}

// Wait pauses the active global-mode run's engine, sleeps, and invokes fn.
func Wait(d time.Duration, fn func()) {
	activeScope("Wait").Wait(d, fn)
}
