// Package registry manages assertion verbs: a process-wide mapping from verb
// name to predicate, plus the Handler that binds a subject value to the verbs.
package registry

import (
	"fmt"
	"sync"

	"github.com/ef4/pavlov/pkg/domain"
)

// ReportFunc is the primitive underlying every assertion verb. It records one
// pass/fail observation against the currently executing test.
type ReportFunc func(passed bool, message string)

// Predicate implements one assertion verb. It receives the report primitive,
// the bound subject, the caller-supplied arguments, and an optional message,
// and must call report exactly as the verb's semantics dictate.
type Predicate func(report ReportFunc, subject any, args []any, message string)

// Registry maps verb names to predicates.
// Registering a name already present overwrites it, allowing user overrides.
// There is no removal operation.
type Registry struct {
	mu    sync.RWMutex
	verbs map[string]Predicate
}

// NewRegistry creates a registry pre-populated with the built-in verbs.
func NewRegistry() *Registry {
	r := &Registry{verbs: make(map[string]Predicate)}
	registerBuiltins(r)
	return r
}

// Register adds a verb to the registry. If a verb with the same name exists,
// it is overwritten; existing handlers see the new predicate immediately.
func (r *Registry) Register(name string, p Predicate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.verbs[name] = p
}

// Invoke looks up a verb by name and runs its predicate.
// Returns an error if the verb is not registered.
func (r *Registry) Invoke(name string, report ReportFunc, subject any, args []any, message string) error {
	r.mu.RLock()
	p, ok := r.verbs[name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownVerb, name)
	}

	p(report, subject, args, message)
	return nil
}

// Default is the process-wide registry shared by all specification runs.
// It persists across runs so custom verbs registered once stay available.
var Default = NewRegistry()

// Register installs a verb into the Default registry.
func Register(name string, p Predicate) {
	Default.Register(name, p)
}
