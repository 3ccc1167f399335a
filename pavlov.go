package pavlov

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ef4/pavlov/internal/compiler"
	"github.com/ef4/pavlov/pkg/adapters/clock"
	"github.com/ef4/pavlov/pkg/adapters/console"
	"github.com/ef4/pavlov/pkg/domain"
	"github.com/ef4/pavlov/pkg/dsl"
	"github.com/ef4/pavlov/pkg/ports"
	"github.com/ef4/pavlov/pkg/registry"
)

// S is the scope object carrying the DSL verbs, handed to every builder
// function.
type S = dsl.S

// Undefined is the absent-value sentinel bound by Assert() with no subject.
var Undefined = domain.Undefined

// ScopeMode selects how a builder function reaches the DSL verbs.
type ScopeMode int

const (
	// ScopeModeScoped (the default) hands the verbs to the builder as its
	// *S parameter only; no package state is touched.
	ScopeModeScoped ScopeMode = iota

	// ScopeModeGlobal additionally installs the run's verbs behind the
	// package-level functions for the duration of the run.
	ScopeModeGlobal
)

// Runner orchestrates specification runs against one engine. Construction is
// cheap; a Runner carries no per-run state besides its configuration.
type Runner struct {
	engine ports.Engine
	clock  ports.Clock
	mode   ScopeMode
	logger *slog.Logger
	reg    *registry.Registry
}

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithEngine injects the execution engine statements run against.
// Defaults to a console engine on stdout.
func WithEngine(e ports.Engine) Option {
	return func(r *Runner) { r.engine = e }
}

// WithClock injects the timer provider backing Wait. Defaults to the system
// clock.
func WithClock(c ports.Clock) Option {
	return func(r *Runner) { r.clock = c }
}

// WithScopeMode selects global or scoped verb resolution.
func WithScopeMode(mode ScopeMode) Option {
	return func(r *Runner) { r.mode = mode }
}

// WithLogger sets a custom structured logger for the runner.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// WithRegistry substitutes the assertion-verb registry. Defaults to the
// process-wide registry, which persists custom verbs across runs.
func WithRegistry(reg *registry.Registry) Option {
	return func(r *Runner) { r.reg = reg }
}

// New initializes a Runner.
func New(opts ...Option) *Runner {
	r := &Runner{
		clock: clock.System{},
		mode:  ScopeModeScoped,
		reg:   registry.Default,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.engine == nil {
		r.engine = console.New()
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return r
}

// Specify performs one full specification run: it creates a fresh build
// context, executes the builder under the configured scope mode, compiles
// the resulting forest, and executes every emitted statement against the
// engine in emission order, synchronously. The forest never outlives the
// call.
//
// An error raised while the builder executes (malformed nesting, a panicking
// block) is returned; nothing is compiled or executed in that case. The
// build cursor cannot be corrupted by such a failure since each run gets its
// own context.
func (r *Runner) Specify(title string, builder func(*S)) error {
	scope := dsl.NewScope(dsl.ScopeConfig{
		Report:   r.engine.Report,
		Pause:    r.engine.Pause,
		Resume:   r.engine.Resume,
		Clock:    r.clock,
		Registry: r.reg,
	})

	if titler, ok := r.engine.(ports.Titler); ok && title != "" {
		titler.Title(title)
	}

	if r.mode == ScopeModeGlobal {
		installGlobalScope(scope)
		defer uninstallGlobalScope()
	}

	if err := runBuilder(scope, builder); err != nil {
		r.logger.Error("specification builder failed", "title", title, "error", err)
		return err
	}

	stmts := compiler.Compile(scope.Builder().Roots())
	r.logger.Debug("specification compiled", "title", title, "statements", len(stmts))

	for _, st := range stmts {
		switch st.Kind {
		case domain.StatementDeclareGroup:
			r.engine.DeclareGroup(st.Name, st.Setup, st.Teardown)
		case domain.StatementRunTest:
			r.engine.RunTest(st.Description, st.Body)
		}
	}
	return nil
}

// Specify runs a specification on a Runner built from opts. It is the
// package-level convenience for one-shot runs.
func Specify(title string, builder func(*S), opts ...Option) error {
	return New(opts...).Specify(title, builder)
}

// RegisterVerb installs a custom assertion verb into the process-wide
// registry. Registering an existing name overwrites it for all handlers.
func RegisterVerb(name string, p registry.Predicate) {
	registry.Register(name, p)
}

func runBuilder(scope *S, builder func(*S)) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			if e, ok := recovered.(error); ok {
				err = fmt.Errorf("specification builder: %w", e)
				return
			}
			err = fmt.Errorf("specification builder: %v", recovered)
		}
	}()

	builder(scope)
	return nil
}
