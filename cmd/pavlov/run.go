package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/ef4/pavlov"
	"github.com/ef4/pavlov/internal/logging"
	"github.com/ef4/pavlov/pkg/adapters/console"
	"github.com/ef4/pavlov/pkg/registry"
)

const defaultConfigFile = ".pavlov.yaml"

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the bundled sample specification",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		explicit := cmd.Flags().Changed("config")
		cfg, err := loadConfig(configPath, explicit)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("scope") {
			cfg.Scope, _ = cmd.Flags().GetString("scope")
		}
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			cfg.Color = false
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		logger := logging.NewNop()
		if verbose {
			logger = logging.New(slog.LevelDebug)
		}

		engineOpts := []console.Option{console.WithLogger(logger)}
		if !cfg.Color {
			engineOpts = append(engineOpts, console.WithProfile(termenv.Ascii))
		}
		engine := console.New(engineOpts...)

		mode := pavlov.ScopeModeScoped
		if cfg.Scope == "global" {
			mode = pavlov.ScopeModeGlobal
		}

		runner := pavlov.New(
			pavlov.WithEngine(engine),
			pavlov.WithScopeMode(mode),
			pavlov.WithLogger(logger),
		)

		if err := runner.Specify("Pavlov Sample Specification", sampleSpecification); err != nil {
			return err
		}

		engine.PrintSummary()
		if _, failed := engine.Summary(); failed > 0 {
			return fmt.Errorf("%d spec(s) failed", failed)
		}
		return nil
	},
}

// sampleSpecification exercises the full verb surface: nesting, inherited
// hooks, parameterized specs, custom verbs, and a timed wait.
func sampleSpecification(s *pavlov.S) {
	pavlov.RegisterVerb("isPositive", func(report registry.ReportFunc, subject any, _ []any, message string) {
		n, ok := subject.(int)
		if message == "" {
			message = fmt.Sprintf("expected %v to be a positive int", subject)
		}
		report(ok && n > 0, message)
	})

	s.Describe("calculator", func() {
		var total int
		s.Before(func() { total = 0 })
		s.After(func() { total = 0 })

		s.It("starts at zero", func() {
			s.Assert(total).Equals(0)
		})

		s.Describe("addition", func() {
			s.It("adds two numbers", func() {
				total = 2 + 3
				s.Assert(total).Equals(5)
				s.Assert(total).Verb("isPositive")
			})

			s.Given(1, 2, []any{3, 4}).It("sums its arguments", func(args ...any) {
				sum := 0
				for _, a := range args {
					sum += a.(int)
				}
				s.Assert(sum).Verb("isPositive")
			})
		})

		s.Describe("division", func() {
			s.It("panics on divide by zero", func() {
				zero := 0
				s.Assert(func() { _ = 1 / zero }).ThrowsException()
			})
		})
	})

	s.Describe("timers", func() {
		s.It("settles after a short wait", func() {
			done := false
			s.Wait(10*time.Millisecond, func() {
				done = true
			})
			s.Assert(done).IsTrue()
		})
	})
}

func init() {
	runCmd.Flags().String("config", defaultConfigFile, "Path to the runner config file")
	runCmd.Flags().String("scope", "scoped", "Verb resolution mode: scoped or global")
	runCmd.Flags().Bool("no-color", false, "Disable terminal colors")
	runCmd.Flags().Bool("verbose", false, "Enable debug logging")
	rootCmd.AddCommand(runCmd)
}
